/*
Package handlers contains the HTTP request handlers.

# Architecture

Handlers are the boundary between HTTP and the core: they parse and
validate JSON, read the clock exactly once per request, call the store /
lifecycle engine / reporter, and map outcomes to statuses. Expected
conditions map to 4xx; only storage faults become 500s.

  - SubmissionHandler: public status, gated submit, self-service reset,
    roster listing
  - AdminHandler: login, password change, end / reset / reactivate /
    extend / reset-time poll controls
  - RosterHandler: add, bulk add, remove participants
  - StatsHandler: day stats, history, per-participant history, CSV export

# Submission Gate

The submit handler is the only place the time gate is enforced: it asks
the lifecycle engine with the request's single now() reading and refuses
with 403 "Poll is not active. It ended at HH:MM IST." when closed. The
ledger itself has no time awareness.
*/
package handlers
