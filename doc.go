/*
Package main provides the entry point for the dinner poll API server.

Dinnerpoll is a daily attendance poll: participants submit a yes/no
response before a configurable cutoff (default 18:30 IST); an admin
manages the roster, the cutoff and completion statistics.

# Starting the Server

The server runs on sqlite out of the box:

	JWT_SECRET=change-me go run .

Or against postgres:

	go run . -t postgres -d "postgres://..." -jwt-secret change-me

# Configuration

Required settings:

  - JWT_SECRET (-jwt-secret): secret for admin session tokens

Optional settings:

  - PORT (-p): server port (default: 8643)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: local sqlite file)
  - SWEEP_HOURS (-sweep-hours): hours between retention sweeps (default: 24)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: roster, submission ledger and settings persistence
  - poll: lifecycle engine (cutoff gate, end/reset/reactivate/extend)
  - clock: IST-pinned clock abstraction
  - report: read-only day stats, history and export views
  - sweeper: in-process retention job
  - handlers: HTTP request handlers (submissions, admin, roster, stats)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, admin token guard, CORS, JSON helpers
  - bulkparse: bulk roster import text parsing
  - auth: credential check and session tokens
  - db: schema creation and settings seeding
  - config: configuration parsing

All civil-time computation is pinned to IST (UTC+5:30); the host
timezone is never consulted.

See package documentation for each component.
*/
package main
