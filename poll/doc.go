/*
Package poll is the lifecycle engine: the time-window state machine that
decides when submissions are accepted and implements the admin
transitions.

A day's poll is conceptually in one of three states: open (before the
cutoff, not manually ended), closed by time (at or past the cutoff) or
closed manually (admin forced). The observable predicate is

	IsAccepting(now) = now.time < cutoff && !manuallyEnded

always evaluated against the stored cutoff value. The stored row is the
sole source of truth.

All transitions are idempotent. EndPoll purges the day's records and
raises the manual-end flag atomically; ResetSubmissions purges without
closing; Reactivate clears the flag only; Extend adds wall-clock minutes
to the cutoff with modular wrap at midnight; ResetCutoff restores 18:30.

The engine has no clock of its own: callers pass a single now() reading,
so one request can't be judged open by one check and closed by the next.
*/
package poll
