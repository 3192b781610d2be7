/*
Package sweeper is the retention job: it deletes submission records older
than the current IST day on a fixed cadence.

Only purge-before-today is a contract; when the sweep runs is deployment
policy (the default loop ticks every 24h, configurable via SWEEP_HOURS).
Re-running with the same day deletes nothing new, so the loop never needs
coordination.
*/
package sweeper
