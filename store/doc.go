/*
Package store is the persistence layer: the participant roster, the
per-day submission ledger and the poll settings singleton, all over
database/sql.

# Contracts

Expected conditions never surface as errors: a duplicate add, an unknown
id on remove/reset and an absent submission record are all plain boolean
results. A non-nil error always means a storage fault for that one
operation.

Every operation is atomic. Multi-statement operations (RemoveParticipant,
BulkAdd, EndDay) run inside a transaction with rollback on every failure
path; single statements rely on the database's own atomicity. Submit is
an ON CONFLICT upsert, so two simultaneous submissions for the same
(participant, day) produce exactly one row.

# Ordering

Days are YYYY-MM-DD strings, so `day < $1` in SQL compares
chronologically. Roster listings and day status views are always ordered
by emp_id ascending.
*/
package store
