/*
Package db handles database schema creation and settings seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. SeedSettings then inserts the singleton settings row (id = 1)
with the default password, cutoff 18:30 and manually-ended false; it
never overwrites an existing row.

# Tables

The schema includes:

  - participant: the roster, keyed directly by the external employee id
  - submission: one submitted flag per (participant, day)
  - settings: poll configuration singleton (password, cutoff, manual-end)

# Portability

The same SQL runs on sqlite (modernc.org/sqlite) and postgres (lib/pq):
TEXT/INTEGER/BOOLEAN columns only, $N placeholders in ascending order,
ON CONFLICT upserts, and all day strings supplied by the application in
canonical YYYY-MM-DD form so lexicographic comparison orders them
chronologically.
*/
package db
