package db

import (
	"database/sql"
	"fmt"
)

// Defaults seeded into the settings row at first startup.
const (
	DefaultPassword = "admin123"
	DefaultCutoff   = "18:30"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedSettings inserts the singleton settings row with defaults if it
// does not exist yet. Never overwrites an existing row.
func SeedSettings(db *sql.DB) error {
	_, err := db.Exec(`
		INSERT INTO settings (id, password, poll_end_time, poll_manually_ended)
		VALUES (1, $1, $2, FALSE)
		ON CONFLICT (id) DO NOTHING
	`, DefaultPassword, DefaultCutoff)
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	return nil
}

// Portable across sqlite and postgres: TEXT/INTEGER/BOOLEAN columns only,
// day strings supplied by the application.
const schema = `
-- Roster
CREATE TABLE IF NOT EXISTS participant (
    emp_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

-- Submission ledger: at most one row per (participant, day)
CREATE TABLE IF NOT EXISTS submission (
    emp_id INTEGER NOT NULL REFERENCES participant(emp_id),
    day TEXT NOT NULL,
    submitted BOOLEAN NOT NULL DEFAULT TRUE,
    PRIMARY KEY (emp_id, day)
);

CREATE INDEX IF NOT EXISTS idx_submission_day ON submission(day);

-- Poll configuration singleton (always id = 1)
CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    password TEXT NOT NULL,
    poll_end_time TEXT NOT NULL,
    poll_manually_ended BOOLEAN NOT NULL
);
`
