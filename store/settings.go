package store

import (
	"database/sql"
	"fmt"
)

// Settings is the poll configuration singleton: the shared admin
// credential, the daily cutoff and the manual-end flag. Mutate it only
// through the lifecycle engine's operations.
type Settings struct {
	Password      string
	Cutoff        string // HH:MM, 24h
	ManuallyEnded bool
}

// GetSettings reads the singleton row.
func (s *Store) GetSettings() (Settings, error) {
	var set Settings
	err := s.db.QueryRow(`
		SELECT password, poll_end_time, poll_manually_ended
		FROM settings WHERE id = 1
	`).Scan(&set.Password, &set.Cutoff, &set.ManuallyEnded)
	if err != nil {
		return Settings{}, fmt.Errorf("query settings: %w", err)
	}
	return set, nil
}

// SetPassword replaces the admin credential unconditionally.
func (s *Store) SetPassword(password string) error {
	if _, err := s.db.Exec(`UPDATE settings SET password = $1 WHERE id = 1`, password); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// SetCutoff stores a new daily cutoff in HH:MM form.
func (s *Store) SetCutoff(cutoff string) error {
	if _, err := s.db.Exec(`UPDATE settings SET poll_end_time = $1 WHERE id = 1`, cutoff); err != nil {
		return fmt.Errorf("update cutoff: %w", err)
	}
	return nil
}

// SetManuallyEnded flips the admin-forced closure flag.
func (s *Store) SetManuallyEnded(ended bool) error {
	if _, err := s.db.Exec(`UPDATE settings SET poll_manually_ended = $1 WHERE id = 1`, ended); err != nil {
		return fmt.Errorf("update manual end flag: %w", err)
	}
	return nil
}

// EndDay purges every submission for the day and raises the manual-end
// flag in one transaction: either the poll is closed and cleared, or
// nothing happened. Idempotent. Returns the number of purged records.
func (s *Store) EndDay(day string) (int64, error) {
	var purged int64
	err := s.inTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM submission WHERE day = $1`, day)
		if err != nil {
			return fmt.Errorf("purge day: %w", err)
		}
		purged, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("purge day: %w", err)
		}
		if _, err := tx.Exec(`UPDATE settings SET poll_manually_ended = TRUE WHERE id = 1`); err != nil {
			return fmt.Errorf("update manual end flag: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}
