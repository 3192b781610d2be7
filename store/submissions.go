package store

import (
	"database/sql"
	"fmt"
)

// StatusRow is one line of a day's status view: every participant with
// their (possibly absent, therefore false) submitted flag for that day.
type StatusRow struct {
	EmpID     int    `json:"emp_id"`
	Name      string `json:"name"`
	Submitted bool   `json:"submitted"`
}

// GetStatus reports whether the participant submitted on the given day.
// Absence of a record means false, never an error.
func (s *Store) GetStatus(empID int, day string) (bool, error) {
	var submitted bool
	err := s.db.QueryRow(`
		SELECT submitted FROM submission WHERE emp_id = $1 AND day = $2
	`, empID, day).Scan(&submitted)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query submission: %w", err)
	}
	return submitted, nil
}

// Submit records the participant's response for the day. Upsert: a second
// submission for the same day is a no-op, and two near-simultaneous
// submissions resolve to exactly one row.
func (s *Store) Submit(empID int, day string) error {
	_, err := s.db.Exec(`
		INSERT INTO submission (emp_id, day, submitted)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (emp_id, day) DO UPDATE SET submitted = TRUE
	`, empID, day)
	if err != nil {
		return fmt.Errorf("upsert submission: %w", err)
	}
	return nil
}

// ResetOne deletes the record for (participant, day) so they can submit
// again. Returns false when there was nothing to delete.
func (s *Store) ResetOne(empID int, day string) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM submission WHERE emp_id = $1 AND day = $2
	`, empID, day)
	if err != nil {
		return false, fmt.Errorf("delete submission: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete submission: %w", err)
	}
	return n > 0, nil
}

// PurgeBefore deletes every record whose day is strictly before the given
// day. Returns the number of rows removed; calling it again with the same
// day deletes nothing new.
func (s *Store) PurgeBefore(day string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM submission WHERE day < $1`, day)
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}
	return n, nil
}

// PurgeDay deletes every record for the given day.
func (s *Store) PurgeDay(day string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM submission WHERE day = $1`, day)
	if err != nil {
		return 0, fmt.Errorf("purge day: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge day: %w", err)
	}
	return n, nil
}

// StatsFor returns every participant joined with their submitted flag for
// the day, ordered by emp_id. Participants without a record show false.
func (s *Store) StatsFor(day string) ([]StatusRow, error) {
	rows, err := s.db.Query(`
		SELECT p.emp_id, p.name, COALESCE(s.submitted, FALSE)
		FROM participant p
		LEFT JOIN submission s ON s.emp_id = p.emp_id AND s.day = $1
		ORDER BY p.emp_id
	`, day)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	stats := []StatusRow{}
	for rows.Next() {
		var row StatusRow
		if err := rows.Scan(&row.EmpID, &row.Name, &row.Submitted); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	return stats, nil
}

// CountForDay returns the number of submitted records for one day.
func (s *Store) CountForDay(day string) (int, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM submission WHERE day = $1 AND submitted
	`, day).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}
