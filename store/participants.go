package store

import (
	"database/sql"
	"fmt"
)

// Participant is one eligible respondent, keyed by the stable external
// employee id.
type Participant struct {
	EmpID int    `json:"emp_id"`
	Name  string `json:"name"`
}

// AddParticipant creates a participant. Returns false without error when
// the emp_id is already taken; the conflict check and the insert are one
// statement, so two concurrent adds can't both succeed.
func (s *Store) AddParticipant(empID int, name string) (bool, error) {
	res, err := s.db.Exec(`
		INSERT INTO participant (emp_id, name)
		VALUES ($1, $2)
		ON CONFLICT (emp_id) DO NOTHING
	`, empID, name)
	if err != nil {
		return false, fmt.Errorf("insert participant: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert participant: %w", err)
	}
	return n > 0, nil
}

// BulkAdd inserts a pre-validated batch in one transaction. Each entry
// independently succeeds or is reported in errs as "<id> (exists)";
// successful entries commit together even when others failed. Only a
// storage fault returns a non-nil error, and then nothing is committed.
func (s *Store) BulkAdd(entries []Participant) (added []Participant, errs []string, err error) {
	err = s.inTx(func(tx *sql.Tx) error {
		seen := make(map[int]bool, len(entries))
		for _, e := range entries {
			if seen[e.EmpID] {
				errs = append(errs, fmt.Sprintf("%d (exists)", e.EmpID))
				continue
			}
			seen[e.EmpID] = true

			res, err := tx.Exec(`
				INSERT INTO participant (emp_id, name)
				VALUES ($1, $2)
				ON CONFLICT (emp_id) DO NOTHING
			`, e.EmpID, e.Name)
			if err != nil {
				return fmt.Errorf("insert participant %d: %w", e.EmpID, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("insert participant %d: %w", e.EmpID, err)
			}
			if n == 0 {
				errs = append(errs, fmt.Sprintf("%d (exists)", e.EmpID))
				continue
			}
			added = append(added, e)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return added, errs, nil
}

// RemoveParticipant deletes a participant and every submission that
// references them, atomically. Returns false when the id is unknown.
func (s *Store) RemoveParticipant(empID int) (bool, error) {
	var removed bool
	err := s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM submission WHERE emp_id = $1`, empID); err != nil {
			return fmt.Errorf("delete submissions: %w", err)
		}
		res, err := tx.Exec(`DELETE FROM participant WHERE emp_id = $1`, empID)
		if err != nil {
			return fmt.Errorf("delete participant: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete participant: %w", err)
		}
		removed = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// ListParticipants returns the roster ordered by emp_id ascending, the
// canonical display order everywhere.
func (s *Store) ListParticipants() ([]Participant, error) {
	rows, err := s.db.Query(`
		SELECT emp_id, name
		FROM participant
		ORDER BY emp_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	participants := []Participant{}
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.EmpID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	return participants, nil
}

// FindByEmpID looks up a participant. The second return is false when the
// id is unknown; that is not an error.
func (s *Store) FindByEmpID(empID int) (Participant, bool, error) {
	var p Participant
	err := s.db.QueryRow(`
		SELECT emp_id, name FROM participant WHERE emp_id = $1
	`, empID).Scan(&p.EmpID, &p.Name)
	if err == sql.ErrNoRows {
		return Participant{}, false, nil
	}
	if err != nil {
		return Participant{}, false, fmt.Errorf("query participant: %w", err)
	}
	return p, true, nil
}
