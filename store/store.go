package store

import (
	"database/sql"
	"fmt"
)

// Store is the persistence layer for the roster, the submission ledger
// and the poll settings singleton. Every exported operation runs as a
// single transaction (or a single statement, which is equivalent), so a
// failure partway never leaves partial writes behind.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// inTx runs fn inside a transaction, rolling back on any error and on
// panic via the deferred rollback.
func (s *Store) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
