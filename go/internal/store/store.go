package store

import (
	"context"
	"database/sql"
)

// Store implements durable data access for leagues, rosters and contracts
// over Postgres.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// WithTx executes fn inside a *sql.Tx.
// If fn returns an error the tx rolls back, else it commits.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
