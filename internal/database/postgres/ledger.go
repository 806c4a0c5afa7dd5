// Package postgres implements the ledger repositories on top of a pgx
// connection pool. The multi-entity writes (bet placement, vote casting)
// run inside real database transactions.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ledger implements repository.Ledger for PostgreSQL
type Ledger struct {
	db *pgxpool.Pool
}

// NewLedger creates a new Ledger backed by the given pool
func NewLedger(db *pgxpool.Pool) *Ledger {
	return &Ledger{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}
