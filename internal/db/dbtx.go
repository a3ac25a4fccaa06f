package db

import (
	"context"
	"database/sql"
)

// DBTX is what the case, form and recommendation repositories query
// through. Passing the *sql.Tx from WithinTx lets a rights submission or a
// bundle import write all three tables atomically with the same repo code
// that serves plain reads off the *sql.DB.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
