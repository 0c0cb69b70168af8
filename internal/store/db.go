package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql methods the stores use. It is
// implemented by both *sql.DB and *sql.Tx, so a store works against a plain
// connection or inside a transaction without knowing which.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
