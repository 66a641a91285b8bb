package sqlfixture

import (
	"context"
	"database/sql"
)

// Querier is the subset of database/sql operations shared by *sql.DB,
// *sql.Conn and *sql.Tx. Load and dump helpers take a Querier so they run
// the same against the resource's dedicated connection, a caller's pool,
// or an open transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time checks that the database/sql handles satisfy Querier.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Conn)(nil)
	_ Querier = (*sql.Tx)(nil)
)
