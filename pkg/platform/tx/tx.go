// Package tx carries an ambient SQL transaction through a context.
//
// The provisioning pipeline runs every store call inside one transaction that
// the caller opens before invoking the orchestrator. Postgres stores pull the
// transaction from the context and fall back to their pooled *sql.DB when no
// transaction is active.
package tx

import (
	"context"
	"database/sql"
)

type ctxKey struct{}

var txKey = ctxKey{}

// WithTx stores a SQL transaction in context for downstream store usage.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extracts a SQL transaction from context if present.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok
}

// Querier is the subset of *sql.DB / *sql.Tx the stores need. Resolve picks
// the ambient transaction when one is active.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Resolve returns the ambient transaction from ctx, or db when none is active.
func Resolve(ctx context.Context, db *sql.DB) Querier {
	if t, ok := From(ctx); ok {
		return t
	}
	return db
}

// Runner executes a function inside a transaction boundary. The registration
// orchestrator never opens transactions itself; the transport layer wraps each
// call in a Runner.
type Runner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Passthrough is a Runner for in-memory stores: no transaction exists, the
// function runs against the live stores. Rollback semantics are the database's
// job; unit tests that need them assert on pre-flight short-circuits instead.
type Passthrough struct{}

func (Passthrough) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
