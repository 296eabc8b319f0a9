package main

import (
	"context"
	"database/sql"
	"time"

	dErrors "sokoni/pkg/domain-errors"
	"sokoni/pkg/platform/tx"
)

const defaultRegistrationTxTimeout = 30 * time.Second

// registrationPostgresTx opens the ambient transaction the provisioning
// pipeline runs in. The transaction handle travels on the context so every
// store write inside the pipeline lands in the same transaction.
type registrationPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newRegistrationPostgresTx(db *sql.DB) *registrationPostgresTx {
	return &registrationPostgresTx{db: db}
}

func (t *registrationPostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultRegistrationTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	dbTx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = dbTx.Rollback()
	}()

	if err := fn(tx.WithTx(ctx, dbTx)); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return err
	}
	return nil
}
