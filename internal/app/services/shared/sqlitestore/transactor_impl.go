package sqlitestore

import (
	"context"
	"database/sql"

	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"
)

type transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) contracts.Transactor {
	return &transactor{db: db}
}

// WithinTransaction commits when fn succeeds and rolls back otherwise. A call
// made inside a running transaction joins it.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(constvars.CONTEXT_SQLITE_TX_KEY).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	txCtx := context.WithValue(ctx, constvars.CONTEXT_SQLITE_TX_KEY, tx)
	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrServerProcess(err)
	}
	return nil
}

func (t *transactor) Ping(ctx context.Context) error {
	return t.db.PingContext(ctx)
}
