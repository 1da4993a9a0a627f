package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager runs functions inside a transaction carried by the context.
// Nested RunInTx calls join the outer transaction.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// snapshotOptions give every statement in the transaction the same view of
// the database and forbid writes.
var snapshotOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// RunInTx executes fn within a READ COMMITTED transaction.
// On error from fn it rolls back and returns the error; on panic it rolls
// back and re-panics. A cancelled ctx aborts the transaction before commit.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}
	return m.run(ctx, m.db.Begin, fn)
}

// RunInSnapshot executes fn within a REPEATABLE READ, READ ONLY
// transaction, so all reads made through QuerierFromCtx see one snapshot.
// Called inside another transaction it joins that transaction.
func (m *TxManager) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}
	return m.run(ctx, func(ctx context.Context) (pgx.Tx, error) {
		return m.db.BeginTx(ctx, snapshotOptions)
	}, fn)
}

func (m *TxManager) run(ctx context.Context, begin func(context.Context) (pgx.Tx, error), fn func(ctx context.Context) error) (err error) {
	tx, err := begin(ctx)
	if err != nil {
		return mapError(err, "begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		// Rollback must run even if ctx was cancelled.
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError(err, "commit transaction")
	}

	return nil
}
