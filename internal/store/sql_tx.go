package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// runInTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error or panic. Panics are rethrown.
func runInTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return &txError{op: ErrBeginningTransaction, err: err}
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = &txError{op: ErrCommitingTransaction, err: commitErr}
		}
	}()

	err = fn(ctx, tx)
	return err
}

// txError marks failures of the transaction itself, as opposed to errors
// returned by the transactional function.
type txError struct {
	op  error
	err error
}

func (e *txError) Error() string {
	return e.op.Error() + ": " + e.err.Error()
}

func (e *txError) Unwrap() []error {
	return []error{e.op, e.err}
}
