package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/migrations"
)

// Dialects supported by [DB]. The values double as database/sql driver
// names and goose dialect names.
const (
	DialectPostgres = migrations.DialectPostgres
	DialectSQLite   = migrations.DialectSQLite
)

// DB wraps a database/sql pool with the dialect specific pieces the
// repositories need: the squirrel placeholder format and the error
// classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations for the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the dialect db was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// classification returns the classifier verdict for err.
func (db *DB) classification(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// wrapError turns a driver error into a store error: lost connections and
// transient failures become [ErrStoreUnavailable], anything else is wrapped
// with the operation sentinel op.
func (db *DB) wrapError(op error, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || db.classification(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}

// withTx runs fn in a transaction. Errors returned by fn pass through
// untouched; failures to begin or commit are classified with wrapError.
func (db *DB) withTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	err := runInTx(ctx, db.DB, nil, fn)

	var txErr *txError
	if errors.As(err, &txErr) {
		return db.wrapError(txErr.op, txErr.err)
	}
	return err
}

// lockForUpdate returns the row locking suffix for SELECTs inside write
// transactions. SQLite serializes writers and has no row locks.
func (db *DB) lockForUpdate() string {
	if db.dialect == DialectPostgres {
		return "FOR UPDATE"
	}
	return ""
}

// lockForKeyShare returns the suffix that keeps a referenced row from being
// deleted until the transaction ends.
func (db *DB) lockForKeyShare() string {
	if db.dialect == DialectPostgres {
		return "FOR KEY SHARE"
	}
	return ""
}
