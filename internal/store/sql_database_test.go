package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection as a PostgreSQL [DB].
func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestDB_wrapError(t *testing.T) {
	db := newDB(nil, DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())

	tests := []struct {
		name    string
		err     error
		wantIs  []error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "bad connection", err: sql.ErrConnDone, wantIs: []error{ErrStoreUnavailable, sql.ErrConnDone}},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), wantIs: []error{ErrStoreUnavailable}},
		{name: "connection exception", err: pgError(pgerrcode.ConnectionFailure), wantIs: []error{ErrStoreUnavailable}},
		{name: "already unavailable", err: ErrStoreUnavailable, wantIs: []error{ErrStoreUnavailable}},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), wantIs: []error{ErrExecutingQuery}},
		{name: "plain error", err: errors.New("boom"), wantIs: []error{ErrExecutingQuery}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := db.wrapError(ErrExecutingQuery, tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, got, target)
			}
		})
	}
}

func TestDB_withTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDBFromSQL(conn)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE contacts").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := db.withTx(testContext(), func(ctx context.Context, tx DBTX) error {
			_, err := tx.ExecContext(ctx, "UPDATE contacts SET first_name = 'x'")
			return err
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns fn error untouched", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDBFromSQL(conn)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := db.withTx(testContext(), func(context.Context, DBTX) error {
			return ErrContactNotFound
		})
		require.ErrorIs(t, err, ErrContactNotFound)
		assert.Equal(t, ErrContactNotFound, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDBFromSQL(conn)

		mock.ExpectBegin().WillReturnError(errors.New("begin failed"))

		called := false
		err := db.withTx(testContext(), func(context.Context, DBTX) error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, ErrBeginningTransaction)
		assert.False(t, called)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDBFromSQL(conn)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

		err := db.withTx(testContext(), func(context.Context, DBTX) error { return nil })
		require.ErrorIs(t, err, ErrCommitingTransaction)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit on lost connection is unavailable", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDBFromSQL(conn)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(pgError(pgerrcode.AdminShutdown))

		err := db.withTx(testContext(), func(context.Context, DBTX) error { return nil })
		require.ErrorIs(t, err, ErrStoreUnavailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panic rolls back and is rethrown", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDBFromSQL(conn)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = db.withTx(testContext(), func(context.Context, DBTX) error { panic("boom") })
		})
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDB_lockSuffixes(t *testing.T) {
	pg := newDB(nil, DialectPostgres, nil, logger.Nop())
	assert.Equal(t, "FOR UPDATE", pg.lockForUpdate())
	assert.Equal(t, "FOR KEY SHARE", pg.lockForKeyShare())
	assert.Equal(t, DialectPostgres, pg.Dialect())

	lite := newDB(nil, DialectSQLite, nil, logger.Nop())
	assert.Empty(t, lite.lockForUpdate())
	assert.Empty(t, lite.lockForKeyShare())
	assert.Equal(t, NonRetryable, lite.classification(errors.New("x")))
}

func TestNewDB_PlaceholdersPerDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
		notWant string
	}{
		{dialect: DialectPostgres, want: "id = $1", notWant: "?"},
		{dialect: DialectSQLite, want: "id = ?", notWant: "$1"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.buildDeleteContactQuery("alice", 7)
			require.NoError(t, err)
			assert.Contains(t, query, tt.want)
			assert.NotContains(t, query, tt.notWant)
			assert.Equal(t, []any{int64(7), "alice"}, args)
		})
	}
}
