package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a DB pinned to a sqlmock handle so no real dialing
// happens.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := New(
		Config{Host: "127.0.0.1", Port: 3306, User: "tester", Database: "quoteshelf_test"},
		WithConn(conn),
		WithLogger(zerolog.Nop()),
	)
	return db, mock
}

// newPingMockDB is newMockDB with ping monitoring enabled.
func newPingMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := New(
		Config{Host: "127.0.0.1", Port: 3306, User: "tester", Database: "quoteshelf_test"},
		WithConn(conn),
		WithLogger(zerolog.Nop()),
	)
	return db, mock
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "127.0.0.1", Port: 3306, User: "tester", Password: "secret", Database: "quoteshelf"}
	assert.Equal(t, "tester:secret@tcp(127.0.0.1:3306)/quoteshelf?parseTime=true", cfg.DSN())
}

func TestConfigDSNWithoutSchema(t *testing.T) {
	cfg := Config{Host: "db.internal", Port: 3307, User: "tester"}
	assert.Equal(t, "tester@tcp(db.internal:3307)/?parseTime=true", cfg.DSN())
}

func TestExecReturnsResult(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO quote").
		WithArgs("C").
		WillReturnResult(sqlmock.NewResult(42, 1))

	result, err := db.Exec("INSERT INTO quote (content) VALUES (?)", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RowsAffected)
	assert.Equal(t, int64(42), result.LastInsertID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecFailureReturnsError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO quote").
		WillReturnError(errors.New("server has gone away"))

	result, err := db.Exec("INSERT INTO quote (content) VALUES (?)", "C")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute statement")
	assert.Equal(t, ExecResult{}, result)
}

func TestQueryEmptyResultIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"content"}))

	rows, err := db.Query("SELECT content FROM quote")
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestQueryFailureReturnsError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT").
		WillReturnError(errors.New("bad SQL"))

	rows, err := db.Query("SELECT nope FROM nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run query")
	assert.Nil(t, rows)
}

func TestPing(t *testing.T) {
	db, mock := newPingMockDB(t)

	mock.ExpectPing()
	require.NoError(t, db.Ping())

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err := db.Ping()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping database")
}
