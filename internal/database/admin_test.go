package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDatabaseRejectsInvalidName(t *testing.T) {
	db, mock := newMockDB(t)
	db.cfg.Database = "bad-name; --"

	err := db.CreateDatabase(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database name")

	// The bad name never reached the server.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDatabase(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE DATABASE IF NOT EXISTS quoteshelf_test").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, db.CreateDatabase(false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDatabaseOverwriteDropsFirst(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("DROP DATABASE IF EXISTS quoteshelf_test").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE DATABASE IF NOT EXISTS quoteshelf_test").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, db.CreateDatabase(true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTablesInDependencyOrder(t *testing.T) {
	db, mock := newMockDB(t)

	for _, table := range []string{"author", "quote", "comment", "metadata"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, db.CreateTables(false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTablesOverwriteDropsInReverse(t *testing.T) {
	db, mock := newMockDB(t)

	for _, table := range []string{"metadata", "comment", "quote", "author"} {
		mock.ExpectExec("DROP TABLE IF EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, table := range []string{"author", "quote", "comment", "metadata"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, db.CreateTables(true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTableUnknownName(t *testing.T) {
	db, _ := newMockDB(t)

	err := db.CreateTable("sessions", false)
	require.ErrorIs(t, err, ErrUnknownTable)
}

func TestDatabaseExists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA\.SCHEMATA`).
		WithArgs("quoteshelf_test").
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_NAME"}).AddRow("quoteshelf_test"))

	exists, err := db.DatabaseExists()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDatabaseExistsMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA\.SCHEMATA`).
		WithArgs("quoteshelf_test").
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_NAME"}))

	exists, err := db.DatabaseExists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTableExists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT TABLE_NAME FROM INFORMATION_SCHEMA\.TABLES`).
		WithArgs("quoteshelf_test", "quote").
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME"}).AddRow("quote"))

	exists, err := db.TableExists("quote")
	require.NoError(t, err)
	assert.True(t, exists)
}
