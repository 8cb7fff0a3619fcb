// Package database is the data-access layer for the quotation store: a
// connection manager that dials the MySQL server once per call, the entity
// records (Quote, Author, Comment, Metadata) owning their insert and fetch
// SQL, and the provisioning helpers that create the schema.
package database

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the connection parameters for the MySQL server. It is passed
// explicitly to New; the package never reads the environment.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// DSN renders the driver DSN for the config. An empty Database selects no
// schema, which is what the provisioning path needs.
func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	mc.DBName = c.Database
	mc.ParseTime = true
	return mc.FormatDSN()
}

// ExecResult reports the outcome of a mutating statement.
type ExecResult struct {
	RowsAffected int64
	LastInsertID int64
}

// DB executes statements against the server, dialing a fresh connection for
// every call and closing it before returning. There is no pool and no shared
// connection state between calls; mutations commit immediately (autocommit).
type DB struct {
	cfg    Config
	logger zerolog.Logger
	conn   *sql.DB // when set, calls reuse this handle instead of dialing
}

// Option configures a DB.
type Option func(*DB)

// WithLogger routes the DB's diagnostics through the given logger instead of
// the global one.
func WithLogger(logger zerolog.Logger) Option {
	return func(db *DB) { db.logger = logger }
}

// WithConn pins every call to an existing handle instead of dialing per call.
// Ownership of the handle stays with the caller. Tests use this to substitute
// a mock driver.
func WithConn(conn *sql.DB) Option {
	return func(db *DB) { db.conn = conn }
}

// New creates an accessor for the database named in cfg. No connection is
// made until the first call.
func New(cfg Config, opts ...Option) *DB {
	db := &DB{cfg: cfg, logger: log.Logger}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// acquire hands back an open handle and a release function that must run on
// every exit path.
func (db *DB) acquire() (*sql.DB, func(), error) {
	if db.conn != nil {
		return db.conn, func() {}, nil
	}

	conn, err := sql.Open("mysql", db.cfg.DSN())
	if err != nil {
		db.logger.Error().Err(err).Str("host", db.cfg.Host).Msg("Failed to open database connection")
		return nil, nil, fmt.Errorf("failed to open connection: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(0)

	release := func() {
		if err := conn.Close(); err != nil {
			db.logger.Warn().Err(err).Msg("Failed to close database connection")
		}
	}
	return conn, release, nil
}

// Exec runs one mutating statement and reports the affected row count and
// the server-assigned insert id.
func (db *DB) Exec(statement string, params ...any) (ExecResult, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return ExecResult{}, err
	}
	defer release()

	result, err := conn.Exec(statement, params...)
	if err != nil {
		db.logger.Error().Err(err).Str("statement", statement).Msg("Statement failed")
		return ExecResult{}, fmt.Errorf("failed to execute statement: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to read insert id: %w", err)
	}

	db.logger.Debug().Int64("affected", affected).Int64("insert_id", id).Msg("Statement executed")
	return ExecResult{RowsAffected: affected, LastInsertID: id}, nil
}

// Query runs one SELECT and returns every result row as a field-name→value
// map. A query that matches nothing returns an empty, non-nil slice; an error
// return always means the query itself failed.
func (db *DB) Query(statement string, params ...any) ([]Row, error) {
	conn, release, err := db.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := conn.Query(statement, params...)
	if err != nil {
		db.logger.Error().Err(err).Str("statement", statement).Msg("Query failed")
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	collected, err := collectRows(rows)
	if err != nil {
		db.logger.Error().Err(err).Str("statement", statement).Msg("Failed to read query results")
		return nil, err
	}

	db.logger.Debug().Int("rows", len(collected)).Msg("Query executed")
	return collected, nil
}

// Ping verifies the server is reachable with the configured credentials.
func (db *DB) Ping() error {
	conn, release, err := db.acquire()
	if err != nil {
		return err
	}
	defer release()

	if err := conn.Ping(); err != nil {
		db.logger.Error().Err(err).Str("host", db.cfg.Host).Int("port", db.cfg.Port).Msg("Database server unreachable")
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
