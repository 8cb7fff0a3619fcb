package database

import (
	"fmt"
	"regexp"
)

// identPattern limits names interpolated into DDL. Identifiers cannot be
// bound as statement parameters.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// server returns an accessor for the same host with no schema selected.
// Database-level statements and INFORMATION_SCHEMA checks run through it.
func (db *DB) server() *DB {
	cfg := db.cfg
	cfg.Database = ""
	return &DB{cfg: cfg, logger: db.logger, conn: db.conn}
}

// PingServer verifies the server is reachable without selecting a schema.
// Works before the database has been created.
func (db *DB) PingServer() error {
	return db.server().Ping()
}

// DatabaseExists reports whether the configured database exists on the
// server.
func (db *DB) DatabaseExists() (bool, error) {
	rows, err := db.server().Query(
		"SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?",
		db.cfg.Database,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check database existence: %w", err)
	}
	return len(rows) > 0, nil
}

// TableExists reports whether the named table exists in the configured
// database.
func (db *DB) TableExists(table string) (bool, error) {
	rows, err := db.server().Query(
		"SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?",
		db.cfg.Database, table,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check table existence: %w", err)
	}
	return len(rows) > 0, nil
}

// CreateDatabase ensures the configured database exists. With overwrite, an
// existing database is dropped first, losing all data in it.
func (db *DB) CreateDatabase(overwrite bool) error {
	name := db.cfg.Database
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}

	server := db.server()
	if overwrite {
		if _, err := server.Exec("DROP DATABASE IF EXISTS " + name); err != nil {
			return fmt.Errorf("failed to drop database %s: %w", name, err)
		}
		db.logger.Warn().Str("database", name).Msg("Dropped existing database")
	}

	if _, err := server.Exec("CREATE DATABASE IF NOT EXISTS " + name); err != nil {
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}
	db.logger.Info().Str("database", name).Msg("Database ready")
	return nil
}

// CreateTable ensures one managed table exists. With overwrite, an existing
// table is dropped first. The name must be one of the managed schema tables.
func (db *DB) CreateTable(name string, overwrite bool) error {
	for _, t := range tableDDL {
		if t.name != name {
			continue
		}
		if overwrite {
			if _, err := db.Exec("DROP TABLE IF EXISTS " + t.name); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", t.name, err)
			}
		}
		if _, err := db.Exec(t.ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.name, err)
		}
		db.logger.Debug().Str("table", t.name).Msg("Table ready")
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownTable, name)
}

// CreateTables ensures the whole managed schema exists, in dependency order.
// With overwrite, existing tables are dropped first in reverse order so the
// foreign keys do not block the drops.
func (db *DB) CreateTables(overwrite bool) error {
	if overwrite {
		for i := len(tableDDL) - 1; i >= 0; i-- {
			if _, err := db.Exec("DROP TABLE IF EXISTS " + tableDDL[i].name); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", tableDDL[i].name, err)
			}
		}
		db.logger.Warn().Str("database", db.cfg.Database).Msg("Dropped existing tables")
	}

	for _, t := range tableDDL {
		if _, err := db.Exec(t.ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.name, err)
		}
		db.logger.Debug().Str("table", t.name).Msg("Table ready")
	}
	return nil
}
