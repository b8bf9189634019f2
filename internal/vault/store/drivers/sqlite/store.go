// Package sqlite is the embedded SQLite driver for the vault store.
package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/vaultshare/internal/vault/store/drivers/sqldb"
	_ "modernc.org/sqlite"
)

// Dialect is the SQLite flavour of the shared queries.
var Dialect = sqldb.Dialect{
	Name:              "sqlite",
	Placeholder:       sqldb.Question,
	IsUniqueViolation: isUniqueViolation,
}

// DSN turns a file path into a modernc DSN with foreign keys on and times
// written in a sortable layout. ":memory:" yields a private in-memory database.
func DSN(path string) string {
	if path == "" || path == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite"
	}
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite"
}

// NewStore opens the database at dsn. Migrations are not applied; call
// ApplyMigrations once at startup.
func NewStore(dsn string) (*sqldb.Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection serialises writers and keeps :memory: databases
	// shared across the pool.
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sqldb.New(db, Dialect, applyMigrations), nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
