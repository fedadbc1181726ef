// Package storage provides the SQLite persistence layer for the fieldtask
// server: users, bearer-token sessions, and tasks.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed store for all server state.
type Store struct {
	db *sql.DB
}

// Open creates a new SQLite-backed store. The dsn can be a file path or
// ":memory:" for an in-memory database.
func Open(dsn string) (*Store, error) {
	// Configure connection string with pragmas
	connStr := dsn
	if !strings.Contains(dsn, "?") {
		connStr += "?"
	} else {
		connStr += "&"
	}
	connStr += "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_synchronous=NORMAL"

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
