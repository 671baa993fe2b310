// Package sqlite provides the documentation database artifact: a single
// SQLite file holding compressed entries plus build metadata.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/fwojciec/msdocs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// NewDB creates a new DB instance with the given path, for building.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// NewReadOnlyDB creates a DB for lookups against an existing artifact.
// Open fails with ENOTFOUND if the file does not exist, and no schema is
// created: a missing or empty artifact is a deployment problem that should
// surface once at load time, not be papered over with an empty database.
func NewReadOnlyDB(path string) *DB {
	return &DB{path: path, readOnly: true}
}

// Open opens the database connection and, for writable databases, creates
// the schema if needed.
func (db *DB) Open() error {
	if db.readOnly {
		if _, err := os.Stat(db.path); err != nil {
			return msdocs.Errorf(msdocs.ENOTFOUND, "database %q not found", db.path)
		}
	}

	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode speeds up the build's bulk inserts considerably. Not
	// applicable to in-memory or read-only databases.
	if !db.readOnly && db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if !db.readOnly {
		if err := db.createSchema(); err != nil {
			conn.Close()
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			name TEXT PRIMARY KEY,
			description BLOB NOT NULL,
			description_hash TEXT NOT NULL,
			raw_size INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
