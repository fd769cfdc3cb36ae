// Package migrations manages the SQLite schema migrations for the
// [SQLiteBackend] storage backend. It uses the goose migration library with
// embedded SQL files, ensuring migrations are compiled into the binary and
// applied automatically regardless of the working directory or deployment
// environment.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// embedMigrations holds all *.sql migration files embedded into the binary
// at compile time via the go:embed directive.
//
//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations to db using goose.
//
// It is intended to be called once, before the database is used by any
// other component — [NewSQLiteBackend] calls it during construction.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
