// Package migrations embeds the goose schema migrations of the backend
// database and of the client session database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

const (
	serverDir = "server"
	clientDir = "client"
)

// MigrateServer applies the backend schema (users, employees, activity_logs)
// using the goose dialect that matches the database/sql driver name
// ("sqlite3" or "pgx").
func MigrateServer(db *sql.DB, driver string) error {
	return migrate(db, driver, serverDir)
}

// MigrateClient applies the single-slot session schema to a client SQLite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, "sqlite3", clientDir)
}

func migrate(db *sql.DB, driver, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
