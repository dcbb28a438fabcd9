package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/migrations"
)

// DB wraps a database/sql connection together with the driver name it was
// opened with, so that queries are rendered with the right placeholders.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnectDB opens the backend database selected by cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.ServerDB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the backend schema migrations.
func (db *DB) Migrate() error {
	return migrations.MigrateServer(db.DB, db.driver)
}

// builder returns a squirrel statement builder using the placeholder format of the driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Timestamps are kept as RFC 3339 text so both drivers share one schema.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
