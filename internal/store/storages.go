package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
)

// Storages groups the backend repositories.
type Storages struct {
	UserRepository        UserRepository
	EmployeeRepository    EmployeeRepository
	ActivityLogRepository ActivityLogRepository

	db *DB
}

// NewStorages connects to the backend database, applies migrations and
// builds every repository over the shared connection.
func NewStorages(ctx context.Context, cfg config.ServerDB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	db, err := NewConnectDB(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		EmployeeRepository:    NewEmployeeRepository(db, logger),
		ActivityLogRepository: NewActivityLogRepository(db, logger),
		db:                    db,
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
