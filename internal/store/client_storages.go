package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Session is the single-slot store of the logged-in user.
	Session SessionStore
}

// NewClientStorages initialises the client storage layer from cfg.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.SessionDSN).Msg("creating client storages...")

	session, err := NewSessionStore(ctx, cfg.SessionDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("session store error: %w", err)
	}

	return &ClientStorages{Session: session}, nil
}

// Close releases every storage.
func (s *ClientStorages) Close() error {
	return s.Session.Close()
}
