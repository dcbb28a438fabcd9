package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/models"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type appInfoService struct {
	info models.AppBuildInfo
	db   Pinger

	logger *logger.Logger
}

// NewAppInfoService reports info as the build of the running server. db may
// be nil, in which case Ping always succeeds.
func NewAppInfoService(info models.AppBuildInfo, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		db:     db,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.AppBuildInfo {
	return s.info
}

func (s *appInfoService) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Err(err).Str("func", "appInfoService.Ping").Msg("database is unreachable")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
