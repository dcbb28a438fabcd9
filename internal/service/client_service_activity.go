package service

import (
	"context"

	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/listing"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/models"
)

type clientActivityService struct {
	backend adapter.BackendAdapter
	session ClientSessionService

	logger *logger.Logger
}

func NewClientActivityService(backend adapter.BackendAdapter, session ClientSessionService, logger *logger.Logger) ClientActivityService {
	return &clientActivityService{backend: backend, session: session, logger: logger}
}

func (s *clientActivityService) List(ctx context.Context) ([]models.ActivityLog, error) {
	if _, err := authorize(ctx, s.session, models.PermViewLogs); err != nil {
		return nil, err
	}

	logs, err := s.backend.ListActivityLogs(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientActivityService.List").Msg("error listing activity logs")
		return nil, mapAdapterError(err)
	}
	return listing.SortLogsByTimestampDesc(logs), nil
}

func (s *clientActivityService) Page(ctx context.Context, action models.Action, page int) (models.Page[models.ActivityLog], error) {
	logs, err := s.List(ctx)
	if err != nil {
		return models.Page[models.ActivityLog]{}, err
	}
	return listing.Paginate(listing.FilterLogsByAction(logs, action), page, listing.PageSizeActivityLogs), nil
}

func (s *clientActivityService) Delete(ctx context.Context, id string) error {
	if _, err := authorize(ctx, s.session, models.PermViewLogs); err != nil {
		return err
	}

	if err := s.backend.DeleteActivityLog(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "clientActivityService.Delete").Msg("error deleting activity log")
		return mapAdapterError(err)
	}
	return nil
}
