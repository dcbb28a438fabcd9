package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/store"
	"github.com/MKhiriev/go-employee-registry/internal/utils"
	"github.com/MKhiriev/go-employee-registry/models"
)

// activityLogService keeps backend order on List; sorting is the client's job.
type activityLogService struct {
	activityLogRepository store.ActivityLogRepository
	ids                   *utils.UUIDGenerator
	now                   func() time.Time

	logger *logger.Logger
}

func NewActivityLogService(activityLogRepository store.ActivityLogRepository, logger *logger.Logger) ActivityLogService {
	return &activityLogService{
		activityLogRepository: activityLogRepository,
		ids:                   utils.NewUUIDGenerator(),
		now:                   time.Now,
		logger:                logger,
	}
}

func (s *activityLogService) List(ctx context.Context) ([]models.ActivityLog, error) {
	return s.activityLogRepository.List(ctx)
}

func (s *activityLogService) Create(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error) {
	if entry.ID == "" {
		entry.ID = s.ids.GenerateWithPrefix(activityLogIDPrefix)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	return s.activityLogRepository.Create(ctx, entry)
}

func (s *activityLogService) Delete(ctx context.Context, id string) error {
	return s.activityLogRepository.Delete(ctx, id)
}
