package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/listing"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/models"
)

// RecentAdditionsLimit is how many CREATE entries the dashboard shows.
const RecentAdditionsLimit = 5

type clientDashboardService struct {
	backend adapter.BackendAdapter
	session ClientSessionService

	logger *logger.Logger
}

func NewClientDashboardService(backend adapter.BackendAdapter, session ClientSessionService, logger *logger.Logger) ClientDashboardService {
	return &clientDashboardService{backend: backend, session: session, logger: logger}
}

func (s *clientDashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	if _, err := authorize(ctx, s.session, models.PermViewDashboard); err != nil {
		return models.DashboardStats{}, err
	}

	employees, err := s.backend.ListEmployees(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientDashboardService.Stats").Msg("error listing employees")
		return models.DashboardStats{}, mapAdapterError(err)
	}
	logs, err := s.backend.ListActivityLogs(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientDashboardService.Stats").Msg("error listing activity logs")
		return models.DashboardStats{}, mapAdapterError(err)
	}

	byDesignation := make(map[string]int)
	for _, e := range employees {
		byDesignation[e.Designation]++
	}

	recent := listing.SortLogsByTimestampDesc(listing.FilterLogsByAction(logs, models.ActionCreate))
	if len(recent) > RecentAdditionsLimit {
		recent = recent[:RecentAdditionsLimit]
	}

	return models.DashboardStats{
		TotalEmployees:  len(employees),
		ByDesignation:   byDesignation,
		RecentAdditions: recent,
	}, nil
}

// DesignationLink is the listing location filtered by designation.
func DesignationLink(designation string) string {
	return "/?" + url.Values{listing.ParamDesignation: {designation}}.Encode()
}
