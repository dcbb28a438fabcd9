package service

import (
	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/store"
	"github.com/MKhiriev/go-employee-registry/internal/workers"
)

type ClientServices struct {
	SessionService   ClientSessionService
	EmployeeService  ClientEmployeeService
	ActivityService  ClientActivityService
	DashboardService ClientDashboardService
}

func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, dispatcher workers.Dispatcher, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(storages.Session, backend, dispatcher, logger)

	return &ClientServices{
		SessionService:   sessionSvc,
		EmployeeService:  NewClientEmployeeService(backend, sessionSvc, logger),
		ActivityService:  NewClientActivityService(backend, sessionSvc, logger),
		DashboardService: NewClientDashboardService(backend, sessionSvc, logger),
	}
}
