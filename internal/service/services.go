package service

import (
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/store"
	"github.com/MKhiriev/go-employee-registry/models"
)

type Services struct {
	UserService        UserService
	EmployeeService    EmployeeService
	ActivityLogService ActivityLogService
	AppInfoService     AppInfoService
}

// NewServices wires the server services over storages, each behind its
// validation wrapper.
func NewServices(storages *store.Storages, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:        NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
		EmployeeService:    NewEmployeeValidationService().Wrap(NewEmployeeService(storages.EmployeeRepository, logger)),
		ActivityLogService: NewActivityLogValidationService().Wrap(NewActivityLogService(storages.ActivityLogRepository, logger)),
		AppInfoService:     appInfo,
	}, nil
}
