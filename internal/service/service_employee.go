package service

import (
	"context"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/store"
	"github.com/MKhiriev/go-employee-registry/internal/utils"
	"github.com/MKhiriev/go-employee-registry/models"
)

type employeeService struct {
	employeeRepository store.EmployeeRepository
	ids                *utils.UUIDGenerator

	logger *logger.Logger
}

func NewEmployeeService(employeeRepository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

func (s *employeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.employeeRepository.List(ctx)
}

func (s *employeeService) Get(ctx context.Context, id string) (models.Employee, error) {
	return s.employeeRepository.Get(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	if employee.ID == "" {
		employee.ID = s.ids.Generate()
	}
	return s.employeeRepository.Create(ctx, employee)
}

func (s *employeeService) Update(ctx context.Context, employee models.Employee) (models.Employee, error) {
	return s.employeeRepository.Update(ctx, employee)
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.employeeRepository.Delete(ctx, id)
}
