package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/validators"
	"github.com/MKhiriev/go-employee-registry/models"
)

const (
	detailsEmployeeCreated = "Employee created"
	detailsEmployeeUpdated = "Employee updated"
	detailsEmployeeDeleted = "Employee deleted"
)

type clientEmployeeService struct {
	backend   adapter.BackendAdapter
	session   ClientSessionService
	validator validators.Validator

	logger *logger.Logger
}

func NewClientEmployeeService(backend adapter.BackendAdapter, session ClientSessionService, logger *logger.Logger) ClientEmployeeService {
	return &clientEmployeeService{
		backend:   backend,
		session:   session,
		validator: validators.NewRegistryValidator(),
		logger:    logger,
	}
}

func (s *clientEmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	if _, err := authorize(ctx, s.session, models.PermReadEmployee); err != nil {
		return nil, err
	}

	employees, err := s.backend.ListEmployees(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientEmployeeService.List").Msg("error listing employees")
		return nil, mapAdapterError(err)
	}
	return employees, nil
}

func (s *clientEmployeeService) Get(ctx context.Context, id string) (models.Employee, error) {
	if _, err := authorize(ctx, s.session, models.PermReadEmployee); err != nil {
		return models.Employee{}, err
	}

	employee, err := s.backend.GetEmployee(ctx, id)
	if err != nil {
		return models.Employee{}, mapEmployeeError(err)
	}
	return employee, nil
}

func (s *clientEmployeeService) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	actor, err := authorize(ctx, s.session, models.PermCreateEmployee)
	if err != nil {
		return models.Employee{}, err
	}
	if err = s.validator.Validate(ctx, employee, validators.FieldName, validators.FieldEmail); err != nil {
		return models.Employee{}, mapValidationError(err)
	}

	created, err := s.backend.CreateEmployee(ctx, employee)
	if err != nil {
		s.logger.Err(err).Str("func", "clientEmployeeService.Create").Msg("error creating employee")
		return models.Employee{}, mapAdapterError(err)
	}

	s.session.RecordActivity(ctx, models.ActivityRequest{
		UserID:       actor.ID,
		UserEmail:    actor.Email,
		Action:       models.ActionCreate,
		EmployeeID:   created.ID,
		EmployeeName: created.Name,
		Details:      detailsEmployeeCreated,
	})
	return created, nil
}

func (s *clientEmployeeService) Update(ctx context.Context, id string, employee models.Employee) (models.Employee, error) {
	actor, err := authorize(ctx, s.session, models.PermUpdateEmployee)
	if err != nil {
		return models.Employee{}, err
	}

	employee.ID = id
	if err = s.validator.Validate(ctx, employee, validators.FieldID, validators.FieldName, validators.FieldEmail); err != nil {
		return models.Employee{}, mapValidationError(err)
	}

	updated, err := s.backend.UpdateEmployee(ctx, employee)
	if err != nil {
		s.logger.Err(err).Str("func", "clientEmployeeService.Update").Msg("error updating employee")
		return models.Employee{}, mapEmployeeError(err)
	}

	s.session.RecordActivity(ctx, models.ActivityRequest{
		UserID:       actor.ID,
		UserEmail:    actor.Email,
		Action:       models.ActionUpdate,
		EmployeeID:   updated.ID,
		EmployeeName: updated.Name,
		Details:      detailsEmployeeUpdated,
	})
	return updated, nil
}

// Delete resolves the employee name before the record disappears, since the
// audit entry can no longer look it up afterwards.
func (s *clientEmployeeService) Delete(ctx context.Context, id string) error {
	actor, err := authorize(ctx, s.session, models.PermDeleteEmployee)
	if err != nil {
		return err
	}

	var name string
	if employee, getErr := s.backend.GetEmployee(ctx, id); getErr == nil {
		name = employee.Name
	} else {
		s.logger.Debug().Err(getErr).Str("employee_id", id).Msg("employee name lookup before delete failed")
	}

	if err = s.backend.DeleteEmployee(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "clientEmployeeService.Delete").Msg("error deleting employee")
		return mapEmployeeError(err)
	}

	s.session.RecordActivity(ctx, models.ActivityRequest{
		UserID:       actor.ID,
		UserEmail:    actor.Email,
		Action:       models.ActionDelete,
		EmployeeID:   id,
		EmployeeName: name,
		Details:      detailsEmployeeDeleted,
	})
	return nil
}

// authorize returns the session user when it holds permission.
func authorize(ctx context.Context, session ClientSessionService, permission models.Permission) (models.SessionUser, error) {
	user, ok := session.CurrentUser(ctx)
	if !ok {
		return models.SessionUser{}, ErrNotAuthenticated
	}
	if !session.HasPermission(ctx, permission) {
		return models.SessionUser{}, fmt.Errorf("%w: %s", ErrPermissionDenied, permission)
	}
	return user, nil
}
