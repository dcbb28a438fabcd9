package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employee-registry/internal/validators"
	"github.com/MKhiriev/go-employee-registry/models"
)

// UserServiceWrapper decorates a UserService, e.g. with validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// EmployeeServiceWrapper decorates an EmployeeService.
type EmployeeServiceWrapper interface {
	Wrap(EmployeeService) EmployeeService
}

// ActivityLogServiceWrapper decorates an ActivityLogService.
type ActivityLogServiceWrapper interface {
	Wrap(ActivityLogService) ActivityLogService
}

// ── Users ────────────────────────────────────────────────────────────────────

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{validator: validators.NewRegistryValidator()}
}

func (v *UserValidationService) Create(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldName, validators.FieldRole); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, user)
}

func (v *UserValidationService) List(ctx context.Context, email string) ([]models.User, error) {
	return v.inner.List(ctx, email)
}

func (v *UserValidationService) Patch(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Patch(ctx, id, patch)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// ── Employees ────────────────────────────────────────────────────────────────

type EmployeeValidationService struct {
	inner     EmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService() EmployeeServiceWrapper {
	return &EmployeeValidationService{validator: validators.NewRegistryValidator()}
}

func (v *EmployeeValidationService) List(ctx context.Context) ([]models.Employee, error) {
	return v.inner.List(ctx)
}

func (v *EmployeeValidationService) Get(ctx context.Context, id string) (models.Employee, error) {
	return v.inner.Get(ctx, id)
}

func (v *EmployeeValidationService) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	if err := v.validator.Validate(ctx, employee, validators.FieldName); err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, employee)
}

func (v *EmployeeValidationService) Update(ctx context.Context, employee models.Employee) (models.Employee, error) {
	if err := v.validator.Validate(ctx, employee, validators.FieldID, validators.FieldName); err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, employee)
}

func (v *EmployeeValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *EmployeeValidationService) Wrap(wrapped EmployeeService) EmployeeService {
	v.inner = wrapped
	return v
}

// ── Activity logs ────────────────────────────────────────────────────────────

type ActivityLogValidationService struct {
	inner     ActivityLogService
	validator validators.Validator
}

func NewActivityLogValidationService() ActivityLogServiceWrapper {
	return &ActivityLogValidationService{validator: validators.NewRegistryValidator()}
}

func (v *ActivityLogValidationService) List(ctx context.Context) ([]models.ActivityLog, error) {
	return v.inner.List(ctx)
}

func (v *ActivityLogValidationService) Create(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error) {
	if err := v.validator.Validate(ctx, entry, validators.FieldAction); err != nil {
		return models.ActivityLog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, entry)
}

func (v *ActivityLogValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *ActivityLogValidationService) Wrap(wrapped ActivityLogService) ActivityLogService {
	v.inner = wrapped
	return v
}
