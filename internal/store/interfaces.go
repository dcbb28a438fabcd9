package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-employee-registry/models"
)

// SessionStore is the single-slot persistence of the client session.
// At most one session exists per store; Set overwrites it.
type SessionStore interface {
	// Get returns the stored session, [ErrSessionNotFound] when the slot
	// is empty or [ErrSessionCorrupted] when it cannot be decoded.
	Get(ctx context.Context) (models.Session, error)
	// Set replaces the stored session.
	Set(ctx context.Context, session models.Session) error
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
	// Close releases the underlying resources.
	Close() error
}

// UserFilter narrows [UserRepository.List]. An empty Email matches everyone.
type UserFilter struct {
	Email string
}

// UserRepository persists registry accounts on the backend.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	List(ctx context.Context, filter UserFilter) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Patch(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
}

// EmployeeRepository persists employee records on the backend.
type EmployeeRepository interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, id string) (models.Employee, error)
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Update(ctx context.Context, employee models.Employee) (models.Employee, error)
	Delete(ctx context.Context, id string) error
}

// ActivityLogRepository persists the audit trail on the backend.
type ActivityLogRepository interface {
	List(ctx context.Context) ([]models.ActivityLog, error)
	Create(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error)
	Delete(ctx context.Context, id string) error
}
