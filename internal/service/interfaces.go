package service

import (
	"context"

	"github.com/MKhiriev/go-employee-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService backs the /users collection of the development server.
type UserService interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	// List returns every user, or the users with exactly this email when
	// email is not empty.
	List(ctx context.Context, email string) ([]models.User, error)
	Patch(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
}

// EmployeeService backs the /employee collection.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, id string) (models.Employee, error)
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Update(ctx context.Context, employee models.Employee) (models.Employee, error)
	Delete(ctx context.Context, id string) error
}

// ActivityLogService backs the /activityLogs collection.
type ActivityLogService interface {
	List(ctx context.Context) ([]models.ActivityLog, error)
	Create(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error)
	Delete(ctx context.Context, id string) error
}

// AppInfoService reports the build and health of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
	// Ping fails with ErrStorageUnavailable when the database cannot be reached.
	Ping(ctx context.Context) error
}
