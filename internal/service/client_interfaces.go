package service

import (
	"context"

	"github.com/MKhiriev/go-employee-registry/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the notion of the current user. The user is
// derived from the single persisted session; every read fails closed, so a
// missing or unreadable session means "logged out".
type ClientSessionService interface {
	// Register creates a new account. It validates the input before any
	// network call, rejects a registered email with ErrDuplicateEmail and
	// never logs the new user in.
	Register(ctx context.Context, reg models.Registration) (models.User, error)

	// Login checks the credentials, replaces the persisted session and
	// records a LOGIN entry.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Logout records a LOGOUT entry when a session exists and clears the
	// session unconditionally. Only a failure to clear is returned.
	Logout(ctx context.Context) error

	// CurrentUser returns the session user, or false when logged out.
	CurrentUser(ctx context.Context) (models.SessionUser, bool)

	// Token returns the session token, or false when logged out.
	Token(ctx context.Context) (string, bool)

	// IsAuthenticated reports whether a session exists.
	IsAuthenticated(ctx context.Context) bool

	// IsAdmin reports whether the session user holds the admin role.
	IsAdmin(ctx context.Context) bool

	// HasPermission looks permission up in the role table. Logged-out users
	// and unknown roles have no permissions.
	HasPermission(ctx context.Context, permission models.Permission) bool

	// Authorize is the route guard.
	Authorize(ctx context.Context, req models.RouteRequirement) models.RouteDecision

	// RecordActivity schedules an audit entry write and returns immediately.
	// Failures are logged only.
	RecordActivity(ctx context.Context, req models.ActivityRequest)

	// UpdateProfile patches the account and, when the session belongs to
	// userID, merges the changed identity fields into it.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
}

// ClientEmployeeService performs employee CRUD on behalf of the session user.
// Every call checks the matching permission first.
type ClientEmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, id string) (models.Employee, error)
	// Create stores a new employee and records a CREATE entry.
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	// Update replaces the employee with id and records an UPDATE entry.
	Update(ctx context.Context, id string, employee models.Employee) (models.Employee, error)
	// Delete removes the employee and records a DELETE entry carrying the
	// employee name resolved before the delete.
	Delete(ctx context.Context, id string) error
}

// ClientActivityService reads and prunes the audit trail.
type ClientActivityService interface {
	// List returns every entry, newest first.
	List(ctx context.Context) ([]models.ActivityLog, error)
	// Page filters the newest-first trail by action and returns one page.
	Page(ctx context.Context, action models.Action, page int) (models.Page[models.ActivityLog], error)
	// Delete removes one entry.
	Delete(ctx context.Context, id string) error
}

// ClientDashboardService aggregates the admin dashboard.
type ClientDashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}
