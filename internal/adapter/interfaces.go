// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the registry client
// and the JSON-store REST backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnavailable] when the
// backend cannot be reached at all).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-employee-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines the calls the client makes against the backend
// collections /users, /employee and /activityLogs. Implementations are
// responsible for serialisation and for mapping transport-level errors to
// the sentinel values defined in this package.
type BackendAdapter interface {
	// FindUsersByEmail returns the users whose email equals email
	// (GET /users?email=). An empty result is not an error.
	FindUsersByEmail(ctx context.Context, email string) ([]models.User, error)

	// CreateUser stores a new account (POST /users) and returns the stored record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// PatchUser applies a partial update (PATCH /users/:id) and returns the
	// updated record.
	PatchUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error)

	// ListEmployees returns every employee record (GET /employee).
	ListEmployees(ctx context.Context) ([]models.Employee, error)

	// GetEmployee returns a single employee (GET /employee/:id).
	GetEmployee(ctx context.Context, id string) (models.Employee, error)

	// CreateEmployee stores a new employee (POST /employee).
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)

	// UpdateEmployee replaces the employee with employee.ID (PUT /employee/:id).
	UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)

	// DeleteEmployee removes an employee (DELETE /employee/:id).
	DeleteEmployee(ctx context.Context, id string) error

	// ListActivityLogs returns the audit trail in backend order (GET /activityLogs).
	ListActivityLogs(ctx context.Context) ([]models.ActivityLog, error)

	// CreateActivityLog appends one audit entry (POST /activityLogs).
	CreateActivityLog(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error)

	// DeleteActivityLog removes one audit entry (DELETE /activityLogs/:id).
	DeleteActivityLog(ctx context.Context, id string) error

	// Version returns the build information of the backend (GET /version).
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
