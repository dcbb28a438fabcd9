package service

import "errors"

// Client errors. Callers match them with errors.Is; the wrapped cause is
// kept for logging.
var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUpdateRejected     = errors.New("update rejected")
	ErrNetwork            = errors.New("network error")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrEmployeeNotFound   = errors.New("employee not found")

	// ErrLogWriteFailure marks a failed activity-log write. It is only ever
	// logged.
	ErrLogWriteFailure = errors.New("activity log write failed")
)

// Server errors.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage unavailable")
)
