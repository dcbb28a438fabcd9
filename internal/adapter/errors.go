package adapter

import "errors"

var (
	// ErrUnavailable is returned when the backend cannot be reached: the
	// request produced no response, or a gateway in front of the backend
	// answered 502, 503 or 504.
	ErrUnavailable = errors.New("server unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
