package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID          = errors.New("id is required")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("email must contain @")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
	ErrInvalidRole      = errors.New("role must be admin or employee")
	ErrInvalidAction    = errors.New("invalid activity action")
	ErrEmptyUserID      = errors.New("user id is required")
)
