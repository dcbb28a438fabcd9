package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-employee-registry/models"
)

// MinPasswordLength is the shortest accepted registration password, in runes.
const MinPasswordLength = 6

// MaxPasswordLength is the longest password bcrypt can hash, in bytes.
const MaxPasswordLength = 72

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldAction   = "action"
	FieldUserID   = "user_id"
)

// RegistryValidator implements [Validator] for the registry models:
// Registration, User, UserPatch, Employee and ActivityLog, in value or
// pointer form.
type RegistryValidator struct {
}

// NewRegistryValidator constructs a RegistryValidator.
func NewRegistryValidator() Validator {
	return &RegistryValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set per type is checked in a fixed order; the first failure is returned.
//
// Returns ErrUnsupportedType if obj is not a known model.
func (v *RegistryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UserPatch:
		return v.validateUserPatch(value)
	case *models.UserPatch:
		return v.validateUserPatch(*value)

	case models.Employee:
		return v.validateEmployee(value, fields...)
	case *models.Employee:
		return v.validateEmployee(*value, fields...)

	case models.ActivityLog:
		return v.validateActivityLog(value, fields...)
	case *models.ActivityLog:
		return v.validateActivityLog(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegistration checks name first so that a missing name is reported
// even when the rest of the form is also wrong.
//
// Default fields: name, email, password, role. An empty role is accepted and
// later defaults to employee.
func (v *RegistryValidator) validateRegistration(r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !validEmail(r.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(r.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(r.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		case FieldRole:
			if r.Role != "" && !r.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateUser checks a stored account. Default fields: email, role.
func (v *RegistryValidator) validateUser(u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(u.ID) == "" {
				return ErrEmptyID
			}
		case FieldName:
			if strings.TrimSpace(u.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !validEmail(u.Email) {
				return ErrInvalidEmail
			}
		case FieldRole:
			if !u.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateUserPatch checks only the fields the patch sets.
func (v *RegistryValidator) validateUserPatch(p models.UserPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrEmptyName
	}
	if p.Email != nil && !validEmail(*p.Email) {
		return ErrInvalidEmail
	}
	if p.Role != nil && !p.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// validateEmployee checks an employee record. Default fields: name.
func (v *RegistryValidator) validateEmployee(e models.Employee, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(e.ID) == "" {
				return ErrEmptyID
			}
		case FieldName:
			if strings.TrimSpace(e.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if e.Email != "" && !validEmail(e.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateActivityLog checks an audit entry. Default fields: action.
func (v *RegistryValidator) validateActivityLog(l models.ActivityLog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAction}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			if !l.Action.Valid() {
				return ErrInvalidAction
			}
		case FieldUserID:
			if strings.TrimSpace(l.UserID) == "" {
				return ErrEmptyUserID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validEmail(email string) bool {
	return strings.Contains(email, "@")
}
