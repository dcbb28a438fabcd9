// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/app"
	"github.com/MKhiriev/go-employee-registry/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		}

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	// unreachable backend and every other non-2xx status
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// mapEmployeeError is mapAdapterError with 404 meaning a missing employee.
func mapEmployeeError(err error) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrEmployeeNotFound, err)
	}
	return mapAdapterError(err)
}

// mapValidationError turns a validators error into ErrInvalidInput for a
// missing name and ErrValidation for everything else.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrEmptyName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// extractBody extracts the body from a message of the form "conflict: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
