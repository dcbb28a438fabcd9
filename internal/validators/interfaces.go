// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks registry input before it reaches the backend.
//
// The client validates registrations, profile patches and employee forms
// before any network call; the server repeats the same checks on every
// write it accepts, so a hand-crafted request cannot store a record the
// client would have refused.
//
// Every rule failure is one of the Err* sentinels in errors.go, which the
// service layer maps to its own validation error.
package validators

import "context"

// Validator checks a registry model.
type Validator interface {
	// Validate checks obj. When fields are given only those rules run, in
	// the given order; names are the Field* constants.
	Validate(ctx context.Context, obj any, fields ...string) error
}
