// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// employee registry server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client matches on them to turn a bare status code into a domain error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRecordNotFound is returned when the addressed record does not exist.
	MsgRecordNotFound = "record not found"

	// MsgRecordAlreadyExists is returned when a record with the same id is
	// already stored.
	MsgRecordAlreadyExists = "record already exists"

	// MsgEmailAlreadyExists is returned when a user is created with an email
	// that is already registered.
	MsgEmailAlreadyExists = "email already registered"

	// MsgNoIDProvided is returned when a route requires an {id} segment but
	// it is empty.
	MsgNoIDProvided = "no id provided"
)
