// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// employee-service handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded as
	// JSON at all.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails validation (e.g. blank name or role).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmployeeNotFound is returned when a request targets an employee
	// record that does not exist. It is also used when the {id} path segment
	// is not a valid integer: such paths identify no resource, so the API
	// answers 404 rather than 400.
	MsgEmployeeNotFound = "employee not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
