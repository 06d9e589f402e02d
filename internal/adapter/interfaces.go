// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the employee-service server.
//
// The primary abstraction is [EmployeeClient], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPEmployeeClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/employee-service/models"
)

// EmployeeClient defines transport-agnostic access to the employee REST API.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type EmployeeClient interface {
	// List fetches all employee records.
	List(ctx context.Context) ([]models.Employee, error)

	// Create submits a new employee draft and returns the stored record with
	// its server-assigned id.
	Create(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error)

	// Get fetches a single employee by id. Returns [ErrNotFound] (wrapped)
	// when no record with that id exists.
	Get(ctx context.Context, id int64) (models.Employee, error)

	// Replace overwrites the record at id with the draft, creating it when
	// absent. The boolean reports whether a new record was created.
	Replace(ctx context.Context, id int64, draft models.EmployeeDraft) (models.Employee, bool, error)

	// Delete removes the record at id. Missing records are not an error.
	Delete(ctx context.Context, id int64) error
}
