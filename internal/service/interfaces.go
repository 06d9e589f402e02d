package service

import (
	"context"

	"github.com/MKhiriev/employee-service/models"
)

// EmployeeService is the business layer behind the employee resource API.
// It validates incoming payloads and orchestrates the store so the HTTP
// handlers stay a thin status-code mapping.
type EmployeeService interface {
	// List returns all persisted employees.
	List(ctx context.Context) ([]models.Employee, error)

	// Create validates draft and persists it under a store-assigned id.
	Create(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error)

	// Get returns the employee with the given id or
	// [store.ErrEmployeeNotFound].
	Get(ctx context.Context, id int64) (models.Employee, error)

	// Replace validates draft and puts the record into the desired state:
	// updating in place when id exists, creating under the path id when it
	// does not. The returned flag reports whether a new record was
	// created.
	Replace(ctx context.Context, id int64, draft models.EmployeeDraft) (models.Employee, bool, error)

	// Delete removes the record with the given id; absent ids are a
	// no-op.
	Delete(ctx context.Context, id int64) error
}
