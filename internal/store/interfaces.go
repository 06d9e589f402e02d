package store

import (
	"context"

	"github.com/MKhiriev/employee-service/models"
)

// EmployeeRepository is the persistence contract backing employee records.
// The repository owns identity: ids are assigned on Create and never reused
// for a still-existing record.
//
// Every method is atomic with respect to concurrent calls on the same id:
// an Update either applies a whole submitted (name, role) pair or none of it,
// and concurrent Creates always receive distinct ids.
type EmployeeRepository interface {
	// Create persists draft under a new, previously-unused id and returns
	// the full record including the assigned id.
	Create(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error)

	// CreateWithID persists draft under the caller-chosen id. It backs the
	// replace-as-create path, where the id comes from the request URL.
	// Returns [ErrEmployeeAlreadyExists] if the id is already taken.
	CreateWithID(ctx context.Context, id int64, draft models.EmployeeDraft) (models.Employee, error)

	// FindByID returns the record with the given id, or
	// [ErrEmployeeNotFound]. Pure lookup, no side effects.
	FindByID(ctx context.Context, id int64) (models.Employee, error)

	// FindAll returns a snapshot of all currently persisted records.
	// Order carries no meaning.
	FindAll(ctx context.Context) ([]models.Employee, error)

	// Update overwrites name and role of the record with the given id and
	// returns the updated record. Returns [ErrEmployeeNotFound] when no
	// such record exists; callers wanting upsert semantics fall back to
	// CreateWithID.
	Update(ctx context.Context, id int64, draft models.EmployeeDraft) (models.Employee, error)

	// DeleteByID removes the record if present. Deleting an absent id is
	// a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error
}
