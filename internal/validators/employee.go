package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/employee-service/models"
)

const (
	FieldName = "name"
	FieldRole = "role"
)

type EmployeeValidator struct {
}

func NewEmployeeValidator() Validator {
	return &EmployeeValidator{}
}

// Validate checks employee payloads before they reach the store. A draft (or
// employee) passes when both name and role contain at least one non-space
// character.
func (v *EmployeeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EmployeeDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.EmployeeDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.Employee:
		return v.validateDraft(ctx, models.EmployeeDraft{Name: value.Name, Role: value.Role}, fields...)
	case *models.Employee:
		return v.validateDraft(ctx, models.EmployeeDraft{Name: value.Name, Role: value.Role}, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EmployeeValidator) validateDraft(_ context.Context, draft models.EmployeeDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldRole}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if isBlank(draft.Name) {
				return ErrEmptyName
			}
		case FieldRole:
			if isBlank(draft.Role) {
				return ErrEmptyRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
