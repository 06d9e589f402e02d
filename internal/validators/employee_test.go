package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/employee-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeValidator_Validate_Draft(t *testing.T) {
	v := NewEmployeeValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   models.EmployeeDraft
		fields  []string
		wantErr error
	}{
		{
			name:  "valid draft",
			draft: models.EmployeeDraft{Name: "John Doe", Role: "Developer"},
		},
		{
			name:    "empty name",
			draft:   models.EmployeeDraft{Name: "", Role: "Developer"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "whitespace-only name",
			draft:   models.EmployeeDraft{Name: "   ", Role: "Developer"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty role",
			draft:   models.EmployeeDraft{Name: "John Doe", Role: ""},
			wantErr: ErrEmptyRole,
		},
		{
			name:    "both blank reports name first",
			draft:   models.EmployeeDraft{Name: "", Role: ""},
			wantErr: ErrEmptyName,
		},
		{
			name:   "field scoping: only role checked",
			draft:  models.EmployeeDraft{Name: "", Role: "Developer"},
			fields: []string{FieldRole},
		},
		{
			name:    "unknown field",
			draft:   models.EmployeeDraft{Name: "John Doe", Role: "Developer"},
			fields:  []string{"department"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.draft, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEmployeeValidator_Validate_PointerAndEmployee(t *testing.T) {
	v := NewEmployeeValidator()
	ctx := context.Background()

	draft := &models.EmployeeDraft{Name: "Sam", Role: "Tester"}
	require.NoError(t, v.Validate(ctx, draft))

	emp := models.Employee{ID: 1, Name: "Sam", Role: ""}
	assert.ErrorIs(t, v.Validate(ctx, emp), ErrEmptyRole)
	assert.ErrorIs(t, v.Validate(ctx, &emp), ErrEmptyRole)
}

func TestEmployeeValidator_Validate_UnsupportedType(t *testing.T) {
	v := NewEmployeeValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
