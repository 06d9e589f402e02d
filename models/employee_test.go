package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_MarshalJSON_WireShape(t *testing.T) {
	e := Employee{ID: 7, Name: "John Doe", Role: "Developer"}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Len(t, got, 3)
	assert.EqualValues(t, 7, got["id"])
	assert.Equal(t, "John Doe", got["name"])
	assert.Equal(t, "Developer", got["role"])
}

func TestEmployee_UnmarshalJSON_IgnoresUnknownKeys(t *testing.T) {
	var e Employee
	err := json.Unmarshal([]byte(`{"id":3,"name":"Sam","role":"Tester","department":"QA"}`), &e)
	require.NoError(t, err)

	assert.Equal(t, Employee{ID: 3, Name: "Sam", Role: "Tester"}, e)
}

func TestEmployeeDraft_DropsClientSuppliedID(t *testing.T) {
	var d EmployeeDraft
	err := json.Unmarshal([]byte(`{"id":99,"name":"Sam","role":"Tester"}`), &d)
	require.NoError(t, err)

	assert.Equal(t, EmployeeDraft{Name: "Sam", Role: "Tester"}, d)
}
