package models

import "encoding/json"

// Employee represents a single persisted employee record.
// The ID is assigned by the store at creation time and never changes
// afterwards; Name and Role are guaranteed non-blank for every persisted
// record (enforced by the validators package before the store is reached).
type Employee struct {
	// ID is the store-assigned unique identifier of the record.
	ID int64 `json:"id"`

	// Name is the employee's display name. Never blank once persisted.
	Name string `json:"name"`

	// Role is the employee's job role. Never blank once persisted.
	Role string `json:"role"`
}

// EmployeeDraft is the request-body shape accepted by the create and replace
// operations. It deliberately has no ID field: any "id" key supplied by the
// client is dropped during decoding, so identity always comes from the store
// (create) or from the URL path (replace).
type EmployeeDraft struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// employeeWire pins the JSON wire shape of Employee to exactly
// {id, name, role} independently of any future struct changes.
type employeeWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// MarshalJSON serializes the employee as {"id": ..., "name": ..., "role": ...}.
func (e Employee) MarshalJSON() ([]byte, error) {
	return json.Marshal(employeeWire{ID: e.ID, Name: e.Name, Role: e.Role})
}

// UnmarshalJSON deserializes an employee from its wire shape, ignoring any
// unknown keys.
func (e *Employee) UnmarshalJSON(data []byte) error {
	var w employeeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.ID = w.ID
	e.Name = w.Name
	e.Role = w.Role
	return nil
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}
