package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/models"
)

// memoryEmployeeRepository is the in-process implementation of
// [EmployeeRepository]. A single RWMutex guards the record map and the id
// counter, which gives every operation the same whole-record atomicity the
// SQL backends get from their transactions: concurrent creates always
// receive distinct ids, and a concurrent update is applied entirely or not
// at all.
type memoryEmployeeRepository struct {
	logger *logger.Logger

	mu        sync.RWMutex
	nextID    int64
	employees map[int64]models.Employee
}

// NewMemoryEmployeeRepository constructs an empty in-memory
// [EmployeeRepository]. Ids start at 1.
func NewMemoryEmployeeRepository(logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating in-memory employee repository")
	return &memoryEmployeeRepository{
		logger:    logger,
		nextID:    1,
		employees: make(map[int64]models.Employee),
	}
}

func (r *memoryEmployeeRepository) Create(_ context.Context, draft models.EmployeeDraft) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee := models.Employee{
		ID:   r.nextID,
		Name: draft.Name,
		Role: draft.Role,
	}
	r.employees[employee.ID] = employee
	r.nextID++

	return employee, nil
}

func (r *memoryEmployeeRepository) CreateWithID(_ context.Context, id int64, draft models.EmployeeDraft) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[id]; exists {
		return models.Employee{}, ErrEmployeeAlreadyExists
	}

	employee := models.Employee{
		ID:   id,
		Name: draft.Name,
		Role: draft.Role,
	}
	r.employees[id] = employee

	// keep the counter ahead of explicitly chosen ids so plain Create
	// never reuses one of them
	if id >= r.nextID {
		r.nextID = id + 1
	}

	return employee, nil
}

func (r *memoryEmployeeRepository) FindByID(_ context.Context, id int64) (models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, exists := r.employees[id]
	if !exists {
		return models.Employee{}, ErrEmployeeNotFound
	}

	return employee, nil
}

func (r *memoryEmployeeRepository) FindAll(_ context.Context) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]models.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		employees = append(employees, employee)
	}

	return employees, nil
}

func (r *memoryEmployeeRepository) Update(_ context.Context, id int64, draft models.EmployeeDraft) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, exists := r.employees[id]
	if !exists {
		return models.Employee{}, ErrEmployeeNotFound
	}

	employee.Name = draft.Name
	employee.Role = draft.Role
	r.employees[id] = employee

	return employee, nil
}

func (r *memoryEmployeeRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.employees, id)

	return nil
}
