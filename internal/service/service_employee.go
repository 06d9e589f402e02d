package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/internal/store"
	"github.com/MKhiriev/employee-service/internal/validators"
	"github.com/MKhiriev/employee-service/models"
)

type employeeService struct {
	employeeRepository store.EmployeeRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewEmployeeService(employeeRepository store.EmployeeRepository, validator validators.Validator, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (s *employeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.employeeRepository.FindAll(ctx)
}

func (s *employeeService) Create(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.employeeRepository.Create(ctx, draft)
}

func (s *employeeService) Get(ctx context.Context, id int64) (models.Employee, error) {
	return s.employeeRepository.FindByID(ctx, id)
}

// Replace drives the PUT dual mode. The happy path is an in-place update;
// when the id is unknown the record is created under that id instead. A
// concurrent creator can slip in between those two steps, so a losing
// explicit-id insert falls back to one final update.
func (s *employeeService) Replace(ctx context.Context, id int64, draft models.EmployeeDraft) (models.Employee, bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Employee{}, false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.employeeRepository.Update(ctx, id, draft)
	if err == nil {
		return updated, false, nil
	}
	if !errors.Is(err, store.ErrEmployeeNotFound) {
		return models.Employee{}, false, err
	}

	created, err := s.employeeRepository.CreateWithID(ctx, id, draft)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, store.ErrEmployeeAlreadyExists) {
		return models.Employee{}, false, err
	}

	// lost the create race: the id exists now, last write wins
	log.Debug().Int64("id", id).Msg("replace lost create race, retrying as update")
	updated, err = s.employeeRepository.Update(ctx, id, draft)
	if err != nil {
		return models.Employee{}, false, err
	}

	return updated, false, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.employeeRepository.DeleteByID(ctx, id)
}
