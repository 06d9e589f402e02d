package service

import (
	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/internal/store"
	"github.com/MKhiriev/employee-service/internal/validators"
)

type Services struct {
	EmployeeService EmployeeService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		EmployeeService: NewEmployeeService(
			repositories.EmployeeRepository,
			validators.NewEmployeeValidator(),
			logger,
		),
	}
}
