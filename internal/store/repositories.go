package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/employee-service/internal/config"
	"github.com/MKhiriev/employee-service/internal/logger"
)

// Repositories bundles every persistence-layer dependency handed to the
// service layer.
type Repositories struct {
	EmployeeRepository EmployeeRepository
}

// NewRepositories constructs the repository set for the configured storage
// backend. SQL backends are connected, pinged, and migrated before the
// repository is returned.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating repositories...")

	switch cfg.Backend {
	case config.BackendMemory:
		return &Repositories{
			EmployeeRepository: NewMemoryEmployeeRepository(log),
		}, nil

	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return &Repositories{
			EmployeeRepository: NewEmployeeRepository(db, log),
		}, nil

	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.SQLite, log)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return &Repositories{
			EmployeeRepository: NewEmployeeRepository(db, log),
		}, nil

	default:
		return nil, config.ErrUnknownStorageBackend
	}
}
