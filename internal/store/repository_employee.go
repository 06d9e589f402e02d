package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/models"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// employeeRepository is the SQL-backed implementation of
// [EmployeeRepository]. It works against the "employees" table through the
// database/sql interface and therefore serves both the PostgreSQL and the
// SQLite backend.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type employeeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists draft under a sequence-assigned id and returns the
// canonical database representation of the new record via RETURNING.
//
// Error handling:
//   - Query build failure → [ErrBuildingSQLQuery].
//   - Driver-level error → wrapped as "unexpected DB error"; transient
//     failures are additionally flagged in the log.
//   - Scan failure → [ErrScanningRow].
func (r *employeeRepository) Create(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertEmployeeQuery(draft.Name, draft.Role)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Create").Msg("error building insert query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var employee models.Employee
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&employee.ID, &employee.Name, &employee.Role); err != nil {
		log.Err(err).Str("func", "*employeeRepository.Create").Msg("error inserting employee")

		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*employeeRepository.Create").Msg("transient database error, caller may retry")
		}
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return employee, nil
}

// CreateWithID persists draft under the caller-chosen id. On PostgreSQL the
// insert and the sequence fix-up run in one transaction, so a subsequent
// Create can never be handed an id this call just took.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmployeeAlreadyExists].
//   - SQLite primary-key/unique constraint violation → [ErrEmployeeAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *employeeRepository) CreateWithID(ctx context.Context, id int64, draft models.EmployeeDraft) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertEmployeeWithIDQuery(id, draft.Name, draft.Role)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateWithID").Msg("error building insert query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateWithID").Msg("error beginning transaction")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var employee models.Employee
	row := tx.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&employee.ID, &employee.Name, &employee.Role); err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateWithID").Msg("error inserting employee with explicit id")

		switch {
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.Employee{}, ErrEmployeeAlreadyExists
		case sqliteError(err) == sqlite3.ErrConstraintPrimaryKey,
			sqliteError(err) == sqlite3.ErrConstraintUnique:
			return models.Employee{}, ErrEmployeeAlreadyExists
		default:
			return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// sqlite advances its AUTOINCREMENT counter on explicit-id inserts;
	// postgres sequences need a manual push
	if r.db.dialect == DialectPostgres {
		if _, err = tx.ExecContext(ctx, syncEmployeeSequenceSQL); err != nil {
			log.Err(err).Str("func", "*employeeRepository.CreateWithID").Msg("error syncing id sequence")
			return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateWithID").Msg("error committing transaction")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return employee, nil
}

// FindByID retrieves the employee with the given id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrEmployeeNotFound].
//   - Any other failure → [ErrScanningRow] with the cause attached.
func (r *employeeRepository) FindByID(ctx context.Context, id int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectEmployeeByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.FindByID").Msg("error building select query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var employee models.Employee
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&employee.ID, &employee.Name, &employee.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeRepository.FindByID").Msg("error scanning employee row")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return employee, nil
}

// FindAll returns every persisted employee. An empty table yields an empty
// (non-nil) slice.
func (r *employeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllEmployeesQuery()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.FindAll").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.FindAll").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err = rows.Scan(&employee.ID, &employee.Name, &employee.Role); err != nil {
			log.Err(err).Str("func", "*employeeRepository.FindAll").Msg("error scanning employee rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*employeeRepository.FindAll").Msg("error iterating employee rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return employees, nil
}

// Update overwrites name and role of an existing record in a single UPDATE
// statement and returns the updated record via RETURNING. The whole-record
// write keeps concurrent updates atomic: the final state is always exactly
// one submitted (name, role) pair.
//
// Error handling:
//   - [sql.ErrNoRows] (no record with that id) → [ErrEmployeeNotFound].
func (r *employeeRepository) Update(ctx context.Context, id int64, draft models.EmployeeDraft) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateEmployeeQuery(id, draft.Name, draft.Role)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Update").Msg("error building update query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var employee models.Employee
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&employee.ID, &employee.Name, &employee.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeRepository.Update").Msg("error updating employee")

		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*employeeRepository.Update").Msg("transient database error, caller may retry")
		}
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return employee, nil
}

// DeleteByID removes the record with the given id. Deleting an id that does
// not exist is a successful no-op, which is what makes the HTTP DELETE
// contract idempotent.
func (r *employeeRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteEmployeeQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.DeleteByID").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*employeeRepository.DeleteByID").Msg("error deleting employee")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
