package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the statement builder shared by all employee queries. Dollar
// placeholders work for both backends: PostgreSQL natively, SQLite via its
// $NNN parameter syntax.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const employeeColumns = "id, name, role"

// insertEmployeeQuery builds the INSERT for a store-assigned id.
// The id comes from the table's sequence (BIGSERIAL / AUTOINCREMENT) and is
// read back through the RETURNING clause.
func insertEmployeeQuery(name, role string) (string, []any, error) {
	return psql.Insert("employees").
		Columns("name", "role").
		Values(name, role).
		Suffix("RETURNING " + employeeColumns).
		ToSql()
}

// insertEmployeeWithIDQuery builds the INSERT for a caller-chosen id
// (the replace-as-create path).
func insertEmployeeWithIDQuery(id int64, name, role string) (string, []any, error) {
	return psql.Insert("employees").
		Columns("id", "name", "role").
		Values(id, name, role).
		Suffix("RETURNING " + employeeColumns).
		ToSql()
}

func selectEmployeeByIDQuery(id int64) (string, []any, error) {
	return psql.Select("id", "name", "role").
		From("employees").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func selectAllEmployeesQuery() (string, []any, error) {
	return psql.Select("id", "name", "role").
		From("employees").
		ToSql()
}

// updateEmployeeQuery overwrites both payload fields in one statement, so a
// concurrent reader never observes a half-applied (name, role) pair.
func updateEmployeeQuery(id int64, name, role string) (string, []any, error) {
	return psql.Update("employees").
		Set("name", name).
		Set("role", role).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + employeeColumns).
		ToSql()
}

func deleteEmployeeQuery(id int64) (string, []any, error) {
	return psql.Delete("employees").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// syncEmployeeSequenceSQL advances the PostgreSQL id sequence past the
// largest explicitly inserted id, so that later store-assigned creates can
// never collide with ids taken by the replace-as-create path. SQLite keeps
// its AUTOINCREMENT counter in step on its own.
const syncEmployeeSequenceSQL = `SELECT setval(pg_get_serial_sequence('employees', 'id'), (SELECT MAX(id) FROM employees));`
