package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName = errors.New("name must not be blank")
	ErrEmptyRole = errors.New("role must not be blank")
)
