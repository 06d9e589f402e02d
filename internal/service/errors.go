package service

import "errors"

var (
	// ErrInvalidDataProvided wraps a validation failure on a create or
	// replace payload. The store is never reached when it is returned.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
