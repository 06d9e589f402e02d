package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, the postgres backend selected without a DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownStorageBackend indicates that the configured backend name
	// is not one of "memory", "postgres", or "sqlite".
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
)
