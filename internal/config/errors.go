package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidConfig indicates a value that no binary can accept.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidEnv indicates an environment variable that cannot be
	// converted to its field type.
	ErrInvalidEnv = errors.New("invalid environment variable")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, unknown session DSN scheme or unsupported DB driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero activity queue size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
