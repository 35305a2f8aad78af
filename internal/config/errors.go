package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. Any of them is fatal at startup.
var (
	// ErrInvalidAppConfigs indicates invalid token settings
	// (for example, a signing key shorter than MinTokenSignKeyLength).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker pool settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidClientConfigs indicates incomplete CLI client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
