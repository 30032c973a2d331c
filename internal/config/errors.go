package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidArguments indicates a command line that cannot be parsed,
	// such as an unknown flag or too many positional arguments.
	ErrInvalidArguments = errors.New("invalid command-line arguments")
	// ErrInvalidStorageConfigs indicates a missing task file path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates an unknown key derivation function.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidAppConfigs indicates non-positive store limits.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
