// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-task-keeper client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds store limits and presentation settings.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the task file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds the optional passphrase and the key derivation choice.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Log holds the log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// DisplayName is the store label shown in the REPL. It is not persisted
	// in the task file.
	// Env: APP_DISPLAY_NAME
	DisplayName string `env:"DISPLAY_NAME"`

	// MaxTasks caps the number of tasks a store accepts.
	// Env: APP_MAX_TASKS
	MaxTasks int `env:"MAX_TASKS"`

	// MaxTitleLength is the longest accepted title, in characters.
	// Env: APP_MAX_TITLE_LENGTH
	MaxTitleLength int `env:"MAX_TITLE_LENGTH"`
}

// Storage holds the task file location.
type Storage struct {
	// FilePath is the path of the CSV (or encrypted hex) task file.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Crypto holds encryption-at-rest settings.
type Crypto struct {
	// Passphrase enables encryption when non-empty. It is never read from
	// the JSON file.
	// Env: CRYPTO_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// KDF names the key derivation function: "sha256" or "argon2id".
	// Env: CRYPTO_KDF
	KDF string `env:"KDF"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the file log entries are appended to. Empty means
	// tasks.log next to the executable.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied by [StructuredConfig.applyDefaults] to fields left zero by
// every source.
const (
	DefaultDisplayName    = "Initial"
	DefaultMaxTasks       = 400000
	DefaultMaxTitleLength = 23
	DefaultKDF            = "sha256"
	DefaultLogLevel       = "info"
)

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags and positional arguments (args excludes the
//     program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.DisplayName == "" {
		cfg.App.DisplayName = DefaultDisplayName
	}
	if cfg.App.MaxTasks == 0 {
		cfg.App.MaxTasks = DefaultMaxTasks
	}
	if cfg.App.MaxTitleLength == 0 {
		cfg.App.MaxTitleLength = DefaultMaxTitleLength
	}
	if cfg.Crypto.KDF == "" {
		cfg.Crypto.KDF = DefaultKDF
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
