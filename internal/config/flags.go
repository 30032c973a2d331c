package config

import (
	"flag"
	"fmt"
)

// Usage is printed when the command line cannot be parsed.
const Usage = "Usage: tasks [flags] <file> [password]"

// ParseFlags parses the command line (without the program name).
//
// Flags:
//
//	-f file path of the task store
//	-p passphrase enabling encryption
//	-kdf key derivation function (sha256, argon2id)
//	-name display name of the store
//	-max-tasks maximum number of tasks
//	-max-title maximum title length
//	-log log file path
//	-log-level log level
//	-c/-config json file path with configs
//
// Positional arguments keep the classic invocation working: the first one
// is the file path, the optional second one is the passphrase. They take
// precedence over -f and -p.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var filePath, passphrase, kdf string
	var displayName string
	var maxTasks, maxTitle int
	var logPath, logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	fs.StringVar(&filePath, "f", "", "Task file path")
	fs.StringVar(&passphrase, "p", "", "Passphrase (enables encryption)")
	fs.StringVar(&kdf, "kdf", "", "Key derivation function: sha256 or argon2id")
	fs.StringVar(&displayName, "name", "", "Display name of the task list")
	fs.IntVar(&maxTasks, "max-tasks", 0, "Maximum number of tasks")
	fs.IntVar(&maxTitle, "max-title", 0, "Maximum title length")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		filePath = fs.Arg(0)
	case 2:
		filePath, passphrase = fs.Arg(0), fs.Arg(1)
	default:
		return nil, fmt.Errorf("%w: too many arguments; %s", ErrInvalidArguments, Usage)
	}

	return &StructuredConfig{
		App: App{
			DisplayName:    displayName,
			MaxTasks:       maxTasks,
			MaxTitleLength: maxTitle,
		},
		Storage: Storage{
			FilePath: filePath,
		},
		Crypto: Crypto{
			Passphrase: passphrase,
			KDF:        kdf,
		},
		Log: Log{
			FilePath: logPath,
			Level:    logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
