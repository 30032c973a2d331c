package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ErrRefusedToStart is returned when the task file exists but cannot be
// opened with the given passphrase, or cannot be backed up before starting
// over. Starting with an empty list would overwrite it on exit.
var ErrRefusedToStart = errors.New("refusing to start with an empty task list")

type App struct {
	storage   Storage
	ui        UI
	validator validators.Validator

	path        string
	passphrase  string
	displayName string
	maxTasks    int

	stderr  io.Writer
	rootLog *logger.Logger
	logger  *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, storage Storage, ui UI, validator validators.Validator, log *logger.Logger) *App {
	return &App{
		storage:     storage,
		ui:          ui,
		validator:   validator,
		path:        cfg.Storage.FilePath,
		passphrase:  cfg.Crypto.Passphrase,
		displayName: cfg.App.DisplayName,
		maxTasks:    cfg.App.MaxTasks,
		stderr:      os.Stderr,
		rootLog:     log,
		logger:      log.GetChildLogger("app"),
	}
}

// Run loads the store, runs the UI and saves the store. The store is saved
// even when the UI fails so that edits made before the failure survive.
func (a *App) Run(ctx context.Context) error {
	s, err := a.load()
	if err != nil {
		return err
	}

	svc := service.NewTaskService(s, a.validator, a.rootLog)
	save := func() error {
		return a.storage.Save(s, a.path, a.passphrase)
	}

	uiErr := a.ui.Run(ctx, svc, save)
	if uiErr != nil {
		a.logger.Err(uiErr).Msg("terminal UI stopped with an error")
	}

	if err = save(); err != nil {
		a.logger.Err(err).Str("path", a.path).Msg("error saving tasks")
		fmt.Fprintf(a.stderr, "Error saving: %v\n", err)
		return errors.Join(uiErr, fmt.Errorf("error saving tasks: %w", err))
	}

	a.logger.Info().Str("path", a.path).Int("tasks", s.Len()).Msg("tasks saved")
	return uiErr
}

func (a *App) load() (*store.Store, error) {
	s, err := a.storage.Load(a.path, a.passphrase)
	switch {
	case err == nil:
		s.SetName(a.displayName)
		return s, nil

	case store.IsNotExist(err):
		a.logger.Info().Str("path", a.path).Msg("task file not found, starting a new list")
		return a.empty(), nil

	case a.passphrase != "" && (errors.Is(err, models.ErrCrypto) || errors.Is(err, models.ErrEncoding)):
		a.logger.Err(err).Str("path", a.path).Msg("task file cannot be opened with the given passphrase")
		fmt.Fprintf(a.stderr, "Error loading tasks: %v\n", err)
		return nil, fmt.Errorf("%w: %w", ErrRefusedToStart, err)

	default:
		fmt.Fprintf(a.stderr, "Error loading tasks: %v\n", err)
		backup, bErr := a.storage.Backup(a.path)
		if bErr != nil {
			a.logger.Err(bErr).Str("path", a.path).Msg("unreadable task file cannot be backed up")
			fmt.Fprintf(a.stderr, "Error backing up tasks: %v\n", bErr)
			return nil, fmt.Errorf("%w: %w", ErrRefusedToStart, errors.Join(err, bErr))
		}

		a.logger.Err(err).Str("path", a.path).Str("backup", backup).Msg("error loading tasks, starting with an empty list")
		fmt.Fprintf(a.stderr, "Unreadable task file backed up to %s\n", backup)
		return a.empty(), nil
	}
}

func (a *App) empty() *store.Store {
	return store.New(a.displayName, store.WithMaxTasks(a.maxTasks))
}
