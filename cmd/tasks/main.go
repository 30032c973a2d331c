package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-task-keeper/internal/client"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("tasks", cfg.Log.FilePath)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Msg("invalid log level, using info")
	}

	deriver, err := crypto.NewKeyDeriver(cfg.Crypto.KDF)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key deriver")
	}

	storage := store.NewTaskFileStorage(deriver, crypto.NewAESGCMCipher(), log, store.WithMaxTasks(cfg.App.MaxTasks))
	validator := validators.NewTaskValidator(cfg.App.MaxTitleLength)
	ui := tui.New(buildInfo, validator, log)
	app := client.NewApp(cfg, storage, ui, validator, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
