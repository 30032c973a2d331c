// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive task REPL on top of bubbletea.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Saver persists the current store. It is called by the save command.
type Saver = func() error

type TUI struct {
	buildInfo models.AppBuildInfo
	validator validators.Validator
	options   []tea.ProgramOption

	logger *logger.Logger
}

// New builds the REPL. validator checks each answer of the add and edit
// flows as soon as it is entered.
func New(buildInfo models.AppBuildInfo, validator validators.Validator, log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{
		buildInfo: buildInfo,
		validator: validator,
		options:   opts,
		logger:    log.GetChildLogger("tui"),
	}
}

// Run blocks until the user exits the REPL or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, svc service.TaskService, save Saver) error {
	model := newReplModel(ctx, svc, t.validator, save, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("error running terminal UI: %w", err)
	}

	if result, ok := finalModel.(replModel); ok {
		t.logger.Info().Int("commands", result.commands).Msg("REPL closed")
	}
	return nil
}
