// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Storage loads and saves the whole task store.
type Storage interface {
	Load(path, passphrase string) (*store.Store, error)
	Save(s *store.Store, path, passphrase string) error
	Backup(path string) (string, error)
}

// UI runs the interactive session over svc. save persists the store on
// demand while the session is running.
type UI interface {
	Run(ctx context.Context, svc service.TaskService, save func() error) error
}
