// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.FilePath) == "" {
		return fmt.Errorf("%w: task file path is required; %s", ErrInvalidStorageConfigs, Usage)
	}

	if _, err := crypto.NewKeyDeriver(cfg.Crypto.KDF); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCryptoConfigs, err)
	}

	if cfg.App.MaxTasks < 1 || cfg.App.MaxTitleLength < 1 {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
