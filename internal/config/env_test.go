// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvKeys = []string{
	"CONFIG",
	"APP_DISPLAY_NAME",
	"APP_MAX_TASKS",
	"APP_MAX_TITLE_LENGTH",
	"STORAGE_FILE_PATH",
	"CRYPTO_PASSPHRASE",
	"CRYPTO_KDF",
	"LOG_FILE_PATH",
	"LOG_LEVEL",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range allEnvKeys {
		// t.Setenv registers the restore, Unsetenv makes the key absent.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":               "/path/to/config.json",
		"APP_DISPLAY_NAME":     "Home",
		"APP_MAX_TASKS":        "10",
		"APP_MAX_TITLE_LENGTH": "40",
		"STORAGE_FILE_PATH":    "/tmp/tasks.csv",
		"CRYPTO_PASSPHRASE":    "secret",
		"CRYPTO_KDF":           "argon2id",
		"LOG_FILE_PATH":        "/tmp/tasks.log",
		"LOG_LEVEL":            "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "Home", cfg.App.DisplayName)
	assert.Equal(t, 10, cfg.App.MaxTasks)
	assert.Equal(t, 40, cfg.App.MaxTitleLength)
	assert.Equal(t, "/tmp/tasks.csv", cfg.Storage.FilePath)
	assert.Equal(t, "secret", cfg.Crypto.Passphrase)
	assert.Equal(t, "argon2id", cfg.Crypto.KDF)
	assert.Equal(t, "/tmp/tasks.log", cfg.Log.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_MAX_TASKS": "many"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
