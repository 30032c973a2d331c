package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. The
// passphrase is deliberately absent: secrets are not read from files.
type StructuredJSONConfig struct {
	App struct {
		DisplayName    string `json:"display_name"`
		MaxTasks       int    `json:"max_tasks"`
		MaxTitleLength int    `json:"max_title_length"`
	} `json:"app,omitempty"`

	Storage struct {
		FilePath string `json:"file_path"`
	} `json:"storage,omitempty"`

	Crypto struct {
		KDF string `json:"kdf"`
	} `json:"crypto,omitempty"`

	Log struct {
		FilePath string `json:"file_path"`
		Level    string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DisplayName:    jsonCfg.App.DisplayName,
			MaxTasks:       jsonCfg.App.MaxTasks,
			MaxTitleLength: jsonCfg.App.MaxTitleLength,
		},
		Storage: Storage{
			FilePath: jsonCfg.Storage.FilePath,
		},
		Crypto: Crypto{
			KDF: jsonCfg.Crypto.KDF,
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
			Level:    jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}
