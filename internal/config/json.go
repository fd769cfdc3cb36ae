// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonConfig is the JSON-specific representation of [Config]. It mirrors
// Config's fields but uses JSON struct tags so that a config file can use
// snake_case keys.
//
// After decoding, the values are mapped into a [Config] by [parseJSON].
type jsonConfig struct {
	Storage struct {
		Backend        string `json:"backend"`
		Root           string `json:"root"`
		SQLiteDSN      string `json:"sqlite_dsn"`
		MaxUploadBytes int64  `json:"max_upload_bytes"`
	} `json:"storage,omitempty"`
}

// parseJSON opens the JSON file at jsonFilePath, decodes it into a
// [jsonConfig], and maps the result into a [Config].
//
// JSONFilePath is intentionally left empty in the returned config so that
// the path is not re-processed during subsequent merge steps.
//
// Returns a wrapped error if the file cannot be opened or its contents
// cannot be decoded as valid JSON.
func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var raw jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Storage: Storage{
			Backend:        raw.Storage.Backend,
			Root:           raw.Storage.Root,
			SQLiteDSN:      raw.Storage.SQLiteDSN,
			MaxUploadBytes: raw.Storage.MaxUploadBytes,
		},
		JSONFilePath: "", // intentionally cleared to prevent re-processing
	}

	return cfg, nil
}
