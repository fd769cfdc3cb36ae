// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Config is the top-level configuration container for a nearbytes host
// process (whatever wires a store.Backend and internal/nearbytes.Service
// together — this module itself exposes no binary). It is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Storage holds the storage backend selection and its settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the settings spec.md §6 names — storage_root and
// max_upload_bytes — plus the backend selection needed to choose between
// internal/store's two persistent implementations.
type Storage struct {
	// Backend selects which store.Backend implementation to construct:
	// "local" (filesystem) or "sqlite". Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Root is the filesystem root a LocalBackend writes channels/ and
	// blocks/ under. Corresponds to spec.md §6's storage_root.
	// Env: STORAGE_ROOT
	Root string `env:"ROOT"`

	// SQLiteDSN is the data source name passed to NewSQLiteBackend when
	// Backend is "sqlite".
	// Env: STORAGE_SQLITE_DSN
	SQLiteDSN string `env:"SQLITE_DSN"`

	// MaxUploadBytes bounds the plaintext size AddFile accepts; zero means
	// unlimited. Corresponds to spec.md §6's max_upload_bytes.
	// Env: STORAGE_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// GetConfig loads, merges, and validates the application configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
