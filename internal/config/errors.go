// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [Config.validate] when the storage section
// is incomplete or invalid for the selected backend.
var (
	// ErrUnknownStorageBackend is returned when Storage.Backend names
	// neither "local" nor "sqlite".
	ErrUnknownStorageBackend = errors.New("config: unknown storage backend")

	// ErrMissingStorageRoot is returned when Backend is "local" and
	// Storage.Root is empty.
	ErrMissingStorageRoot = errors.New("config: storage root is required for the local backend")

	// ErrMissingSQLiteDSN is returned when Backend is "sqlite" and
	// Storage.SQLiteDSN is empty.
	ErrMissingSQLiteDSN = errors.New("config: sqlite DSN is required for the sqlite backend")

	// ErrInvalidMaxUploadBytes is returned when Storage.MaxUploadBytes is
	// negative.
	ErrInvalidMaxUploadBytes = errors.New("config: max upload bytes must not be negative")
)
