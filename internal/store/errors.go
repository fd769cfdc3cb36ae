package store

import "errors"

// Sentinel errors returned by every [Backend] implementation. Callers
// should match against these with [errors.Is] rather than inspecting
// backend-specific error types, so channel-layer code stays portable across
// the filesystem, SQLite, and in-memory backends.
var (
	// ErrNotFound is returned by ReadFile when the requested path does not
	// exist. DeleteFile of a missing path succeeds instead.
	ErrNotFound = errors.New("store: file not found")

	// ErrBackendFailure wraps an underlying I/O or driver error that could
	// not be classified any more specifically (disk full, permission
	// denied, a SQLite driver error, etc.).
	ErrBackendFailure = errors.New("store: backend operation failed")
)
