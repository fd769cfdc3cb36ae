// Package store provides the byte-oriented storage backend abstraction that
// the channel layer is built on, plus the concrete backends that implement
// it: a filesystem backend, a SQLite-backed backend, and an in-memory test
// double.
//
// A [Backend] knows nothing about events, volumes, or signatures — it moves
// named byte blobs in and out of whatever medium it wraps. Everything
// domain-specific (path layout, JSON framing, content addressing) lives one
// layer up in the channel package.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_backend_mock.go -package=mock

// Backend is the storage contract every volume operates against. Paths are
// slash-separated logical names (see path.go), not necessarily filesystem
// paths — the SQLite and in-memory backends treat them as opaque keys.
//
// There is no separate createDirectory operation: every implementation
// creates whatever parent directories (or directory-equivalent prefixes) a
// path implies as part of WriteFile, so a standalone call would never do
// anything a write doesn't already do.
type Backend interface {
	// WriteFile stores data under path, creating path and any parent
	// directories implied by it if they do not already exist. An existing
	// file at path is overwritten.
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFile returns the bytes stored at path. Returns [ErrNotFound] if
	// path does not exist.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// ListFiles returns the names of every file directly under dir, without
	// the dir prefix. Returns an empty slice (not an error) if dir does not
	// exist or is empty.
	ListFiles(ctx context.Context, dir string) ([]string, error)

	// Exists reports whether path currently holds a file.
	Exists(ctx context.Context, path string) (bool, error)

	// DeleteFile removes path. It is not an error to delete a path that does
	// not exist.
	DeleteFile(ctx context.Context, path string) error
}
