// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/nearbytes/nearbytes/internal/utils"
)

// LocalBackend implements [Backend] on top of the local filesystem. Writes
// are atomic: data is written to a temp file under root/.tmp and then
// renamed into place, so a crash or concurrent read never observes a
// partially written file.
type LocalBackend struct {
	root string
	uuid *utils.UUIDGenerator
}

// NewLocalBackend constructs a [LocalBackend] rooted at root, creating the
// directory (and its .tmp staging subdirectory) if it does not exist.
func NewLocalBackend(root string) (*LocalBackend, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("store: create root %q: %w", root, err)
	}
	if err := os.MkdirAll(filepath.Join(root, ".tmp"), 0o750); err != nil {
		return nil, fmt.Errorf("store: create tmp dir: %w", err)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	return &LocalBackend{root: abs, uuid: utils.NewUUIDGenerator()}, nil
}

func (b *LocalBackend) resolve(path string) string {
	return filepath.Join(b.root, filepath.FromSlash(path))
}

// WriteFile implements [Backend]. It stages data in root/.tmp under a random
// name, then renames it into place — the rename is atomic on every
// filesystem NearBytes targets, so a reader never sees a half-written file.
func (b *LocalBackend) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dest := b.resolve(path)
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return fmt.Errorf("%w: mkdir %q: %v", ErrBackendFailure, filepath.Dir(dest), err)
	}

	tmpName := filepath.Join(b.root, ".tmp", b.uuid.Generate())
	if err := os.WriteFile(tmpName, data, 0o640); err != nil {
		return fmt.Errorf("%w: write temp file: %v", ErrBackendFailure, err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename into place: %v", ErrBackendFailure, err)
	}

	return nil
}

// ReadFile implements [Backend].
func (b *LocalBackend) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.resolve(path))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", ErrBackendFailure, path, err)
	}
	return data, nil
}

// ListFiles implements [Backend].
func (b *LocalBackend) ListFiles(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(b.resolve(dir))
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list %q: %v", ErrBackendFailure, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Exists implements [Backend].
func (b *LocalBackend) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(b.resolve(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: stat %q: %v", ErrBackendFailure, path, err)
	}
	return true, nil
}

// DeleteFile implements [Backend].
func (b *LocalBackend) DeleteFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(b.resolve(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: delete %q: %v", ErrBackendFailure, path, err)
	}
	return nil
}
