// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nearbytes/nearbytes/internal/logger"
	"github.com/nearbytes/nearbytes/migrations"
)

// builder is the squirrel statement builder every query in this file is
// constructed with. SQLite uses "?" positional placeholders, unlike the
// Postgres "$N" style, so it is configured with sq.Question rather than
// sq.Dollar.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// SQLiteBackend implements [Backend] over a single-table SQLite database
// instead of the filesystem. It exists alongside [LocalBackend] so a volume
// can be hosted inside a single database file — useful for embedding
// NearBytes storage in an application that already manages its state in
// SQLite, or for environments where many small files on disk are
// undesirable.
type SQLiteBackend struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteBackend opens (creating if necessary) the SQLite database at dsn,
// applies pending migrations, and returns a ready-to-use [SQLiteBackend].
func NewSQLiteBackend(ctx context.Context, dsn string, log *logger.Logger) (*SQLiteBackend, error) {
	if log == nil {
		log = logger.Nop()
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteBackend").Msg("error opening sqlite connection")
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrBackendFailure, err)
	}

	if err := db.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteBackend").Msg("error pinging sqlite connection")
		return nil, fmt.Errorf("%w: ping sqlite: %v", ErrBackendFailure, err)
	}

	if err := migrations.Migrate(db); err != nil {
		log.Err(err).Str("func", "NewSQLiteBackend").Msg("error applying migrations")
		return nil, fmt.Errorf("%w: migrate: %v", ErrBackendFailure, err)
	}

	log.Debug().Str("func", "NewSQLiteBackend").Msg("connected to sqlite backend")
	return &SQLiteBackend{db: db, logger: log}, nil
}

// Close releases the underlying database handle.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// WriteFile implements [Backend]. A write to an existing path replaces its
// row via INSERT ... ON CONFLICT, matching the overwrite semantics WriteFile
// documents.
func (b *SQLiteBackend) WriteFile(ctx context.Context, path string, data []byte) error {
	query, args, err := builder.
		Insert("blobs").
		Columns("path", "data").
		Values(path, data).
		Suffix("ON CONFLICT(path) DO UPDATE SET data = excluded.data").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build insert: %v", ErrBackendFailure, err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		b.logger.Err(err).Str("func", "WriteFile").Str("path", path).Msg("error writing blob")
		return fmt.Errorf("%w: exec insert: %v", ErrBackendFailure, err)
	}
	return nil
}

// ReadFile implements [Backend].
func (b *SQLiteBackend) ReadFile(ctx context.Context, path string) ([]byte, error) {
	query, args, err := builder.
		Select("data").
		From("blobs").
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %v", ErrBackendFailure, err)
	}

	var data []byte
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		b.logger.Err(err).Str("func", "ReadFile").Str("path", path).Msg("error reading blob")
		return nil, fmt.Errorf("%w: scan row: %v", ErrBackendFailure, err)
	}
	return data, nil
}

// ListFiles implements [Backend]. dir is matched as a "dir/%" LIKE prefix
// over the path column, and only the direct child segment is returned, the
// same rule [LocalBackend.ListFiles] applies to directory entries.
func (b *SQLiteBackend) ListFiles(ctx context.Context, dir string) ([]string, error) {
	prefix := dir + "/"
	query, args, err := builder.
		Select("path").
		From("blobs").
		Where(sq.Like{"path": prefix + "%"}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %v", ErrBackendFailure, err)
	}

	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query list: %v", ErrBackendFailure, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("%w: scan path: %v", ErrBackendFailure, err)
		}
		rest := path[len(prefix):]
		if containsSlash(rest) {
			continue
		}
		names = append(names, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrBackendFailure, err)
	}
	return names, nil
}

func containsSlash(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return true
		}
	}
	return false
}

// Exists implements [Backend].
func (b *SQLiteBackend) Exists(ctx context.Context, path string) (bool, error) {
	query, args, err := builder.
		Select("1").
		From("blobs").
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build select: %v", ErrBackendFailure, err)
	}

	var one int
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: scan row: %v", ErrBackendFailure, err)
	}
	return true, nil
}

// DeleteFile implements [Backend].
func (b *SQLiteBackend) DeleteFile(ctx context.Context, path string) error {
	query, args, err := builder.
		Delete("blobs").
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build delete: %v", ErrBackendFailure, err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: exec delete: %v", ErrBackendFailure, err)
	}
	return nil
}
