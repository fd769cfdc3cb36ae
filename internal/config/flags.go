// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-storage-backend storage backend: "local" or "sqlite"
//	-storage-root     local backend root directory
//	-sqlite-dsn       sqlite backend data source name
//	-max-upload-bytes maximum AddFile plaintext size (0 = unlimited)
//	-c/-config        json file path with configs
func ParseFlags() *Config {
	var backend string
	var root string
	var sqliteDSN string
	var maxUploadBytes int64
	var jsonConfigPath string

	flag.StringVar(&backend, "storage-backend", "", "Storage backend: local or sqlite")
	flag.StringVar(&root, "storage-root", "", "Local backend root directory")
	flag.StringVar(&sqliteDSN, "sqlite-dsn", "", "SQLite backend data source name")
	flag.Int64Var(&maxUploadBytes, "max-upload-bytes", 0, "Maximum AddFile plaintext size, 0 for unlimited")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Storage: Storage{
			Backend:        backend,
			Root:           root,
			SQLiteDSN:      sqliteDSN,
			MaxUploadBytes: maxUploadBytes,
		},
		JSONFilePath: jsonConfigPath,
	}
}
