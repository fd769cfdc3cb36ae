package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "all flags set",
			args: []string{
				"-storage-backend", "local",
				"-storage-root", "/var/nearbytes",
				"-sqlite-dsn", "file:test.db",
				"-max-upload-bytes", "1048576",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "local", cfg.Storage.Backend)
				assert.Equal(t, "/var/nearbytes", cfg.Storage.Root)
				assert.Equal(t, "file:test.db", cfg.Storage.SQLiteDSN)
				assert.Equal(t, int64(1048576), cfg.Storage.MaxUploadBytes)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-storage-backend", "sqlite",
				"-sqlite-dsn", "file:other.db",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sqlite", cfg.Storage.Backend)
				assert.Equal(t, "file:other.db", cfg.Storage.SQLiteDSN)
				assert.Empty(t, cfg.Storage.Root)
				assert.Zero(t, cfg.Storage.MaxUploadBytes)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Storage.Backend)
				assert.Empty(t, cfg.Storage.Root)
				assert.Empty(t, cfg.Storage.SQLiteDSN)
				assert.Zero(t, cfg.Storage.MaxUploadBytes)
				assert.Empty(t, cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
