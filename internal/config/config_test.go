// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/markdown-server/pkg/types"
)

// clearEnv blanks every config env var for the test. Viper ignores empty
// env values, so the built-in defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT", "HOST", "MAX_FILE_SIZE", "WORKERS", "ENABLE_RATE_LIMIT",
		"RATE_LIMIT", "TMP_DIR", "CONVERTER_BACKEND", "MARKITDOWN_IMAGE", "LOG_LEVEL",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8490, cfg.Server.Port)
	assert.Equal(t, 1, cfg.Server.Workers)
	assert.Equal(t, "0.0.0.0:8490", cfg.Server.Addr())
	assert.Equal(t, int64(52428800), cfg.Upload.MaxFileSize)
	assert.Empty(t, cfg.Upload.TmpDir)
	assert.Equal(t, types.BackendMarkitdown, cfg.Conversion.Backend)
	assert.Equal(t, "markitdown:latest", cfg.Conversion.MarkitdownImage)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "60/minute", cfg.RateLimit.Limit)
	assert.Equal(t, 60, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("WORKERS", "4")
	t.Setenv("ENABLE_RATE_LIMIT", "true")
	t.Setenv("RATE_LIMIT", "10/second")
	t.Setenv("TMP_DIR", "/var/staging")
	t.Setenv("CONVERTER_BACKEND", "container")
	t.Setenv("MARKITDOWN_IMAGE", "markitdown:v2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9001", cfg.Server.Addr())
	assert.Equal(t, int64(1048576), cfg.Upload.MaxFileSize)
	assert.Equal(t, 4, cfg.Server.Workers)
	assert.Equal(t, "/var/staging", cfg.Upload.TmpDir)
	assert.Equal(t, types.BackendContainer, cfg.Conversion.Backend)
	assert.Equal(t, "markitdown:v2", cfg.Conversion.MarkitdownImage)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "markdown-server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9100\nrate_limit: 5/hour\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{"port out of range", "PORT", "70000", "out of range"},
		{"zero max file size", "MAX_FILE_SIZE", "0", "must be positive"},
		{"zero workers", "WORKERS", "0", "at least 1"},
		{"unknown backend", "CONVERTER_BACKEND", "grobid", "unknown converter_backend"},
		{"rate limit missing slash", "RATE_LIMIT", "60", "want <requests>/<window>"},
		{"rate limit bad window", "RATE_LIMIT", "60/fortnight", "window must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseRateLimit(t *testing.T) {
	tests := []struct {
		policy       string
		wantRequests int
		wantWindow   time.Duration
		wantErr      bool
	}{
		{"60/minute", 60, time.Minute, false},
		{"1/second", 1, time.Second, false},
		{"1000/Hour", 1000, time.Hour, false},
		{" 5 / minute ", 5, time.Minute, false},
		{"0/minute", 0, 0, true},
		{"-3/minute", 0, 0, true},
		{"x/minute", 0, 0, true},
		{"60", 0, 0, true},
		{"60/day", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			requests, window, err := ParseRateLimit(tt.policy)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRequests, requests)
			assert.Equal(t, tt.wantWindow, window)
		})
	}
}
