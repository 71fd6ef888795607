// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config builds the service configuration from environment
// variables and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/markdown-server/pkg/types"
)

const (
	defaultHost        = "0.0.0.0"
	defaultPort        = 8490
	defaultMaxFileSize = 50 * 1024 * 1024
	defaultWorkers     = 1
	defaultRateLimit   = "60/minute"
	defaultImage       = "markitdown:latest"
	defaultLogLevel    = "info"
)

// Load reads configuration with the precedence: environment variables, then
// the YAML config file, then built-in defaults. cfgFile overrides the default
// file lookup (./markdown-server.yaml); a missing file is not an error.
func Load(cfgFile string) (*types.Config, error) {
	v := viper.New()

	v.SetDefault("host", defaultHost)
	v.SetDefault("port", defaultPort)
	v.SetDefault("max_file_size", defaultMaxFileSize)
	v.SetDefault("workers", defaultWorkers)
	v.SetDefault("enable_rate_limit", false)
	v.SetDefault("rate_limit", defaultRateLimit)
	v.SetDefault("tmp_dir", "")
	v.SetDefault("converter_backend", string(types.BackendMarkitdown))
	v.SetDefault("markitdown_image", defaultImage)
	v.SetDefault("log_level", defaultLogLevel)

	// Flat keys map directly to env names: max_file_size <- MAX_FILE_SIZE.
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("markdown-server")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &types.Config{
		Server: types.ServerConfig{
			Host:    v.GetString("host"),
			Port:    v.GetInt("port"),
			Workers: v.GetInt("workers"),
		},
		Upload: types.UploadConfig{
			MaxFileSize: v.GetInt64("max_file_size"),
			TmpDir:      v.GetString("tmp_dir"),
		},
		Conversion: types.ConversionConfig{
			Backend:         types.ConversionBackend(v.GetString("converter_backend")),
			MarkitdownImage: v.GetString("markitdown_image"),
		},
		RateLimit: types.RateLimitConfig{
			Enabled: v.GetBool("enable_rate_limit"),
			Limit:   v.GetString("rate_limit"),
		},
		LogLevel: v.GetString("log_level"),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *types.Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", cfg.Server.Port)
	}
	if cfg.Server.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Server.Workers)
	}
	if cfg.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be positive, got %d", cfg.Upload.MaxFileSize)
	}
	switch cfg.Conversion.Backend {
	case types.BackendMarkitdown, types.BackendContainer:
	default:
		return fmt.Errorf("unknown converter_backend %q (want %s or %s)",
			cfg.Conversion.Backend, types.BackendMarkitdown, types.BackendContainer)
	}

	requests, window, err := ParseRateLimit(cfg.RateLimit.Limit)
	if err != nil {
		return err
	}
	cfg.RateLimit.Requests = requests
	cfg.RateLimit.Window = window
	return nil
}

// ParseRateLimit parses a "<requests>/<window>" policy such as "60/minute".
// The window is one of second, minute, or hour.
func ParseRateLimit(policy string) (int, time.Duration, error) {
	count, windowName, ok := strings.Cut(policy, "/")
	if !ok {
		return 0, 0, fmt.Errorf("rate_limit %q: want <requests>/<window>", policy)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || requests < 1 {
		return 0, 0, fmt.Errorf("rate_limit %q: invalid request count", policy)
	}

	var window time.Duration
	switch strings.ToLower(strings.TrimSpace(windowName)) {
	case "second":
		window = time.Second
	case "minute":
		window = time.Minute
	case "hour":
		window = time.Hour
	default:
		return 0, 0, fmt.Errorf("rate_limit %q: window must be second, minute, or hour", policy)
	}

	return requests, window, nil
}
