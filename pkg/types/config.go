package types

import (
	"net"
	"strconv"
	"time"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Host is the interface to bind (default 0.0.0.0).
	Host string `json:"host" yaml:"host"`

	// Port is the TCP port to listen on (default 8490).
	Port int `json:"port" yaml:"port"`

	// Workers is the process worker count. Process supervision is an
	// external deployment concern; the value is parsed and logged only.
	Workers int `json:"workers" yaml:"workers"`
}

// Addr returns the host:port string for net.Listen.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// UploadConfig holds settings for upload validation and staging.
type UploadConfig struct {
	// MaxFileSize is the largest accepted upload in bytes (default 50 MiB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// TmpDir is the directory for staged uploads. Empty means the system
	// temporary directory.
	TmpDir string `json:"tmp_dir,omitempty" yaml:"tmp_dir,omitempty"`
}

// ConversionBackend identifies how the markitdown tool is invoked.
type ConversionBackend string

const (
	// BackendMarkitdown runs the markitdown binary found on PATH.
	BackendMarkitdown ConversionBackend = "markitdown"
	// BackendContainer pipes documents through the markitdown container image.
	BackendContainer ConversionBackend = "container"
)

// ConversionConfig holds settings for the conversion backend.
type ConversionConfig struct {
	// Backend selects the invocation strategy: markitdown or container.
	Backend ConversionBackend `json:"backend" yaml:"backend"`

	// MarkitdownImage is the container image used by the container backend.
	MarkitdownImage string `json:"markitdown_image" yaml:"markitdown_image"`
}

// RateLimitConfig holds the optional per-client rate limit.
type RateLimitConfig struct {
	// Enabled turns the rate-limit middleware on.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Limit is the policy as configured, e.g. "60/minute". Kept verbatim
	// for error messages.
	Limit string `json:"limit" yaml:"limit"`

	// Requests and Window are the parsed form of Limit.
	Requests int           `json:"requests" yaml:"requests"`
	Window   time.Duration `json:"window" yaml:"window"`
}

// Config is the complete service configuration. It is built once at startup
// and injected into the components that need it; there is no ambient global.
type Config struct {
	Server     ServerConfig     `json:"server" yaml:"server"`
	Upload     UploadConfig     `json:"upload" yaml:"upload"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	RateLimit  RateLimitConfig  `json:"rate_limit" yaml:"rate_limit"`
	LogLevel   string           `json:"log_level" yaml:"log_level"`
}
