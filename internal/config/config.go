package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTimeout  = 2 * time.Second
	DefaultLogLevel = "warn"
)

// Duration is a time.Duration written as a Go duration string ("500ms", "2s").
type Duration time.Duration

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds swaynav settings. Command-line flags override these values.
type Config struct {
	// Socket is the compositor IPC socket. Empty means discover it from
	// SWAYSOCK, I3SOCK or the X11 root window.
	Socket string `yaml:"socket,omitempty"`
	// Timeout bounds each IPC exchange.
	Timeout Duration `yaml:"timeout"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// X11Fallback enables reading I3_SOCKET_PATH from the X root window
	// when no environment variable names the socket. Default: true
	X11Fallback *bool `yaml:"x11_fallback,omitempty"`
}

type ValidationError struct {
	Path string
	File string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %v", e.File, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Timeout:  Duration(DefaultTimeout),
		LogLevel: DefaultLogLevel,
	}
}

// GetX11Fallback returns the effective value, defaulting to true.
func (c *Config) GetX11Fallback() bool {
	if c == nil || c.X11Fallback == nil {
		return true
	}
	return *c.X11Fallback
}

// GetTimeout returns the IPC timeout as a time.Duration.
func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.Timeout)
}

// SlogLevel converts LogLevel for log/slog. Call Validate first; unknown
// values fall back to warn.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLogLevel accepts debug, info, warn/warning and error, case-insensitively.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return &ValidationError{Path: "timeout", Err: fmt.Errorf("timeout must be >= 0")}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	if c.Socket != "" && !filepath.IsAbs(c.Socket) {
		return &ValidationError{Path: "socket", Err: fmt.Errorf("socket must be an absolute path")}
	}
	return nil
}

// SaveTo writes the configuration as YAML to path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
