package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Week list strategies.
const (
	WeeksStatic = "static"
	WeeksDir    = "dir"
	WeeksConfig = "config"
)

// Config holds the local settings of wodview.
type Config struct {
	Source         string
	Weeks          string
	SeedFile       string
	Poll           time.Duration
	LogFile        string
	RequestTimeout time.Duration
}

const (
	defaultConfigPath = "~/.config/wodview/config.toml"
	defaultSource     = "."
	defaultLogFile    = "~/.local/share/wodview/wodview.log"
	defaultPoll       = 5 * time.Minute
	defaultTimeout    = 10 * time.Second
)

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Source:         mustExpand(defaultSource),
		Weeks:          WeeksStatic,
		Poll:           defaultPoll,
		LogFile:        mustExpand(defaultLogFile),
		RequestTimeout: defaultTimeout,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the TOML settings at path, falling back to defaults when the
// file is missing. Present but invalid values are errors.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Source         string `toml:"source"`
		Weeks          string `toml:"weeks"`
		SeedFile       string `toml:"seed_file"`
		PollMinutes    int    `toml:"poll_minutes"`
		LogFile        string `toml:"log_file"`
		TimeoutSeconds int    `toml:"request_timeout_seconds"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Source); v != "" {
		cfg.Source = v
		if !IsURL(v) {
			cfg.Source = mustExpand(v)
		}
	}
	if v := strings.ToLower(strings.TrimSpace(raw.Weeks)); v != "" {
		switch v {
		case WeeksStatic, WeeksDir, WeeksConfig:
			cfg.Weeks = v
		default:
			return Config{}, fmt.Errorf("parse config: unknown weeks strategy %q", raw.Weeks)
		}
	}
	if v := strings.TrimSpace(raw.SeedFile); v != "" {
		cfg.SeedFile = mustExpand(v)
	}
	switch {
	case raw.PollMinutes < 0:
		return Config{}, fmt.Errorf("parse config: poll_minutes must not be negative")
	case raw.PollMinutes > 0:
		cfg.Poll = time.Duration(raw.PollMinutes) * time.Minute
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	switch {
	case raw.TimeoutSeconds < 0:
		return Config{}, fmt.Errorf("parse config: request_timeout_seconds must not be negative")
	case raw.TimeoutSeconds > 0:
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	return cfg, nil
}

// IsURL reports whether source names an HTTP(S) base URL rather than a
// directory.
func IsURL(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ExpandPath resolves "~" and relative paths.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
