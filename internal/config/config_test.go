package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Weeks != WeeksStatic {
		t.Fatalf("Weeks = %q, want %q", cfg.Weeks, WeeksStatic)
	}
	if cfg.Poll != 5*time.Minute {
		t.Fatalf("Poll = %v, want 5m", cfg.Poll)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	wantLog := filepath.Join(home, ".local", "share", "wodview", "wodview.log")
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if !filepath.IsAbs(cfg.Source) {
		t.Fatalf("Source = %q, want absolute directory", cfg.Source)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
source = "  https://box.example.com/prog/  "
weeks = " Config "
seed_file = "  ~/weeks.yaml  "
poll_minutes = 2
log_file = "~/logs/wodview.log"
request_timeout_seconds = 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != "https://box.example.com/prog/" {
		t.Fatalf("Source = %q", cfg.Source)
	}
	if cfg.Weeks != WeeksConfig {
		t.Fatalf("Weeks = %q, want %q", cfg.Weeks, WeeksConfig)
	}
	if cfg.SeedFile != filepath.Join(home, "weeks.yaml") {
		t.Fatalf("SeedFile = %q", cfg.SeedFile)
	}
	if cfg.Poll != 2*time.Minute || cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("Poll = %v, RequestTimeout = %v", cfg.Poll, cfg.RequestTimeout)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "wodview.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoad_DirectorySourceIsExpanded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(writeConfig(t, `source = "~/box"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != filepath.Join(home, "box") {
		t.Fatalf("Source = %q, want %q", cfg.Source, filepath.Join(home, "box"))
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"invalid toml", "source = [", "parse config"},
		{"unknown weeks", `weeks = "git"`, "unknown weeks strategy"},
		{"negative poll", "poll_minutes = -1", "poll_minutes"},
		{"negative timeout", "request_timeout_seconds = -5", "request_timeout_seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://box.example.com": true,
		"HTTP://localhost:8080/":  true,
		"/srv/box":                false,
		"./semanas":               false,
	}
	for in, want := range tests {
		if got := IsURL(in); got != want {
			t.Fatalf("IsURL(%q) = %t, want %t", in, got, want)
		}
	}
}
