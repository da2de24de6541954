// Package prefs persists the wodview theme choice in
// ~/.config/wodview/prefs.toml. It is the only setting that survives a
// restart.
package prefs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/wodview/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Unreadable or malformed files degrade to
// the defaults; only the reason is logged.
func Load(path string) Prefs {
	defaults := Prefs{Theme: defaultTheme}

	resolved, err := expandPath(orDefault(path))
	if err != nil {
		log.Printf("prefs path: %v", err)
		return defaults
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("read prefs %s: %v", resolved, err)
		}
		return defaults
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		log.Printf("parse prefs %s: %v", resolved, err)
		return defaults
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := expandPath(orDefault(path))
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func orDefault(path string) string {
	if strings.TrimSpace(path) == "" {
		return defaultPrefsPath
	}
	return path
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
