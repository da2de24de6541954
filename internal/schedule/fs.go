package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// FSSource reads the schedule site from a billy filesystem, typically a local
// checkout of the static files.
type FSSource struct {
	fs billy.Filesystem
}

// NewFSSource wraps an existing filesystem.
func NewFSSource(fs billy.Filesystem) *FSSource {
	return &FSSource{fs: fs}
}

// NewDirSource roots an FSSource at dir on the host filesystem.
func NewDirSource(dir string) (*FSSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open source dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", dir)
	}
	return &FSSource{fs: osfs.New(dir)}, nil
}

// Filesystem exposes the underlying filesystem for listers.
func (s *FSSource) Filesystem() billy.Filesystem {
	return s.fs
}

// LoadWeek reads semanas/semana_<week>_<year>.json.
func (s *FSSource) LoadWeek(ctx context.Context, key WeekKey) (*Document, error) {
	var doc Document
	if err := s.read(ctx, key.Path(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadConfig reads config.json. Files are never cached so fresh is ignored.
func (s *FSSource) LoadConfig(ctx context.Context, _ bool) (RemoteConfig, error) {
	var cfg RemoteConfig
	if err := s.read(ctx, ConfigFile, &cfg); err != nil {
		return RemoteConfig{}, err
	}
	return cfg, nil
}

// StoreConfig writes config.json with two-space indentation.
func (s *FSSource) StoreConfig(ctx context.Context, cfg RemoteConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := util.WriteFile(s.fs, ConfigFile, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (s *FSSource) read(ctx context.Context, path string, dest any) error {
	if err := ctx.Err(); err != nil {
		return &FetchError{Message: err.Error(), Path: path, Err: err}
	}
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &FetchError{Status: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound), Path: path, Err: err}
		}
		return &FetchError{Message: err.Error(), Path: path, Err: err}
	}
	return decode(path, data, dest)
}
