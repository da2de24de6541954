package schedule

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"
)

// Lister enumerates the weeks that have a schedule document.
type Lister interface {
	ListWeeks(ctx context.Context) ([]WeekRef, error)
}

// StaticLister returns a fixed seed list.
type StaticLister struct {
	Weeks []WeekRef
}

// DefaultSeed is the built-in list used when no seed file is configured.
func DefaultSeed() []WeekRef {
	return []WeekRef{
		{WeekKey: WeekKey{Week: 52, Year: 2025}, FileRef: "semana_52_2025.json"},
		{WeekKey: WeekKey{Week: 1, Year: 2026}, FileRef: "semana_1_2026.json"},
	}
}

// ListWeeks returns a copy of the seed.
func (l StaticLister) ListWeeks(context.Context) ([]WeekRef, error) {
	out := make([]WeekRef, len(l.Weeks))
	copy(out, l.Weeks)
	return out, nil
}

type seedFile struct {
	Weeks []struct {
		Week int    `yaml:"week"`
		Year int    `yaml:"year"`
		File string `yaml:"file"`
	} `yaml:"weeks"`
}

// ParseSeedYAML decodes a seed list:
//
//	weeks:
//	  - {week: 52, year: 2025, file: semana_52_2025.json}
func ParseSeedYAML(data []byte) ([]WeekRef, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("seed: payload is empty")
	}
	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	out := make([]WeekRef, 0, len(raw.Weeks))
	for i, w := range raw.Weeks {
		key := WeekKey{Week: w.Week, Year: w.Year}
		if !key.Valid() {
			return nil, fmt.Errorf("seed: entry %d: week %d out of range", i, w.Week)
		}
		file := strings.TrimSpace(w.File)
		if file == "" {
			file = key.FileName()
		}
		out = append(out, WeekRef{WeekKey: key, FileRef: file})
	}
	return Dedupe(out), nil
}

// LoadSeedFile reads a YAML seed list from disk.
func LoadSeedFile(path string) (StaticLister, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StaticLister{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	weeks, err := ParseSeedYAML(data)
	if err != nil {
		return StaticLister{}, fmt.Errorf("seed: %s: %w", path, err)
	}
	return StaticLister{Weeks: weeks}, nil
}

// DirLister lists semanas/semana_<week>_<year>.json files on a filesystem,
// the server-side listing the static site cannot offer.
type DirLister struct {
	FS billy.Filesystem
}

// ListWeeks scans the weeks directory. A missing directory yields no weeks.
func (l DirLister) ListWeeks(ctx context.Context) ([]WeekRef, error) {
	if l.FS == nil {
		return nil, fmt.Errorf("dir lister has no filesystem")
	}
	entries, err := l.FS.ReadDir(WeeksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", WeeksDir, err)
	}
	var out []WeekRef
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}
		key, err := ParseFileRef(name)
		if err != nil || key.FileName() != name {
			continue
		}
		out = append(out, WeekRef{WeekKey: key, FileRef: name})
	}
	return Dedupe(out), nil
}

// ConfigLister reads the list from the semanasDisponibles field of the
// configuration resource.
type ConfigLister struct {
	Source Source
}

// ListWeeks fetches config.json fresh and returns its week list.
func (l ConfigLister) ListWeeks(ctx context.Context) ([]WeekRef, error) {
	if l.Source == nil {
		return nil, fmt.Errorf("config lister has no source")
	}
	cfg, err := l.Source.LoadConfig(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	return Dedupe(cfg.Refs()), nil
}

// Dedupe drops repeated keys and orders chronologically.
func Dedupe(refs []WeekRef) []WeekRef {
	if len(refs) == 0 {
		return nil
	}
	seen := make(map[WeekKey]struct{}, len(refs))
	out := make([]WeekRef, 0, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref.WeekKey]; ok {
			continue
		}
		seen[ref.WeekKey] = struct{}{}
		out = append(out, ref)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Week < out[j].Week
	})
	return out
}
