package schedule

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

func TestStaticLister_ReturnsCopy(t *testing.T) {
	l := StaticLister{Weeks: DefaultSeed()}
	weeks, err := l.ListWeeks(context.Background())
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}
	weeks[0].Week = 9
	again, _ := l.ListWeeks(context.Background())
	if again[0].Week != 52 {
		t.Fatalf("ListWeeks should return a copy; got week %d want 52", again[0].Week)
	}
}

func TestParseSeedYAML(t *testing.T) {
	weeks, err := ParseSeedYAML([]byte(`
weeks:
  - {week: 1, year: 2026}
  - {week: 52, year: 2025, file: semana_52_2025.json}
  - {week: 1, year: 2026}
`))
	if err != nil {
		t.Fatalf("ParseSeedYAML returned error: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("ParseSeedYAML returned %d weeks, want 2 after dedupe", len(weeks))
	}
	if weeks[0].WeekKey != (WeekKey{52, 2025}) || weeks[1].FileRef != "semana_1_2026.json" {
		t.Fatalf("weeks = %+v, want 52/2025 then 1/2026", weeks)
	}
}

func TestParseSeedYAML_Errors(t *testing.T) {
	for name, payload := range map[string]string{
		"empty":        "  ",
		"invalid":      "weeks: [",
		"out of range": "weeks:\n  - {week: 60, year: 2026}\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSeedYAML([]byte(payload)); err == nil {
				t.Fatalf("ParseSeedYAML(%q) returned nil error, want error", payload)
			}
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weeks.yaml")
	if err := os.WriteFile(path, []byte("weeks:\n  - {week: 2, year: 2026}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	l, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile returned error: %v", err)
	}
	if len(l.Weeks) != 1 || l.Weeks[0].Week != 2 {
		t.Fatalf("Weeks = %+v, want week 2", l.Weeks)
	}
	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("LoadSeedFile(missing) returned nil error, want error")
	}
}

func TestDirLister_ScansWeekFiles(t *testing.T) {
	fs := memfs.New()
	for _, name := range []string{
		"semanas/semana_1_2026.json",
		"semanas/semana_52_2025.json",
		"semanas/notas.txt",
		"semanas/semana_x_2026.json",
		"semanas/semana_01_2026.json",
	} {
		if err := util.WriteFile(fs, name, []byte("{}"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}

	weeks, err := DirLister{FS: fs}.ListWeeks(context.Background())
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("ListWeeks returned %+v, want 2 weeks", weeks)
	}
	if weeks[0].WeekKey != (WeekKey{52, 2025}) || weeks[1].WeekKey != (WeekKey{1, 2026}) {
		t.Fatalf("weeks = %+v, want chronological order", weeks)
	}
}

func TestDirLister_MissingDirIsEmpty(t *testing.T) {
	weeks, err := DirLister{FS: memfs.New()}.ListWeeks(context.Background())
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}
	if len(weeks) != 0 {
		t.Fatalf("ListWeeks = %+v, want none", weeks)
	}
}

func TestConfigLister_ReadsAvailableWeeks(t *testing.T) {
	fs := memfs.New()
	payload := `{"semanasDisponibles": [{"semana": 1, "año": 2026, "nombre": "semana_1_2026.json"}, {"semana": 52, "año": 2025}]}`
	if err := util.WriteFile(fs, ConfigFile, []byte(payload), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	weeks, err := ConfigLister{Source: NewFSSource(fs)}.ListWeeks(context.Background())
	if err != nil {
		t.Fatalf("ListWeeks returned error: %v", err)
	}
	if len(weeks) != 2 || weeks[0].FileRef != "semana_52_2025.json" {
		t.Fatalf("weeks = %+v, want 52/2025 first with derived file name", weeks)
	}
}
