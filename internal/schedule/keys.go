package schedule

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
)

// WeeksPerYear is the number of schedulable weeks before the year wraps.
const WeeksPerYear = 52

// WeeksDir is the directory holding week documents relative to the source root.
const WeeksDir = "semanas"

// ConfigFile is the configuration resource relative to the source root.
const ConfigFile = "config.json"

// WeekKey identifies one schedule document.
type WeekKey struct {
	Week int
	Year int
}

// Valid reports whether the week number is within 1..52.
func (k WeekKey) Valid() bool {
	return k.Week >= 1 && k.Week <= WeeksPerYear
}

// Next returns the following week, wrapping into the next year after week 52.
func (k WeekKey) Next() WeekKey {
	if k.Week >= WeeksPerYear {
		return WeekKey{Week: 1, Year: k.Year + 1}
	}
	return WeekKey{Week: k.Week + 1, Year: k.Year}
}

// Previous returns the preceding week, wrapping into week 52 of the prior year.
func (k WeekKey) Previous() WeekKey {
	if k.Week <= 1 {
		return WeekKey{Week: WeeksPerYear, Year: k.Year - 1}
	}
	return WeekKey{Week: k.Week - 1, Year: k.Year}
}

// FileName returns semana_<week>_<year>.json.
func (k WeekKey) FileName() string {
	return fmt.Sprintf("semana_%d_%d.json", k.Week, k.Year)
}

// Path returns the resource path of the week document.
func (k WeekKey) Path() string {
	return path.Join(WeeksDir, k.FileName())
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%d/%d", k.Week, k.Year)
}

// WeekRef is an entry of the available weeks list.
type WeekRef struct {
	WeekKey
	FileRef string
}

var fileRefPattern = regexp.MustCompile(`semana_(\d+)_(\d+)`)

// ParseFileRef extracts the week key from a reference such as
// "semana_52_2025.json" or "semanas/semana_1_2026.json".
func ParseFileRef(ref string) (WeekKey, error) {
	match := fileRefPattern.FindStringSubmatch(ref)
	if match == nil {
		return WeekKey{}, fmt.Errorf("invalid week reference %q", ref)
	}
	week, err := strconv.Atoi(match[1])
	if err != nil {
		return WeekKey{}, fmt.Errorf("invalid week in %q: %w", ref, err)
	}
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return WeekKey{}, fmt.Errorf("invalid year in %q: %w", ref, err)
	}
	key := WeekKey{Week: week, Year: year}
	if !key.Valid() {
		return WeekKey{}, fmt.Errorf("week %d out of range in %q", week, ref)
	}
	return key, nil
}

// Contains reports whether key is present in refs.
func Contains(refs []WeekRef, key WeekKey) bool {
	for _, ref := range refs {
		if ref.WeekKey == key {
			return true
		}
	}
	return false
}
