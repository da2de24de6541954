package nav

import (
	"errors"
	"testing"

	"github.com/five82/wodview/internal/schedule"
	"github.com/five82/wodview/internal/state"
)

func allWeeks(years ...int) []schedule.WeekRef {
	var out []schedule.WeekRef
	for _, y := range years {
		for w := 1; w <= schedule.WeeksPerYear; w++ {
			key := schedule.WeekKey{Week: w, Year: y}
			out = append(out, schedule.WeekRef{WeekKey: key, FileRef: key.FileName()})
		}
	}
	return out
}

func storeAt(key schedule.WeekKey, weeks []schedule.WeekRef) *state.Store {
	cfg := state.DefaultConfig()
	cfg.CurrentWeek = key.Week
	cfg.CurrentYear = key.Year
	cfg.AvailableWeeks = weeks
	return state.NewStore(cfg)
}

func TestChangeWeek_NextForEveryWeek(t *testing.T) {
	weeks := allWeeks(2025, 2026)
	for week := 1; week <= schedule.WeeksPerYear; week++ {
		st := storeAt(schedule.WeekKey{Week: week, Year: 2025}, weeks)
		got, err := New(st).ChangeWeek(Next)
		if err != nil {
			t.Fatalf("ChangeWeek(Next) from %d/2025 returned error: %v", week, err)
		}
		want := schedule.WeekKey{Week: week + 1, Year: 2025}
		if week == schedule.WeeksPerYear {
			want = schedule.WeekKey{Week: 1, Year: 2026}
		}
		if got != want || st.Config().Key() != want {
			t.Fatalf("ChangeWeek(Next) from %d/2025 = %v (state %v), want %v", week, got, st.Config().Key(), want)
		}
	}
}

func TestChangeWeek_PreviousForEveryWeek(t *testing.T) {
	weeks := allWeeks(2025, 2026)
	for week := 1; week <= schedule.WeeksPerYear; week++ {
		st := storeAt(schedule.WeekKey{Week: week, Year: 2026}, weeks)
		got, err := New(st).ChangeWeek(Previous)
		if err != nil {
			t.Fatalf("ChangeWeek(Previous) from %d/2026 returned error: %v", week, err)
		}
		want := schedule.WeekKey{Week: week - 1, Year: 2026}
		if week == 1 {
			want = schedule.WeekKey{Week: schedule.WeeksPerYear, Year: 2025}
		}
		if got != want {
			t.Fatalf("ChangeWeek(Previous) from %d/2026 = %v, want %v", week, got, want)
		}
	}
}

func TestChangeWeek_UnavailableIsNoOp(t *testing.T) {
	for _, d := range []Direction{Next, Previous} {
		t.Run(d.String(), func(t *testing.T) {
			start := schedule.WeekKey{Week: 10, Year: 2026}
			st := storeAt(start, []schedule.WeekRef{{WeekKey: start}})
			before := st.Snapshot().Version

			_, err := New(st).ChangeWeek(d)
			var unavailable *UnavailableWeekError
			if !errors.As(err, &unavailable) {
				t.Fatalf("ChangeWeek error = %v, want *UnavailableWeekError", err)
			}
			if unavailable.Key != Candidate(start, d) {
				t.Fatalf("error key = %v, want %v", unavailable.Key, Candidate(start, d))
			}
			if st.Config().Key() != start || st.Snapshot().Version != before {
				t.Fatalf("state changed on unavailable week")
			}
		})
	}
}

func TestUnavailableWeekErrorMessage(t *testing.T) {
	err := &UnavailableWeekError{Key: schedule.WeekKey{Week: 2, Year: 2026}}
	if got := err.Error(); got != "La semana 2 de 2026 no está disponible aún" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestYearBoundaryScenario(t *testing.T) {
	st := storeAt(schedule.WeekKey{Week: 52, Year: 2025}, schedule.DefaultSeed())
	c := New(st)

	a := c.Availability()
	if a.Previous.Enabled || !a.Next.Enabled {
		t.Fatalf("availability at 52/2025 = %+v, want prev disabled next enabled", a)
	}

	got, err := c.ChangeWeek(Next)
	if err != nil {
		t.Fatalf("ChangeWeek(Next) returned error: %v", err)
	}
	if got != (schedule.WeekKey{Week: 1, Year: 2026}) {
		t.Fatalf("ChangeWeek(Next) = %v, want 1/2026", got)
	}

	a = c.Availability()
	if a.Next.Enabled {
		t.Fatalf("next should be disabled at 1/2026 since 2/2026 is absent")
	}
	if a.Next.Tooltip != "No hay semana siguiente disponible" {
		t.Fatalf("Next.Tooltip = %q", a.Next.Tooltip)
	}
	if !a.Previous.Enabled || a.Previous.Key != (schedule.WeekKey{Week: 52, Year: 2025}) {
		t.Fatalf("Previous = %+v, want enabled 52/2025", a.Previous)
	}
	if a.Previous.Tooltip != "Semana anterior" {
		t.Fatalf("Previous.Tooltip = %q, want Semana anterior", a.Previous.Tooltip)
	}
}

func TestJumpToWeek(t *testing.T) {
	st := storeAt(schedule.WeekKey{Week: 52, Year: 2025}, nil)
	c := New(st)

	got, err := c.JumpToWeek("semana_1_2026.json")
	if err != nil {
		t.Fatalf("JumpToWeek returned error: %v", err)
	}
	if got != (schedule.WeekKey{Week: 1, Year: 2026}) || st.Config().Key() != got {
		t.Fatalf("JumpToWeek = %v (state %v), want 1/2026", got, st.Config().Key())
	}

	if _, err := c.JumpToWeek("notas.txt"); err == nil {
		t.Fatalf("JumpToWeek(invalid) returned nil error, want error")
	}
	if st.Config().Key() != got {
		t.Fatalf("invalid reference changed state to %v", st.Config().Key())
	}
}
