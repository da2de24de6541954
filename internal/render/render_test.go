package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/five82/wodview/internal/schedule"
)

func TestSchedule_EmptyDaysRendersPlaceholder(t *testing.T) {
	v := Schedule(&schedule.Document{Week: 3, Year: 2026, DateRange: "12 - 18 Enero"})
	if v.Placeholder == nil {
		t.Fatalf("expected placeholder for week without days")
	}
	if len(v.Cards) != 0 {
		t.Fatalf("len(Cards) = %d, want 0", len(v.Cards))
	}
	if v.Placeholder.Text != NoDataText {
		t.Fatalf("Placeholder.Text = %q, want %q", v.Placeholder.Text, NoDataText)
	}
	if v.Header == nil || v.Header.Title != "Semana 3 - 2026" {
		t.Fatalf("Header = %+v, want title %q", v.Header, "Semana 3 - 2026")
	}
	if v.Header.Updated != "Hoy" {
		t.Fatalf("Header.Updated = %q, want %q", v.Header.Updated, "Hoy")
	}
}

func TestSchedule_OneCardPerDayWithStaggeredDelay(t *testing.T) {
	doc := &schedule.Document{
		Week: 52, Year: 2025, LastUpdated: "20 Dic",
		Days: []schedule.Day{
			{Name: "Lunes", Date: "22 Dic", Programs: []schedule.Program{{Title: "WOD"}}},
			{Name: "Martes", Date: "23 Dic"},
			{Name: "Miércoles", Date: "24 Dic", IsHoliday: true, HolidayBadge: "Nochebuena"},
		},
	}
	v := Schedule(doc)
	if v.Placeholder != nil {
		t.Fatalf("unexpected placeholder")
	}
	if len(v.Cards) != 3 {
		t.Fatalf("len(Cards) = %d, want 3", len(v.Cards))
	}
	for i, c := range v.Cards {
		if want := time.Duration(i) * 100 * time.Millisecond; c.Delay != want {
			t.Fatalf("Cards[%d].Delay = %v, want %v", i, c.Delay, want)
		}
	}
	if v.Header.Updated != "20 Dic" {
		t.Fatalf("Header.Updated = %q, want %q", v.Header.Updated, "20 Dic")
	}
}

func TestDayCard_BadgeOnlyForHolidays(t *testing.T) {
	tests := []struct {
		name string
		day  schedule.Day
		want string
	}{
		{"holiday with badge", schedule.Day{IsHoliday: true, HolidayBadge: "Navidad"}, "Navidad"},
		{"holiday without badge", schedule.Day{IsHoliday: true}, ""},
		{"badge on regular day", schedule.Day{HolidayBadge: "Navidad"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayCard(tt.day, 0).Badge; got != tt.want {
				t.Fatalf("Badge = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayCard_NoProgramsPlaceholderSection(t *testing.T) {
	card := DayCard(schedule.Day{Name: "Domingo"}, 6)
	if len(card.Sections) != 1 {
		t.Fatalf("len(Sections) = %d, want 1", len(card.Sections))
	}
	s := card.Sections[0]
	if s.Style != StyleEmpty || s.Title != NoProgramsTitle || s.Empty != NoProgramsText {
		t.Fatalf("placeholder section = %+v", s)
	}
}

func TestProgramSection_HolidayStyle(t *testing.T) {
	tests := []struct {
		name    string
		holiday bool
		rest    string
		want    SectionStyle
	}{
		{"holiday with rest text", true, "Descanso", StyleHoliday},
		{"holiday without rest text", true, "", StyleNormal},
		{"rest text on regular day", false, "Descanso", StyleNormal},
		{"regular", false, "", StyleNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := schedule.Program{Title: "Open box", RestText: tt.rest, Workouts: []schedule.Workout{{Title: "EMOM"}}}
			s := ProgramSection(p, tt.holiday)
			if s.Style != tt.want {
				t.Fatalf("Style = %v, want %v", s.Style, tt.want)
			}
			if s.Style == StyleHoliday {
				if s.Icon != DefaultHolidayIcon {
					t.Fatalf("Icon = %q, want %q", s.Icon, DefaultHolidayIcon)
				}
				if len(s.Workouts) != 0 {
					t.Fatalf("holiday section listed %d workouts", len(s.Workouts))
				}
			} else if len(s.Workouts) != 1 {
				t.Fatalf("len(Workouts) = %d, want 1", len(s.Workouts))
			}
		})
	}
}

func TestProgramSection_KindAndWorkouts(t *testing.T) {
	p := schedule.Program{
		Type:  " Halterofilia ",
		Title: "Técnica",
		Workouts: []schedule.Workout{
			{Title: "Snatch", Details: "5x3"},
			{},
			{Details: "Movilidad"},
		},
	}
	s := ProgramSection(p, false)
	if s.Kind != "halterofilia" {
		t.Fatalf("Kind = %q, want %q", s.Kind, "halterofilia")
	}
	if len(s.Workouts) != 2 {
		t.Fatalf("len(Workouts) = %d, want 2", len(s.Workouts))
	}
	if s.Feedback != nil {
		t.Fatalf("unexpected feedback block")
	}
	if ProgramSection(schedule.Program{}, false).Kind != schedule.DefaultProgramType {
		t.Fatalf("missing type did not default to %q", schedule.DefaultProgramType)
	}
}

func TestToggleFeedback(t *testing.T) {
	s := ProgramSection(schedule.Program{Title: "WOD", Feedback: "Escalar burpees"}, false)
	if s.Feedback == nil || s.Feedback.Label != FeedbackLabel {
		t.Fatalf("feedback block = %+v", s.Feedback)
	}
	if s.Feedback.Visible {
		t.Fatalf("feedback should start collapsed")
	}
	if !ToggleFeedback(&s) {
		t.Fatalf("first toggle should show feedback")
	}
	if ToggleFeedback(&s) {
		t.Fatalf("second toggle should hide feedback")
	}
	if s.Feedback.Text != "Escalar burpees" {
		t.Fatalf("Text = %q, want unchanged", s.Feedback.Text)
	}

	plain := ProgramSection(schedule.Program{Title: "WOD"}, false)
	if ToggleFeedback(&plain) || plain.Feedback != nil {
		t.Fatalf("toggle on section without feedback changed it")
	}
	if ToggleFeedback(nil) {
		t.Fatalf("toggle on nil section returned true")
	}
}

func TestToggleFeedback_ResetsOnRerender(t *testing.T) {
	doc := &schedule.Document{Days: []schedule.Day{{Programs: []schedule.Program{{Title: "WOD", Feedback: "nota"}}}}}
	v := Schedule(doc)
	ToggleFeedback(&v.Cards[0].Sections[0])
	if again := Schedule(doc); again.Cards[0].Sections[0].Feedback.Visible {
		t.Fatalf("fresh render kept feedback visible")
	}
}

func TestErrorPanelFor(t *testing.T) {
	key := schedule.WeekKey{Week: 7, Year: 2026}
	tests := []struct {
		name   string
		err    error
		detail string
	}{
		{"http status", &schedule.FetchError{Status: 404, Message: "Not Found", Path: key.Path()}, "Error 404: Not Found"},
		{"parse", &schedule.ParseError{Path: key.Path(), Err: errors.New("unexpected EOF")}, "Formato inválido: unexpected EOF"},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ErrorPanelFor(key, tt.err)
			if v.Error == nil {
				t.Fatalf("expected error panel")
			}
			if want := "No se pudo cargar la semana 7 de 2026"; v.Error.Message != want {
				t.Fatalf("Message = %q, want %q", v.Error.Message, want)
			}
			if v.Error.Detail != tt.detail {
				t.Fatalf("Detail = %q, want %q", v.Error.Detail, tt.detail)
			}
			var labels []string
			for _, a := range v.Error.Actions {
				labels = append(labels, a.Label)
			}
			if got := strings.Join(labels, ","); got != "Reintentar,Configurar semana manualmente" {
				t.Fatalf("actions = %q", got)
			}
			if len(v.Cards) != 0 || v.Placeholder != nil {
				t.Fatalf("error view carried other content")
			}
		})
	}
}

func TestWeeks_MarksCurrent(t *testing.T) {
	refs := schedule.DefaultSeed()
	v := Weeks(refs, schedule.WeekKey{Week: 1, Year: 2026})
	if v.Weeks == nil || len(v.Weeks.Items) != len(refs) {
		t.Fatalf("Weeks = %+v", v.Weeks)
	}
	for _, item := range v.Weeks.Items {
		if item.Current != (item.Label == "Semana 1" && item.Year == 2026) {
			t.Fatalf("item %+v has wrong Current flag", item)
		}
	}
}
