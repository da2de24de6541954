// Package render turns schedule documents into a typed view tree. It never
// fetches data or touches application state; painting the tree is left to
// the ui package.
package render

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/wodview/internal/schedule"
)

// CardDelay is the entrance stagger between consecutive day cards.
const CardDelay = 100 * time.Millisecond

const (
	DefaultHolidayIcon = "🎆"
	FeedbackLabel      = "FEEDBACK PARA COACHES"
	FeedbackHeading    = "📋 FEEDBACK PARA COACHES:"
	NoDataTitle        = "No hay programación disponible"
	NoDataText         = "Esta semana no tiene datos de programación."
	NoProgramsTitle    = "Sin programación"
	NoProgramsText     = "No hay entrenamientos programados para este día"
)

// WeekTitle formats the header title for a week key.
func WeekTitle(week, year int) string {
	return fmt.Sprintf("Semana %d - %d", week, year)
}

// Schedule builds the view for a whole document.
func Schedule(doc *schedule.Document) View {
	if doc == nil {
		return View{}
	}
	updated := strings.TrimSpace(doc.LastUpdated)
	if updated == "" {
		updated = "Hoy"
	}
	v := View{Header: &Header{
		Title:     WeekTitle(doc.Week, doc.Year),
		DateRange: doc.DateRange,
		Updated:   updated,
	}}

	if len(doc.Days) == 0 {
		v.Placeholder = &Placeholder{Title: NoDataTitle, Text: NoDataText}
		return v
	}
	v.Cards = make([]Card, 0, len(doc.Days))
	for i, day := range doc.Days {
		v.Cards = append(v.Cards, DayCard(day, i))
	}
	return v
}

// DayCard builds the card of a single day.
func DayCard(day schedule.Day, index int) Card {
	card := Card{
		Index:   index,
		Name:    day.Name,
		Date:    day.Date,
		Holiday: day.IsHoliday,
		Delay:   time.Duration(index) * CardDelay,
	}
	if day.IsHoliday {
		card.Badge = strings.TrimSpace(day.HolidayBadge)
	}
	if len(day.Programs) == 0 {
		card.Sections = []Section{{
			Kind:  schedule.DefaultProgramType,
			Style: StyleEmpty,
			Title: NoProgramsTitle,
			Empty: NoProgramsText,
		}}
		return card
	}
	card.Sections = make([]Section, 0, len(day.Programs))
	for _, p := range day.Programs {
		card.Sections = append(card.Sections, ProgramSection(p, day.IsHoliday))
	}
	return card
}

// ProgramSection builds a program section. Holiday style requires both a
// holiday day and rest text; otherwise the workouts are listed.
func ProgramSection(p schedule.Program, dayIsHoliday bool) Section {
	s := Section{Kind: p.Kind(), Title: p.Title}
	if dayIsHoliday && p.RestText != "" {
		s.Style = StyleHoliday
		s.RestText = p.RestText
		s.Icon = p.Icon
		if s.Icon == "" {
			s.Icon = DefaultHolidayIcon
		}
	} else {
		s.Style = StyleNormal
		for _, w := range p.Workouts {
			if w.Title == "" && w.Details == "" {
				continue
			}
			s.Workouts = append(s.Workouts, WorkoutLine{Title: w.Title, Details: w.Details})
		}
	}
	if p.Feedback != "" {
		s.Feedback = &Feedback{Label: FeedbackLabel, Heading: FeedbackHeading, Text: p.Feedback}
	}
	return s
}

// ToggleFeedback flips the feedback panel of s and reports the new
// visibility. Sections without feedback are left alone.
func ToggleFeedback(s *Section) bool {
	if s == nil || s.Feedback == nil {
		return false
	}
	s.Feedback.Visible = !s.Feedback.Visible
	return s.Feedback.Visible
}

// ErrorPanelFor builds the panel shown when key failed to load.
func ErrorPanelFor(key schedule.WeekKey, err error) View {
	detail := ""
	var fetchErr *schedule.FetchError
	var parseErr *schedule.ParseError
	switch {
	case errors.As(err, &fetchErr) && fetchErr.Status > 0:
		detail = fmt.Sprintf("Error %d: %s", fetchErr.Status, fetchErr.Message)
	case errors.As(err, &parseErr):
		detail = fmt.Sprintf("Formato inválido: %v", parseErr.Err)
	case err != nil:
		detail = err.Error()
	}
	return View{Error: &ErrorPanel{
		Title:   "Error",
		Message: fmt.Sprintf("No se pudo cargar la semana %d de %d", key.Week, key.Year),
		Detail:  detail,
		Actions: []Action{
			{Key: "r", Label: "Reintentar"},
			{Key: "c", Label: "Configurar semana manualmente"},
		},
	}}
}

// Weeks builds the explorer view. current marks the displayed week.
func Weeks(weeks []schedule.WeekRef, current schedule.WeekKey) View {
	list := &WeekList{
		Title: "Semanas Disponibles",
		Empty: "No hay semanas disponibles",
		Back:  Action{Key: "esc", Label: "Volver a la semana actual"},
	}
	for _, w := range weeks {
		list.Items = append(list.Items, WeekItem{
			Label:   fmt.Sprintf("Semana %d", w.Week),
			Year:    w.Year,
			FileRef: w.FileRef,
			Current: w.WeekKey == current,
		})
	}
	return View{Weeks: list}
}
