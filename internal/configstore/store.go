// Package configstore loads the configuration resource into the application
// state and applies edits from the configuration modal.
package configstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/five82/wodview/internal/notify"
	"github.com/five82/wodview/internal/schedule"
	"github.com/five82/wodview/internal/state"
)

// Notifier receives user-facing messages.
type Notifier interface {
	Notify(message string, severity notify.Severity) string
}

// SavedMessage is the notification shown after a successful save.
const SavedMessage = "Configuración guardada correctamente"

// ReloadedMessage is the notification shown after reloading the week list.
const ReloadedMessage = "Lista de semanas recargada"

// Edits are the raw values of the configuration modal controls.
type Edits struct {
	Week          string
	Year          string
	Notifications bool
}

// Store binds a Source and a Lister to the application state.
type Store struct {
	source schedule.Source
	lister schedule.Lister
	state  *state.Store
}

// New builds a Store. A nil lister falls back to the built-in seed.
func New(source schedule.Source, lister schedule.Lister, st *state.Store) *Store {
	if lister == nil {
		lister = schedule.StaticLister{Weeks: schedule.DefaultSeed()}
	}
	return &Store{source: source, lister: lister, state: st}
}

// Load reads the configuration resource and merges it over the defaults.
// Any failure keeps the defaults and writes them back best-effort.
func (s *Store) Load(ctx context.Context) {
	remote, err := s.source.LoadConfig(ctx, false)
	if err != nil {
		log.Printf("config resource unavailable, using defaults: %v", err)
		if err := s.source.StoreConfig(ctx, ToRemote(s.state.Config())); err != nil {
			if errors.Is(err, schedule.ErrReadOnly) {
				log.Printf("config defaults not stored: source is read-only")
			} else {
				log.Printf("store config defaults failed: %v", err)
			}
		}
		return
	}
	s.state.Update(func(c *state.Config) { Merge(c, remote) })
}

// Save applies edits to the in-memory configuration. Nothing is written to
// the configuration resource; the caller reloads the week and notifies.
func (s *Store) Save(edits Edits) (schedule.WeekKey, error) {
	key, err := edits.Key()
	if err != nil {
		return schedule.WeekKey{}, err
	}
	s.state.Update(func(c *state.Config) {
		c.CurrentWeek = key.Week
		c.CurrentYear = key.Year
		c.NotificationsEnabled = edits.Notifications
	})
	log.Printf("configuration saved: week %s notifications=%t", key, edits.Notifications)
	return key, nil
}

// ListAvailableWeeks refreshes the week list from the lister and returns the
// new count. A lister failure leaves an empty list.
func (s *Store) ListAvailableWeeks(ctx context.Context) int {
	weeks, err := s.lister.ListWeeks(ctx)
	if err != nil {
		log.Printf("list weeks failed: %v", err)
		weeks = nil
	}
	s.state.SetAvailableWeeks(weeks)
	return len(weeks)
}

// ReloadWeeks refreshes the week list and tells the user it was reloaded.
func (s *Store) ReloadWeeks(ctx context.Context, n Notifier) int {
	count := s.ListAvailableWeeks(ctx)
	if n != nil {
		n.Notify(ReloadedMessage, notify.Info)
	}
	return count
}

// EditsFromConfig pre-fills the modal controls.
func EditsFromConfig(c state.Config) Edits {
	return Edits{
		Week:          strconv.Itoa(c.CurrentWeek),
		Year:          strconv.Itoa(c.CurrentYear),
		Notifications: c.NotificationsEnabled,
	}
}

// Key parses and validates the week and year controls.
func (e Edits) Key() (schedule.WeekKey, error) {
	week, err := strconv.Atoi(strings.TrimSpace(e.Week))
	if err != nil {
		return schedule.WeekKey{}, fmt.Errorf("semana inválida %q", e.Week)
	}
	year, err := strconv.Atoi(strings.TrimSpace(e.Year))
	if err != nil || year <= 0 {
		return schedule.WeekKey{}, fmt.Errorf("año inválido %q", e.Year)
	}
	key := schedule.WeekKey{Week: week, Year: year}
	if !key.Valid() {
		return schedule.WeekKey{}, fmt.Errorf("la semana debe estar entre 1 y %d", schedule.WeeksPerYear)
	}
	return key, nil
}

// Merge copies the fields present in remote over c.
func Merge(c *state.Config, remote schedule.RemoteConfig) {
	if remote.CurrentWeek != nil {
		c.CurrentWeek = *remote.CurrentWeek
	}
	if remote.CurrentYear != nil {
		c.CurrentYear = *remote.CurrentYear
	}
	if remote.Notifications != nil {
		c.NotificationsEnabled = *remote.Notifications
	}
	if remote.DarkMode != nil {
		c.DarkMode = *remote.DarkMode
	}
	if refs := remote.Refs(); refs != nil {
		c.AvailableWeeks = refs
	}
}

// ToRemote converts the configuration to its wire form.
func ToRemote(c state.Config) schedule.RemoteConfig {
	out := schedule.RemoteConfig{
		CurrentWeek:   schedule.IntPtr(c.CurrentWeek),
		CurrentYear:   schedule.IntPtr(c.CurrentYear),
		Notifications: schedule.BoolPtr(c.NotificationsEnabled),
		DarkMode:      schedule.BoolPtr(c.DarkMode),
	}
	for _, w := range c.AvailableWeeks {
		out.AvailableWeeks = append(out.AvailableWeeks, schedule.WeekRefDoc{Week: w.Week, Year: w.Year, Name: w.FileRef})
	}
	return out
}
