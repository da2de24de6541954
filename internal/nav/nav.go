// Package nav moves the current week forward and backward through the list
// of available weeks.
package nav

import (
	"fmt"

	"github.com/five82/wodview/internal/schedule"
	"github.com/five82/wodview/internal/state"
)

// Direction selects the target of ChangeWeek.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Next {
		return "next"
	}
	return "previous"
}

// UnavailableWeekError reports a navigation target missing from the list of
// available weeks.
type UnavailableWeekError struct {
	Key schedule.WeekKey
}

func (e *UnavailableWeekError) Error() string {
	return fmt.Sprintf("La semana %d de %d no está disponible aún", e.Key.Week, e.Key.Year)
}

// Target is the availability of one navigation button.
type Target struct {
	Key     schedule.WeekKey
	Enabled bool
	Tooltip string
}

// Availability describes both navigation buttons.
type Availability struct {
	Previous Target
	Next     Target
}

// Controller wraps the state store with navigation rules.
type Controller struct {
	state *state.Store
}

// New returns a Controller operating on st.
func New(st *state.Store) *Controller {
	return &Controller{state: st}
}

// Candidate computes the week reached from the current one in direction d.
func Candidate(current schedule.WeekKey, d Direction) schedule.WeekKey {
	if d == Next {
		return current.Next()
	}
	return current.Previous()
}

// ChangeWeek commits the adjacent week in direction d when it is available.
// The returned key is the new current week; the caller reloads it.
func (c *Controller) ChangeWeek(d Direction) (schedule.WeekKey, error) {
	cfg := c.state.Config()
	target := Candidate(cfg.Key(), d)
	if !schedule.Contains(cfg.AvailableWeeks, target) {
		return schedule.WeekKey{}, &UnavailableWeekError{Key: target}
	}
	c.state.SetWeek(target)
	return target, nil
}

// JumpToWeek commits the week named by a file reference such as
// "semana_1_2026.json". Availability is not checked: the reference comes from
// the list itself or from the user.
func (c *Controller) JumpToWeek(fileRef string) (schedule.WeekKey, error) {
	key, err := schedule.ParseFileRef(fileRef)
	if err != nil {
		return schedule.WeekKey{}, err
	}
	c.state.SetWeek(key)
	return key, nil
}

// Availability reports whether the previous and next weeks exist.
func (c *Controller) Availability() Availability {
	return Compute(c.state.Config())
}

// Compute derives the availability of both buttons from cfg.
func Compute(cfg state.Config) Availability {
	current := cfg.Key()
	prev := Candidate(current, Previous)
	next := Candidate(current, Next)

	a := Availability{
		Previous: Target{Key: prev, Enabled: schedule.Contains(cfg.AvailableWeeks, prev)},
		Next:     Target{Key: next, Enabled: schedule.Contains(cfg.AvailableWeeks, next)},
	}
	a.Previous.Tooltip = "No hay semana anterior disponible"
	if a.Previous.Enabled {
		a.Previous.Tooltip = "Semana anterior"
	}
	a.Next.Tooltip = "No hay semana siguiente disponible"
	if a.Next.Enabled {
		a.Next.Tooltip = "Semana siguiente"
	}
	return a
}
