package schedule

import "strings"

// DefaultProgramType is applied to programs that omit "tipo".
const DefaultProgramType = "crossfit"

// Document mirrors a semanas/semana_<week>_<year>.json payload.
type Document struct {
	Week        int    `json:"semana"`
	Year        int    `json:"año"`
	DateRange   string `json:"rango_fechas"`
	LastUpdated string `json:"ultima_actualizacion,omitempty"`
	Days        []Day  `json:"dias"`
}

// Key returns the week key the document claims to describe.
func (d *Document) Key() WeekKey {
	if d == nil {
		return WeekKey{}
	}
	return WeekKey{Week: d.Week, Year: d.Year}
}

// Day is one column of the weekly board.
type Day struct {
	Name         string    `json:"nombre"`
	Date         string    `json:"fecha"`
	IsHoliday    bool      `json:"festivo,omitempty"`
	HolidayBadge string    `json:"festivo_badge,omitempty"`
	Programs     []Program `json:"programas"`
}

// Program is a single training block within a day. Holiday programs carry
// RestText and Icon; regular programs carry Workouts.
type Program struct {
	Type     string    `json:"tipo,omitempty"`
	Title    string    `json:"titulo"`
	RestText string    `json:"rest_text,omitempty"`
	Icon     string    `json:"icono,omitempty"`
	Feedback string    `json:"feedback,omitempty"`
	Workouts []Workout `json:"workouts,omitempty"`
}

// Kind returns the normalized category tag, defaulting to crossfit.
func (p Program) Kind() string {
	kind := strings.ToLower(strings.TrimSpace(p.Type))
	if kind == "" {
		return DefaultProgramType
	}
	return kind
}

// Workout is a titled block of workout details. Both fields are optional.
type Workout struct {
	Title   string `json:"titulo,omitempty"`
	Details string `json:"detalles,omitempty"`
}

// RemoteConfig mirrors config.json. Pointer fields distinguish an absent key
// from a zero value so a partial file only overrides what it names.
type RemoteConfig struct {
	CurrentWeek    *int         `json:"semanaActual,omitempty"`
	CurrentYear    *int         `json:"añoActual,omitempty"`
	Notifications  *bool        `json:"notificaciones,omitempty"`
	DarkMode       *bool        `json:"modoOscuro,omitempty"`
	AvailableWeeks []WeekRefDoc `json:"semanasDisponibles,omitempty"`
}

// WeekRefDoc is the wire form of an available week entry.
type WeekRefDoc struct {
	Week int    `json:"semana"`
	Year int    `json:"año"`
	Name string `json:"nombre"`
}

// Refs converts the wire entries to WeekRefs, filling in missing file names.
func (c RemoteConfig) Refs() []WeekRef {
	if len(c.AvailableWeeks) == 0 {
		return nil
	}
	out := make([]WeekRef, 0, len(c.AvailableWeeks))
	for _, w := range c.AvailableWeeks {
		ref := WeekRef{WeekKey: WeekKey{Week: w.Week, Year: w.Year}, FileRef: strings.TrimSpace(w.Name)}
		if ref.FileRef == "" {
			ref.FileRef = ref.WeekKey.FileName()
		}
		out = append(out, ref)
	}
	return out
}

// IntPtr and BoolPtr build RemoteConfig fields.
func IntPtr(v int) *int { return &v }

func BoolPtr(v bool) *bool { return &v }
