package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name  string
	Light bool

	Background string // screen
	Surface    string // header, command bar and nav row
	SurfaceAlt string // cards and modals
	FocusBg    string // hovered card

	SelectionBg   string
	SelectionText string

	Border      string
	BorderMuted string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Program type accents keyed by normalized "tipo".
	ProgramColors map[string]string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	programColors map[string]string
	background    string
	accent        string
}

// Styles builds the Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	on := func(bg, text string) lipgloss.Style {
		return fg(text).Background(lipgloss.Color(bg))
	}

	return Styles{
		Background: lipgloss.NewStyle().Background(lipgloss.Color(t.Background)),
		Surface:    on(t.Surface, t.Text),
		SurfaceAlt: on(t.SurfaceAlt, t.Text),

		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),

		Header:   on(t.Surface, t.Text).Padding(0, 1),
		Footer:   on(t.Surface, t.Muted).Padding(0, 1),
		Logo:     fg(t.Accent).Bold(true),
		Selected: on(t.SelectionBg, t.SelectionText),

		programColors: t.ProgramColors,
		background:    t.Background,
		accent:        t.Accent,
	}
}

// ProgramColor returns the accent for a program type, falling back to the
// theme accent.
func (t Theme) ProgramColor(kind string) string {
	if c := t.ProgramColors[strings.ToLower(strings.TrimSpace(kind))]; c != "" {
		return c
	}
	return t.Accent
}

// ProgramStyle returns the badge style for a program type.
func (s Styles) ProgramStyle(kind string) lipgloss.Style {
	color := s.programColors[kind]
	if color == "" {
		color = s.accent
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// WithBackground returns a copy of s with every style painted on bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	for _, st := range s.all() {
		*st = st.Background(bg)
	}
	return s
}

func (s *Styles) all() []*lipgloss.Style {
	return []*lipgloss.Style{
		&s.Background, &s.Surface, &s.SurfaceAlt,
		&s.Text, &s.MutedText, &s.FaintText, &s.AccentText,
		&s.SuccessText, &s.WarningText, &s.DangerText, &s.InfoText,
		&s.Header, &s.Footer, &s.Logo, &s.Selected,
	}
}

// LightTheme is used when the configuration turns dark mode off.
const LightTheme = "Daylight"

const defaultTheme = "Nightfox"

var themeOrder = []string{defaultTheme, "Chalkboard", "Iron", LightTheme}

var themes = map[string]func() Theme{
	defaultTheme: nightfoxTheme,
	"Chalkboard": chalkboardTheme,
	"Iron":       ironTheme,
	LightTheme:   daylightTheme,
}

// GetTheme returns a theme by name, or the default theme when unknown.
func GetTheme(name string) Theme {
	if build, ok := themes[name]; ok {
		return build()
	}
	return nightfoxTheme()
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names in cycle order.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

// themeFor resolves the starting theme. A light configuration overrides a
// dark preference; the user can still cycle afterwards.
func themeFor(name string, dark bool) Theme {
	t := GetTheme(name)
	if !dark && !t.Light {
		return GetTheme(LightTheme)
	}
	return t
}

func nightfoxTheme() Theme {
	// https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: defaultTheme,

		Background: "#131a24",
		Surface:    "#192330",
		SurfaceAlt: "#212e3f",
		FocusBg:    "#29394f",

		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",

		Border:      "#39506d",
		BorderMuted: "#212e3f",
		BorderFocus: "#719cd6",

		Text:    "#cdcecf",
		Muted:   "#738091",
		Faint:   "#71839b",
		Accent:  "#719cd6",
		Success: "#81b29a",
		Warning: "#dbc074",
		Danger:  "#c94f6d",
		Info:    "#63cdcf",

		ProgramColors: map[string]string{
			"crossfit":     "#719cd6",
			"halterofilia": "#9d79d6",
			"gimnasticos":  "#63cdcf",
			"endurance":    "#f4a261",
			"open":         "#81b29a",
			"festivo":      "#dbc074",
		},
	}
}

// Chalk on a green board, like the box whiteboard.
func chalkboardTheme() Theme {
	return Theme{
		Name: "Chalkboard",

		Background: "#1b2420",
		Surface:    "#222e29",
		SurfaceAlt: "#2a3832",
		FocusBg:    "#34453e",

		SelectionBg:   "#3d5249",
		SelectionText: "#f2efe6",

		Border:      "#4b6358",
		BorderMuted: "#2a3832",
		BorderFocus: "#f2d479",

		Text:    "#f2efe6",
		Muted:   "#b9bfb4",
		Faint:   "#87948c",
		Accent:  "#f2d479",
		Success: "#a8d8a0",
		Warning: "#f2b27a",
		Danger:  "#f08a8a",
		Info:    "#9fd3e0",

		ProgramColors: map[string]string{
			"crossfit":     "#f2d479",
			"halterofilia": "#d6a8e6",
			"gimnasticos":  "#9fd3e0",
			"endurance":    "#f2b27a",
			"open":         "#a8d8a0",
			"festivo":      "#f08a8a",
		},
	}
}

// Rubber floor and red plates.
func ironTheme() Theme {
	return Theme{
		Name: "Iron",

		Background: "#0e0e10",
		Surface:    "#18181b",
		SurfaceAlt: "#232327",
		FocusBg:    "#2e2e33",

		SelectionBg:   "#7f1d1d",
		SelectionText: "#fafafa",

		Border:      "#3f3f46",
		BorderMuted: "#232327",
		BorderFocus: "#ef4444",

		Text:    "#fafafa",
		Muted:   "#a1a1aa",
		Faint:   "#71717a",
		Accent:  "#ef4444",
		Success: "#4ade80",
		Warning: "#facc15",
		Danger:  "#f87171",
		Info:    "#60a5fa",

		ProgramColors: map[string]string{
			"crossfit":     "#ef4444",
			"halterofilia": "#60a5fa",
			"gimnasticos":  "#facc15",
			"endurance":    "#4ade80",
			"open":         "#f97316",
			"festivo":      "#c084fc",
		},
	}
}

func daylightTheme() Theme {
	return Theme{
		Name:  LightTheme,
		Light: true,

		Background: "#f8fafc",
		Surface:    "#e2e8f0",
		SurfaceAlt: "#ffffff",
		FocusBg:    "#e0f2fe",

		SelectionBg:   "#bae6fd",
		SelectionText: "#0f172a",

		Border:      "#cbd5e1",
		BorderMuted: "#e2e8f0",
		BorderFocus: "#0284c7",

		Text:    "#0f172a",
		Muted:   "#475569",
		Faint:   "#64748b",
		Accent:  "#0284c7",
		Success: "#15803d",
		Warning: "#b45309",
		Danger:  "#b91c1c",
		Info:    "#0e7490",

		ProgramColors: map[string]string{
			"crossfit":     "#0284c7",
			"halterofilia": "#7e22ce",
			"gimnasticos":  "#0f766e",
			"endurance":    "#c2410c",
			"open":         "#15803d",
			"festivo":      "#b45309",
		},
	}
}
