package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Weeks
	PrevWeek    key.Binding
	NextWeek    key.Binding
	Reload      key.Binding
	ReloadWeeks key.Binding
	Explorer    key.Binding
	Configure   key.Binding

	// Board
	Up             key.Binding
	Down           key.Binding
	ToggleFeedback key.Binding
	Dismiss        key.Binding
	PageUp         key.Binding
	PageDown       key.Binding

	// Modal controls
	Tab      key.Binding
	ShiftTab key.Binding
	Toggle   key.Binding
	Confirm  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Salir"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Ayuda"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cambiar tema"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cerrar"),
		),

		PrevWeek: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Semana anterior"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "Semana siguiente"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r/F5", "Recargar semana"),
		),
		ReloadWeeks: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Recargar lista de semanas"),
		),
		Explorer: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Semanas disponibles"),
		),
		Configure: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Configuración"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Programa anterior"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Programa siguiente"),
		),
		ToggleFeedback: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Mostrar feedback"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Cerrar notificación"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Página arriba"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Página abajo"),
		),

		Tab: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Campo siguiente"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Campo anterior"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("espacio", "Activar/desactivar"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Guardar"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevWeek, k.NextWeek, k.Reload, k.Explorer, k.Configure, k.Help}
}

// FullHelp returns key bindings grouped for the help modal.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevWeek, k.NextWeek, k.Explorer, k.Reload, k.ReloadWeeks},
		{k.Up, k.Down, k.ToggleFeedback, k.PageDown, k.PageUp},
		{k.Configure, k.Dismiss, k.CycleTheme, k.Escape, k.Help, k.Quit},
	}
}
