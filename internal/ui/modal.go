package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wodview/internal/configstore"
	"github.com/five82/wodview/internal/notify"
)

const configFields = 3

// initConfigInputs initializes the text inputs of the configuration modal.
func (m *Model) initConfigInputs() {
	week := textinput.New()
	week.Placeholder = "1-52"
	week.CharLimit = 2
	week.Width = 6

	year := textinput.New()
	year.Placeholder = "2026"
	year.CharLimit = 4
	year.Width = 6

	m.configInputs[0] = week
	m.configInputs[1] = year
}

// openConfig pre-fills the modal from the current configuration. The
// returned command starts the cursor blink.
func (m *Model) openConfig() tea.Cmd {
	edits := configstore.EditsFromConfig(m.store.Config())
	m.configInputs[0].SetValue(edits.Week)
	m.configInputs[1].SetValue(edits.Year)
	m.configNotify = edits.Notifications
	m.configMessage = ""
	m.showConfig = true
	return m.focusConfig(0)
}

func (m *Model) focusConfig(idx int) tea.Cmd {
	m.configFocus = idx
	var cmd tea.Cmd
	for i := range m.configInputs {
		if i == idx {
			cmd = m.configInputs[i].Focus()
		} else {
			m.configInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) closeConfig() {
	m.showConfig = false
	m.configMessage = ""
	for i := range m.configInputs {
		m.configInputs[i].Blur()
	}
}

// handleConfigKey handles keyboard input for the configuration modal.
func (m Model) handleConfigKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeConfig()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.saveConfig()

	case key.Matches(msg, m.keys.Tab):
		cmd := m.focusConfig((m.configFocus + 1) % configFields)
		return m, cmd

	case key.Matches(msg, m.keys.ShiftTab):
		cmd := m.focusConfig((m.configFocus - 1 + configFields) % configFields)
		return m, cmd
	}

	if m.configFocus == 2 {
		if key.Matches(msg, m.keys.Toggle) {
			m.configNotify = !m.configNotify
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.configInputs[m.configFocus], cmd = m.configInputs[m.configFocus].Update(msg)
	return m, cmd
}

// saveConfig applies the edits, notifies and reloads the chosen week.
// Invalid edits keep the modal open with the reason.
func (m Model) saveConfig() (tea.Model, tea.Cmd) {
	target, err := m.configs.Save(configstore.Edits{
		Week:          m.configInputs[0].Value(),
		Year:          m.configInputs[1].Value(),
		Notifications: m.configNotify,
	})
	if err != nil {
		m.configMessage = err.Error()
		return m, nil
	}
	m.closeConfig()
	m.notices.Notify(configstore.SavedMessage, notify.Success)
	m.mode = ModeBoard
	return m, m.startLoad(target)
}

// renderConfig renders the configuration modal.
func (m Model) renderConfig() string {
	return m.placeModal(m.configBox())
}

func (m Model) configBox() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Configuración"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	label := func(idx int, text string) string {
		if m.configFocus == idx {
			return styles.AccentText.Render(text)
		}
		return styles.MutedText.Render(text)
	}

	b.WriteString(label(0, "Semana:          "))
	b.WriteString(m.configInputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(label(1, "Año:             "))
	b.WriteString(m.configInputs[1].View())
	b.WriteString("\n\n")

	check := "[ ]"
	if m.configNotify {
		check = "[x]"
	}
	b.WriteString(label(2, "Notificaciones:  "))
	b.WriteString(styles.Text.Render(check))
	b.WriteString("\n\n")

	if m.configMessage != "" {
		b.WriteString(styles.DangerText.Render(m.configMessage))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("Enter: Guardar  •  Esc: Cerrar  •  Espacio: Activar"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(50).
		Render(b.String())
}
