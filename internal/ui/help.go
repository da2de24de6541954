package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var helpTitles = []string{"Semanas", "Programación", "General"}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	return m.placeModal(m.helpBox())
}

func (m Model) helpBox() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Atajos de teclado"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	groups := m.keys.FullHelp()
	for i, group := range groups {
		b.WriteString(styles.AccentText.Bold(true).Render(helpTitles[i]))
		b.WriteString("\n")
		for _, kb := range group {
			b.WriteString(helpLine(kb, m.theme))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(46).
		Render(b.String())
}

func helpLine(kb key.Binding, theme Theme) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Width(12)
	return keyStyle.Render(kb.Help().Key) + theme.Styles().Text.Render(kb.Help().Desc)
}

// placeModal centers a modal box over the screen.
func (m Model) placeModal(box string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// modalBounds returns the screen rectangle a centered box occupies.
func (m Model) modalBounds(box string) (x0, y0, x1, y1 int) {
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x0 = max(0, (m.width-w)/2)
	y0 = max(0, (m.height-h)/2)
	return x0, y0, x0 + w, y0 + h
}
