package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wodview/internal/nav"
	"github.com/five82/wodview/internal/notify"
	"github.com/five82/wodview/internal/state"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	chrome := m.renderChrome()

	vp := m.content
	vp.Height = max(1, m.height-lipgloss.Height(chrome))
	return chrome + "\n" + vp.View()
}

// renderChrome renders every line above the board. Each part is a single
// line so the board offset can be measured from the result.
func (m Model) renderChrome() string {
	lines := m.fixedChrome()
	for _, n := range m.notices.Active() {
		lines = append(lines, m.renderNotification(n))
	}
	return strings.Join(lines, "\n")
}

func (m Model) fixedChrome() []string {
	p := newPainter(m.theme, m.width)
	return []string{
		p.header(m.view.Header, m.snapshot.Status == state.LoadPending),
		m.renderCommandBar(),
		m.renderNavRow(),
	}
}

// renderCommandBar renders the key hints for the active mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type hint struct{ key, desc string }
	var hints []hint
	if m.mode == ModeWeeks {
		hints = []hint{{"j/k", "Mover"}, {"enter", "Ver semana"}, {"esc", "Volver a la semana actual"}}
	} else {
		bindings := m.keys.ShortHelp()
		if m.width >= wideLayout {
			bindings = append(bindings, m.keys.ToggleFeedback, m.keys.ReloadWeeks)
		}
		for _, kb := range bindings {
			hints = append(hints, hint{kb.Help().Key, kb.Help().Desc})
		}
	}

	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments, bg.Hint(h.key, h.desc, styles.AccentText, styles.MutedText))
	}
	themeHint := bg.Hint("T", m.theme.Name, styles.AccentText, styles.FaintText)

	// Drop trailing hints until the bar fits on one line.
	inner := max(1, m.width-2)
	line := bg.Join(append(segments[:len(segments):len(segments)], themeHint), "  ")
	for len(segments) > 0 && lipgloss.Width(line) > inner {
		segments = segments[:len(segments)-1]
		line = bg.Join(append(segments[:len(segments):len(segments)], themeHint), "  ")
	}
	line = lipgloss.NewStyle().MaxWidth(inner).Render(line)
	return styles.Footer.Width(m.width).Render(line)
}

// renderNavRow renders the previous/next controls around the week counter.
// Disabled controls are dimmed and show their reason.
func (m Model) renderNavRow() string {
	styles := m.theme.Styles()
	avail := m.nav.Availability()

	control := func(t nav.Target, label string) string {
		if t.Enabled {
			return styles.AccentText.Render(label)
		}
		return styles.FaintText.Faint(true).Render(t.Tooltip)
	}
	left := control(avail.Previous, "← "+avail.Previous.Tooltip)
	right := control(avail.Next, avail.Next.Tooltip+" →")
	counter := styles.Text.Bold(true).Render(weekCounter(m.snapshot.Config))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - lipgloss.Width(counter)
	if gap < 2 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left + "  " + counter + "  " + right)
	}
	leftGap := gap / 2
	return left + strings.Repeat(" ", leftGap) + counter + strings.Repeat(" ", gap-leftGap) + right
}

// weekCounter shows the current week and how many weeks are listed.
func weekCounter(c state.Config) string {
	n := len(c.AvailableWeeks)
	unit := "semanas disponibles"
	if n == 1 {
		unit = "semana disponible"
	}
	return fmt.Sprintf("Semana %d · %d %s", c.CurrentWeek, n, unit)
}

// renderNotification renders one toast, right aligned.
func (m Model) renderNotification(n notify.Notification) string {
	styles := m.theme.Styles()
	var icon string
	var style lipgloss.Style
	switch n.Severity {
	case notify.Success:
		icon, style = "✓", styles.SuccessText
	case notify.Warning:
		icon, style = "⚠", styles.WarningText.Bold(true)
	default:
		icon, style = "ℹ", styles.InfoText
	}
	line := style.Render(icon+" "+n.Message) + styles.FaintText.Render("  x")
	line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, line)
}

// noticeAt returns the notification painted on screen row y.
func (m Model) noticeAt(y int) (notify.Notification, bool) {
	top := lipgloss.Height(strings.Join(m.fixedChrome(), "\n"))
	active := m.notices.Active()
	if y < top || y >= top+len(active) {
		return notify.Notification{}, false
	}
	return active[y-top], true
}

// contentTop returns the screen row where the board starts.
func (m Model) contentTop() int {
	return lipgloss.Height(m.renderChrome())
}

func (m Model) contentHeight() int {
	return max(1, m.height-m.contentTop())
}

// syncContent repaints the board into the viewport.
func (m *Model) syncContent() {
	if !m.ready {
		return
	}
	p := newPainter(m.theme, m.width)
	opts := paintOptions{
		Selected:   m.selected,
		Hovered:    m.hovered,
		Revealed:   m.revealed,
		WeekCursor: m.weekCursor,
	}
	body, layout := p.board(m.view, opts)
	m.layout = layout
	m.content.Width = m.width
	m.content.Height = m.contentHeight()
	m.content.SetContent(body)
}
