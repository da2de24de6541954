package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse closes modals on outside clicks, dismisses clicked
// notifications, tracks the hovered card and forwards wheel events to the
// board.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.showHelp {
		if press {
			m.showHelp = false
		}
		return m, nil
	}
	if m.showConfig {
		if press {
			x0, y0, x1, y1 := m.modalBounds(m.configBox())
			if msg.X < x0 || msg.X >= x1 || msg.Y < y0 || msg.Y >= y1 {
				m.closeConfig()
			}
		}
		return m, nil
	}

	if press {
		if n, ok := m.noticeAt(msg.Y); ok {
			m.notices.Dismiss(n.ID)
			m.syncContent()
			return m, nil
		}
	}

	if msg.Action == tea.MouseActionMotion && m.mode == ModeBoard {
		hovered := -1
		if m.width >= wideLayout {
			y := msg.Y - m.contentTop() + m.content.YOffset
			hovered = m.layout.cardAt(msg.X, y, m.visibleCards())
		}
		if hovered != m.hovered {
			m.hovered = hovered
			m.syncContent()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m Model) visibleCards() int {
	if m.revealed >= 0 && m.revealed < len(m.view.Cards) {
		return m.revealed
	}
	return len(m.view.Cards)
}
