package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wodview/internal/render"
)

const (
	cardOuterWidth = 36
	minCardWidth   = 24
)

// sectionRef addresses one program section on the board.
type sectionRef struct {
	Card    int
	Section int
}

var noSection = sectionRef{Card: -1, Section: -1}

// paintOptions carries the interactive state layered on top of a View.
type paintOptions struct {
	Selected   sectionRef
	Hovered    int // card index under the mouse, -1 for none
	Revealed   int // cards shown so far, -1 for all
	WeekCursor int
}

func defaultPaintOptions() paintOptions {
	return paintOptions{Selected: noSection, Hovered: -1, Revealed: -1}
}

// boardLayout records where cards landed so mouse positions can be mapped
// back to a card.
type boardLayout struct {
	CardWidth int
	PerRow    int
	RowTops   []int
	RowHeight []int
}

// cardAt returns the card index under content coordinates x, y or -1.
func (l boardLayout) cardAt(x, y, cards int) int {
	if l.PerRow == 0 || l.CardWidth == 0 || x < 0 || y < 0 {
		return -1
	}
	col := x / l.CardWidth
	if col >= l.PerRow {
		return -1
	}
	for row, top := range l.RowTops {
		if y >= top && y < top+l.RowHeight[row] {
			idx := row*l.PerRow + col
			if idx < cards {
				return idx
			}
			return -1
		}
	}
	return -1
}

// painter turns a render.View into Lip Gloss strings.
type painter struct {
	theme  Theme
	styles Styles
	width  int
}

func newPainter(theme Theme, width int) painter {
	if width <= 0 {
		width = 80
	}
	return painter{theme: theme, styles: theme.Styles(), width: width}
}

// header renders the week banner line.
func (p painter) header(h *render.Header, loading bool) string {
	styles := p.styles.WithBackground(p.theme.Surface)
	bg := NewBgStyle(p.theme.Surface)

	parts := []string{bg.Render("wodview", styles.Logo)}
	if h != nil {
		parts = append(parts, bg.Render(h.Title, styles.Text.Bold(true)))
		if h.DateRange != "" {
			parts = append(parts, bg.Render(h.DateRange, styles.AccentText))
		}
		parts = append(parts, bg.Render("Actualizado:", styles.FaintText)+bg.Spaces(1)+bg.Render(h.Updated, styles.MutedText))
	}
	if loading {
		parts = append(parts, bg.Render("Cargando...", styles.WarningText.Bold(true)))
	}
	line := lipgloss.NewStyle().MaxWidth(max(1, p.width-2)).Render(bg.Join(parts, "  "))
	return styles.Header.Width(p.width).Render(line)
}

// board renders the content area for v.
func (p painter) board(v render.View, opts paintOptions) (string, boardLayout) {
	switch {
	case v.Error != nil:
		return p.errorPanel(v.Error), boardLayout{}
	case v.Weeks != nil:
		return p.weekList(v.Weeks, opts.WeekCursor), boardLayout{}
	case v.Placeholder != nil:
		return p.placeholder(v.Placeholder), boardLayout{}
	}
	return p.cards(v.Cards, opts)
}

func (p painter) cards(cards []render.Card, opts paintOptions) (string, boardLayout) {
	cardWidth := cardOuterWidth
	if p.width < cardWidth {
		cardWidth = max(p.width, minCardWidth)
	}
	perRow := max(1, p.width/cardWidth)
	layout := boardLayout{CardWidth: cardWidth, PerRow: perRow}

	visible := len(cards)
	if opts.Revealed >= 0 && opts.Revealed < visible {
		visible = opts.Revealed
	}

	var rows []string
	top := 0
	for start := 0; start < visible; start += perRow {
		end := min(start+perRow, visible)
		boxes := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			boxes = append(boxes, p.card(cards[i], cardWidth, opts))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
		h := lipgloss.Height(row)
		layout.RowTops = append(layout.RowTops, top)
		layout.RowHeight = append(layout.RowHeight, h)
		top += h
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), layout
}

func (p painter) card(c render.Card, outer int, opts paintOptions) string {
	border := p.theme.Border
	bgColor := p.theme.SurfaceAlt
	if c.Holiday {
		border = p.theme.Warning
	}
	if opts.Hovered == c.Index {
		border = p.theme.BorderFocus
		bgColor = p.theme.FocusBg
	}
	inner := outer - 4
	styles := p.styles

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(c.Name))
	if c.Date != "" {
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(c.Date))
	}
	if c.Badge != "" {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Bold(true).Render("★ " + c.Badge))
	}

	for i, s := range c.Sections {
		b.WriteString("\n\n")
		selected := opts.Selected == sectionRef{Card: c.Index, Section: i}
		b.WriteString(p.section(s, inner, selected))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Width(outer - 2).
		Render(b.String())
}

func (p painter) section(s render.Section, width int, selected bool) string {
	styles := p.styles
	var b strings.Builder

	marker := "  "
	if selected {
		marker = styles.AccentText.Bold(true).Render("› ")
	}

	switch s.Style {
	case render.StyleEmpty:
		b.WriteString(marker + styles.MutedText.Bold(true).Render(s.Title))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Width(width).Render(s.Empty))
		return b.String()

	case render.StyleHoliday:
		b.WriteString(marker + styles.ProgramStyle("festivo").Render(s.Title))
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Width(width).Render(s.Icon + " " + s.RestText))

	default:
		b.WriteString(marker + styles.ProgramStyle(s.Kind).Render(s.Title))
		for _, w := range s.Workouts {
			b.WriteString("\n")
			if w.Title != "" {
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(p.theme.ProgramColor(s.Kind))).
					Bold(true).
					Render(w.Title))
				if w.Details != "" {
					b.WriteString("\n")
				}
			}
			if w.Details != "" {
				b.WriteString(styles.Text.Width(width).Render(w.Details))
			}
		}
	}

	if s.Feedback != nil {
		b.WriteString("\n")
		arrow := "▸ "
		if s.Feedback.Visible {
			arrow = "▾ "
		}
		b.WriteString(styles.InfoText.Render(arrow + s.Feedback.Label))
		if s.Feedback.Visible {
			b.WriteString("\n")
			b.WriteString(styles.InfoText.Bold(true).Render(s.Feedback.Heading))
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Width(width).Render(s.Feedback.Text))
		}
	}
	return b.String()
}

func (p painter) placeholder(ph *render.Placeholder) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.theme.Border)).
		Padding(1, 3).
		Render(p.styles.Text.Bold(true).Render(ph.Title) + "\n\n" + p.styles.MutedText.Render(ph.Text))
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, box)
}

func (p painter) errorPanel(e *render.ErrorPanel) string {
	var b strings.Builder
	b.WriteString(p.styles.DangerText.Render("⚠ " + e.Title))
	b.WriteString("\n\n")
	b.WriteString(p.styles.Text.Bold(true).Render(e.Message))
	if e.Detail != "" {
		b.WriteString("\n")
		b.WriteString(p.styles.MutedText.Render(e.Detail))
	}
	b.WriteString("\n\n")
	hints := make([]string, 0, len(e.Actions))
	for _, a := range e.Actions {
		hints = append(hints, p.styles.AccentText.Render(a.Key)+p.styles.FaintText.Render(": ")+p.styles.Text.Render(a.Label))
	}
	b.WriteString(strings.Join(hints, "    "))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.theme.Danger)).
		Padding(1, 3).
		Render(b.String())
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, box)
}

func (p painter) weekList(l *render.WeekList, cursor int) string {
	var b strings.Builder
	b.WriteString(p.styles.Text.Bold(true).Render(l.Title))
	b.WriteString("\n")
	b.WriteString(p.styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	if len(l.Items) == 0 {
		b.WriteString(p.styles.MutedText.Render(l.Empty))
		b.WriteString("\n")
	}
	for i, item := range l.Items {
		label := fmt.Sprintf("%-10s %d", item.Label, item.Year)
		mark := "  "
		if item.Current {
			mark = "● "
		}
		line := mark + label
		switch {
		case i == cursor:
			line = p.styles.Selected.Render(line)
		case item.Current:
			line = p.styles.AccentText.Render(line)
		default:
			line = p.styles.Text.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.styles.FaintText.Render("enter: Ver semana  •  " + l.Back.Key + ": " + l.Back.Label))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.theme.Accent)).
		Padding(1, 2).
		Width(44).
		Render(b.String())
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, box)
}
