package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/five82/wodview/internal/render"
)

const defaultPrintWidth = 120

// PrintOptions configures a single-frame print.
type PrintOptions struct {
	ThemeName string
	DarkMode  bool
	Width     int // 0 detects the terminal width
}

// Print paints v once to w. Output to something other than a terminal is
// written without colors.
func Print(w io.Writer, v render.View, opts PrintOptions) error {
	width := opts.Width
	tty := false
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		tty = true
		if width == 0 {
			if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
				width = cols
			}
		}
	}
	if width <= 0 {
		width = defaultPrintWidth
	}
	if !tty {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	p := newPainter(themeFor(opts.ThemeName, opts.DarkMode), width)
	body, _ := p.board(v, defaultPaintOptions())
	if v.Header != nil {
		if _, err := fmt.Fprintln(w, p.header(v.Header, false)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, body)
	return err
}
