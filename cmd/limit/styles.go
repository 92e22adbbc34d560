package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// theme maps diagnostic roles to ANSI color indices (0-15) so output follows
// the user's terminal palette.
type theme struct {
	Error int
	Muted int
}

func defaultTheme() theme {
	return theme{Error: 1, Muted: 8}
}

// styles renders diagnostics for a single writer.
type styles struct {
	prefix lipgloss.Style
	detail lipgloss.Style
}

// newStyles detects the color profile of w. noColor forces plain text.
func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	t := defaultTheme()
	return styles{
		prefix: r.NewStyle().Foreground(ansiColor(t.Error)).Bold(true),
		detail: r.NewStyle().Foreground(ansiColor(t.Muted)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	return lipgloss.Color(strconv.Itoa(index))
}

// printError writes "limit: <err>". Multi-line messages (executable stderr)
// keep their first line on the prefix line and dim the rest.
func (s styles) printError(w io.Writer, err error) {
	head, rest, _ := strings.Cut(err.Error(), "\n")
	fmt.Fprintf(w, "%s %s\n", s.prefix.Render("limit:"), head)
	if rest != "" {
		fmt.Fprintln(w, s.detail.Render(rest))
	}
}
