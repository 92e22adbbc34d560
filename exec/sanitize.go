package exec

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize makes child process diagnostics safe to print. It strips ANSI
// escape sequences, normalizes CRLF to LF, keeps only the text after the
// last carriage return of each line (progress bars redraw that way) and
// drops remaining control characters other than tab and newline.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if j := strings.LastIndexByte(line, '\r'); j >= 0 {
			line = line[j+1:]
		}
		lines[i] = strings.Map(func(r rune) rune {
			if r == '\t' || r > 0x1F && r != 0x7F {
				return r
			}
			return -1
		}, line)
	}
	return strings.Join(lines, "\n")
}
