package exec

import (
	"strings"
	"unicode/utf8"
)

// Limits applied to stderr text carried in a SubprocessError.
const (
	MaxStderrLines = 50
	MaxStderrBytes = 8 * 1024
)

// Tail returns the last maxLines lines of s, further cut to at most maxBytes
// bytes on a line boundary where possible. The boolean reports whether
// anything was dropped.
func Tail(s string, maxLines, maxBytes int) (string, bool) {
	if s == "" {
		return "", false
	}
	truncated := false

	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
		truncated = true
	}
	out := strings.Join(lines, "\n")

	for len(out) > maxBytes {
		truncated = true
		i := strings.IndexByte(out, '\n')
		if i < 0 || len(out)-i-1 == 0 {
			// A single line longer than the budget: keep its tail.
			out = out[len(out)-maxBytes:]
			for len(out) > 0 && !utf8.RuneStart(out[0]) {
				out = out[1:]
			}
			break
		}
		out = out[i+1:]
	}
	return out, truncated
}
