package exec

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize makes plain-text command output safe to print: escape sequences
// are stripped, CRLF becomes LF, a lone CR overwrites the start of its line
// the way a terminal would, and control bytes other than tab and newline are
// dropped.
func Sanitize(s string) string {
	s = strings.ReplaceAll(ansi.Strip(s), "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = sanitizeLine(line)
	}
	return strings.Join(lines, "\n")
}

func sanitizeLine(line string) string {
	var buf []rune
	col := 0
	for _, r := range line {
		switch {
		case r == '\r':
			col = 0
			continue
		case r != '\t' && r <= 0x1F, r == 0x7F:
			continue
		}
		if col < len(buf) {
			buf[col] = r
		} else {
			buf = append(buf, r)
		}
		col++
	}
	return string(buf)
}
