package markdown

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var paragraphBreak = regexp.MustCompile(`\n\n+`)

// assemble splits text into paragraphs, styles and wraps every line, and
// joins the paragraphs back in order, each followed by one blank line.
func (r *Renderer) assemble(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for _, p := range paragraphBreak.Split(text, -1) {
		if p == "" {
			continue
		}
		lines := strings.Split(strings.TrimSuffix(p, "\n"), "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(r.wrap(r.colorize(strings.TrimSuffix(line, "\r"))))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// wrap breaks a styled line at word boundaries so that no output line is
// wider than the target width. Escape sequences take no columns; words longer
// than the width are split.
func (r *Renderer) wrap(line string) string {
	return ansi.Wrap(line, r.width, "")
}
