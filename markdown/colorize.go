package markdown

import (
	"regexp"

	"github.com/charmbracelet/x/ansi"
)

var (
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)
	codePattern = regexp.MustCompile("`(.*?)`")
)

// colorize styles **bold** and then `code` spans of a single line. The code
// pass runs on the output of the bold pass, so backticks inside a bold span
// are still styled.
func (r *Renderer) colorize(line string) string {
	line = boldPattern.ReplaceAllString(line, r.strong+"${1}"+ansi.ResetStyle)
	return codePattern.ReplaceAllString(line, r.code+" ${1} "+ansi.ResetStyle)
}
