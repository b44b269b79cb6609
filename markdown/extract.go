package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlaceholderPrefix starts the token left in place of every fenced block.
const PlaceholderPrefix = "MULTILINE_BLOCK_"

// spanPattern finds fenced blocks and links in one left-to-right scan. A fence
// opens and closes at the start of a line and may span lines; a link never
// crosses a line break, so a link can only match outside every fence.
var spanPattern = regexp.MustCompile("(?ms)^```.*?^```" + `|\[([^\n]*?)\]\(([^\n]*?)\)`)

type extraction struct {
	text   string   // input with blocks and links substituted
	blocks []string // fence contents, extraction order
	links  []string // raw link matches, occurrence order
}

// extract removes fenced blocks and links from text in a single scan and a
// single rewrite.
func extract(text string) extraction {
	ex := extraction{links: []string{}}
	matches := spanPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		ex.text = text
		return ex
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		last = m[1]

		// Group 1 only participates in the link alternative.
		if m[2] < 0 {
			b.WriteString(PlaceholderPrefix)
			b.WriteString(strconv.Itoa(len(ex.blocks)))
			ex.blocks = append(ex.blocks, fenceContent(text[m[0]:m[1]]))
			continue
		}
		display, target := text[m[2]:m[3]], text[m[4]:m[5]]
		ex.links = append(ex.links, text[m[0]:m[1]])
		b.WriteString(hyperlink(target, display))
	}
	b.WriteString(text[last:])
	ex.text = b.String()
	return ex
}

// fenceContent returns the lines between the opening fence line and the
// closing fence.
func fenceContent(fence string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(fence, "```"), "```")
	_, body, ok := strings.Cut(inner, "\n")
	if !ok {
		return ""
	}
	return strings.TrimSuffix(body, "\n")
}

// hyperlink wraps text in an OSC 8 hyperlink to url. Terminals without OSC 8
// support drop the escapes and show text alone.
func hyperlink(url, text string) string {
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}
