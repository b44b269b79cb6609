package markdown

// Extract exports extract for testing. It returns the rewritten text, the
// fenced block contents and the raw link matches.
func Extract(text string) (string, []string, []string) {
	ex := extract(text)
	return ex.text, ex.blocks, ex.links
}

// Colorize exports colorize for testing.
func Colorize(r *Renderer, line string) string {
	return r.colorize(line)
}
