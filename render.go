package cheat

// Result is the output of rendering one markdown text.
type Result struct {
	// ANSI is the assembled, display-ready string.
	ANSI string
	// Links holds every raw "[text](url)" match in occurrence order.
	Links []string
	// Blocks holds the fenced blocks removed from ANSI, in extraction order.
	Blocks []Block
}

// Block is a fenced code region cut out of the rendered body. The body carries
// the placeholder MULTILINE_BLOCK_<Index> where the block used to be.
type Block struct {
	Index   int
	Content string
	// Highlighted is the Highlighter output for Content, or empty when the
	// renderer had no highlighter.
	Highlighted string
}

// Highlighter styles the content of a single fenced block.
type Highlighter interface {
	Highlight(content string) (string, error)
}

// Renderer turns markdown text into terminal output. The only error a
// Renderer returns is one produced by its Highlighter.
type Renderer interface {
	Render(text string) (Result, error)
}
