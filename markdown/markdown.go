// Package markdown renders a restricted markdown subset to ANSI-styled
// terminal output.
//
// Fenced code blocks are cut out and replaced by MULTILINE_BLOCK_<n>
// placeholders, [text](url) links become OSC 8 hyperlinks, **bold** and
// `code` spans are styled per line, and every line is wrapped to the target
// width counting visible cells only. Lists, headers, tables and nested
// emphasis are passed through as plain text.
package markdown

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/cheat"
)

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 70

var _ cheat.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	width       int
	theme       cheat.Theme
	highlighter cheat.Highlighter
}

// WithWidth sets the wrap width in terminal cells. Values below 1 select
// DefaultWidth.
func WithWidth(width int) Option {
	return func(c *config) {
		c.width = width
	}
}

// WithTheme sets the colors used for bold and code spans.
func WithTheme(theme cheat.Theme) Option {
	return func(c *config) {
		c.theme = theme
	}
}

// WithHighlighter sets a highlighter invoked once per fenced block. Its output
// is reported in Result.Blocks; the rendered body keeps the placeholder.
func WithHighlighter(h cheat.Highlighter) Option {
	return func(c *config) {
		c.highlighter = h
	}
}

// Renderer is an immutable, concurrency-safe markdown renderer.
type Renderer struct {
	width       int
	highlighter cheat.Highlighter
	strong      string // SGR prefix for **bold** spans
	code        string // SGR prefix for `code` spans
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	cfg := config{width: DefaultWidth, theme: cheat.DefaultTheme()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.width < 1 {
		cfg.width = DefaultWidth
	}
	return &Renderer{
		width:       cfg.width,
		highlighter: cfg.highlighter,
		strong:      ansi.NewStyle().Bold().ForegroundColor(color(cfg.theme.Strong)).String(),
		code: ansi.NewStyle().
			BackgroundColor(color(cfg.theme.CodeBg)).
			ForegroundColor(color(cfg.theme.CodeFg)).
			String(),
	}
}

func color(index int) ansi.Color {
	if index < 0 || index > 255 {
		return nil
	}
	return ansi.IndexedColor(index)
}

// Render renders text with a Renderer built from opts.
func Render(text string, opts ...Option) (cheat.Result, error) {
	return New(opts...).Render(text)
}

// Render converts text to terminal output. It never fails on malformed
// markdown; the only error it returns is the highlighter's, unmodified.
func (r *Renderer) Render(text string) (cheat.Result, error) {
	ex := extract(text)

	blocks := make([]cheat.Block, len(ex.blocks))
	for i, content := range ex.blocks {
		blocks[i] = cheat.Block{Index: i, Content: content}
		if r.highlighter == nil {
			continue
		}
		out, err := r.highlighter.Highlight(content)
		if err != nil {
			return cheat.Result{}, err
		}
		blocks[i].Highlighted = out
	}

	return cheat.Result{
		ANSI:   r.assemble(ex.text),
		Links:  ex.links,
		Blocks: blocks,
	}, nil
}
