// Package chroma highlights extracted code blocks with the chroma syntax
// highlighter.
package chroma

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/cheat"
)

const (
	DefaultStyle     = "monokai"
	DefaultFormatter = "terminal256"
)

var _ cheat.Highlighter = (*Highlighter)(nil)

// Highlighter implements cheat.Highlighter. Unknown style and formatter names
// fall back to chroma's defaults; unknown languages fall back to plain text.
type Highlighter struct {
	language  string
	style     *chroma.Style
	formatter chroma.Formatter

	mu     sync.RWMutex
	lexers map[string]chroma.Lexer
}

type config struct {
	language  string
	style     string
	formatter string
}

// Option configures a Highlighter.
type Option func(*config)

// WithLanguage fixes the lexer by name, alias or file extension. Without it
// the lexer is guessed from each block's content.
func WithLanguage(name string) Option {
	return func(c *config) { c.language = name }
}

// WithStyle selects a chroma style by name.
func WithStyle(name string) Option {
	return func(c *config) { c.style = name }
}

// WithFormatter selects a chroma formatter by name, e.g. "terminal16m".
func WithFormatter(name string) Option {
	return func(c *config) { c.formatter = name }
}

// New creates a Highlighter.
func New(opts ...Option) *Highlighter {
	cfg := config{style: DefaultStyle, formatter: DefaultFormatter}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Highlighter{
		language:  cfg.language,
		style:     styles.Get(cfg.style),
		formatter: formatters.Get(cfg.formatter),
		lexers:    make(map[string]chroma.Lexer),
	}
}

// Highlight returns content with syntax highlighting applied.
func (h *Highlighter) Highlight(content string) (string, error) {
	lexer := h.lexer(content)
	it, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", fmt.Errorf("highlight %s: %w", lexer.Config().Name, err)
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return "", fmt.Errorf("highlight %s: %w", lexer.Config().Name, err)
	}
	return b.String(), nil
}

func (h *Highlighter) lexer(content string) chroma.Lexer {
	key := h.language
	if key != "" {
		if l := h.cached(key); l != nil {
			return l
		}
		return h.store(key, find(key))
	}
	l := lexers.Analyse(content)
	if l == nil {
		l = lexers.Fallback
	}
	key = l.Config().Name
	if c := h.cached(key); c != nil {
		return c
	}
	return h.store(key, l)
}

func find(language string) chroma.Lexer {
	if l := lexers.Get(language); l != nil {
		return l
	}
	return lexers.Fallback
}

func (h *Highlighter) cached(key string) chroma.Lexer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lexers[key]
}

func (h *Highlighter) store(key string, l chroma.Lexer) chroma.Lexer {
	l = chroma.Coalesce(l)
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.lexers[key]; ok {
		return existing
	}
	h.lexers[key] = l
	return l
}
