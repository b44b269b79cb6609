// Package mock provides test doubles for cheat interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/cheat"
)

// Interface compliance checks.
var (
	_ cheat.Fetcher     = (*Fetcher)(nil)
	_ cheat.Highlighter = (*Highlighter)(nil)
	_ cheat.Renderer    = (*Renderer)(nil)
	_ cheat.Cache       = (*Cache)(nil)
)

// Fetcher is a test double for cheat.Fetcher.
// Set FetchFn before calling Fetch.
type Fetcher struct {
	FetchFn func(ctx context.Context, a cheat.Adapter, topic string, opts cheat.Options) (string, error)
}

// Fetch delegates to FetchFn.
func (f *Fetcher) Fetch(ctx context.Context, a cheat.Adapter, topic string, opts cheat.Options) (string, error) {
	return f.FetchFn(ctx, a, topic, opts)
}

// Highlighter is a test double for cheat.Highlighter.
// Set HighlightFn before calling Highlight.
type Highlighter struct {
	HighlightFn func(content string) (string, error)
}

// Highlight delegates to HighlightFn.
func (h *Highlighter) Highlight(content string) (string, error) {
	return h.HighlightFn(content)
}

// Renderer is a test double for cheat.Renderer.
// Set RenderFn before calling Render.
type Renderer struct {
	RenderFn func(text string) (cheat.Result, error)
}

// Render delegates to RenderFn.
func (r *Renderer) Render(text string) (cheat.Result, error) {
	return r.RenderFn(text)
}

// Cache is a test double for cheat.Cache.
// Set the function fields for the methods you need.
type Cache struct {
	GetFn func(ctx context.Context, key string) (string, bool, error)
	PutFn func(ctx context.Context, key, value string) error
}

// Get delegates to GetFn.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	return c.GetFn(ctx, key)
}

// Put delegates to PutFn.
func (c *Cache) Put(ctx context.Context, key, value string) error {
	return c.PutFn(ctx, key, value)
}
