package cheat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Page is a fetched topic ready for display.
type Page struct {
	Adapter string
	Topic   string
	// Body is display-ready: rendered ANSI for markdown sources, the source
	// output otherwise.
	Body   string
	Links  []string
	Blocks []Block
}

// Service orchestrates a Fetcher, a Cache and a Renderer to serve pages.
type Service struct {
	fetcher  Fetcher
	cache    Cache
	renderer Renderer
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for cache and fetch diagnostics. If not set,
// logs are discarded.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service. cache may be nil, in which case nothing is
// cached.
func NewService(fetcher Fetcher, cache Cache, renderer Renderer, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher:  fetcher,
		cache:    cache,
		renderer: renderer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func pageKey(a Adapter, topic string, opts Options) string {
	return fmt.Sprintf("p:%s:%s:%s", a.Name, opts.Lang, topic)
}

// Page fetches topic from the adapter's source, consulting the cache first
// for adapters that need it. Markdown sources are rendered before returning.
func (s *Service) Page(ctx context.Context, a Adapter, topic string, opts Options) (Page, error) {
	if !a.Serves(topic) {
		return Page{}, fmt.Errorf("%s adapter: %q: %w", a.Name, topic, ErrNotFound)
	}

	raw, hit := s.cached(ctx, a, topic, opts)
	if !hit {
		start := time.Now()
		var err error
		raw, err = s.fetcher.Fetch(ctx, a, topic, opts)
		if err != nil {
			return Page{}, err
		}
		s.logger.Debug("fetched page",
			"adapter", a.Name, "topic", topic, "bytes", len(raw), "duration", time.Since(start))
		s.store(ctx, a, topic, opts, raw)
	}

	page := Page{Adapter: a.Name, Topic: topic, Body: raw}
	if a.Output != OutputMarkdown {
		return page, nil
	}
	res, err := s.renderer.Render(raw)
	if err != nil {
		return Page{}, err
	}
	page.Body = res.ANSI
	page.Links = res.Links
	page.Blocks = res.Blocks
	return page, nil
}

func (s *Service) cached(ctx context.Context, a Adapter, topic string, opts Options) (string, bool) {
	if !a.CacheNeeded || s.cache == nil {
		return "", false
	}
	raw, ok, err := s.cache.Get(ctx, pageKey(a, topic, opts))
	if err != nil {
		s.logger.Warn("cache read failed", "adapter", a.Name, "topic", topic, "error", err)
		return "", false
	}
	if ok {
		s.logger.Debug("cache hit", "adapter", a.Name, "topic", topic)
	}
	return raw, ok
}

func (s *Service) store(ctx context.Context, a Adapter, topic string, opts Options, raw string) {
	if !a.CacheNeeded || s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, pageKey(a, topic, opts), raw); err != nil {
		s.logger.Warn("cache write failed", "adapter", a.Name, "topic", topic, "error", err)
	}
}
