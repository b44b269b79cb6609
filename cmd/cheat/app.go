package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cheat"
	"github.com/fwojciec/cheat/adapter"
	"github.com/fwojciec/cheat/exec"
	cheatjson "github.com/fwojciec/cheat/json"
	"github.com/fwojciec/cheat/sqlite"
)

// app carries everything a command needs. Commands receive it through
// kong's Run bindings.
type app struct {
	ctx      context.Context
	cfg      Config
	registry *adapter.Registry
	logger   *slog.Logger
	stdin    io.Reader
	stdout   io.Writer

	cache  cheat.Cache
	closer func() error
}

func newApp(ctx context.Context, cli *CLI, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) (*app, error) {
	logger := newLogger(stderr, cli.Verbose)

	path, required := cli.Config, cli.Config != ""
	if path == "" {
		path = defaultConfigPath(getenv)
	}
	var cfg Config
	if path != "" {
		var err error
		if cfg, err = loadConfig(path, required, getenv); err != nil {
			return nil, err
		}
	}
	if cli.Width > 0 {
		cfg.Width = cli.Width
	}
	if cli.Cache != "" {
		cfg.Cache = cli.Cache
	}
	if cfg.Cache == "" {
		cfg.Cache = defaultCachePath(getenv)
	}

	reg, err := cfg.registry()
	if err != nil {
		return nil, fmt.Errorf("adapters: %w", err)
	}
	logger.Debug("configured", "config", path, "adapters", reg.Names(), "cache", cfg.Cache)

	return &app{
		ctx:      ctx,
		cfg:      cfg,
		registry: reg,
		logger:   logger,
		stdin:    stdin,
		stdout:   stdout,
	}, nil
}

// openCache opens the configured cache on first use.
func (a *app) openCache() (cheat.Cache, error) {
	if a.cache != nil {
		return a.cache, nil
	}
	if a.cfg.Cache == "" {
		return nil, fmt.Errorf("no cache path: %w", cheat.ErrValidation)
	}
	if strings.HasSuffix(a.cfg.Cache, ".json") {
		c, err := cheatjson.Open(a.cfg.Cache)
		if err != nil {
			return nil, err
		}
		a.cache = c
		return c, nil
	}
	if err := os.MkdirAll(filepath.Dir(a.cfg.Cache), 0o700); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	c, err := sqlite.Open(a.cfg.Cache)
	if err != nil {
		return nil, err
	}
	a.cache, a.closer = c, c.Close
	return c, nil
}

func (a *app) fetcher() *exec.Fetcher {
	return exec.NewFetcher(exec.WithTimeout(a.cfg.Timeout), exec.WithLogger(a.logger))
}

func (a *app) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer(); err != nil {
		a.logger.Warn("close cache", "error", err)
	}
}
