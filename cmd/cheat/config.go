package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/cheat"
	"github.com/fwojciec/cheat/adapter"
	"github.com/fwojciec/cheat/chroma"
	"github.com/fwojciec/cheat/markdown"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file. Command-line flags override it.
type Config struct {
	Width    int             `yaml:"width"`
	BaseDir  string          `yaml:"base_dir"`
	Cache    string          `yaml:"cache"`
	Timeout  time.Duration   `yaml:"timeout"`
	Style    string          `yaml:"style"`
	Theme    ThemeConfig     `yaml:"theme"`
	Adapters []AdapterConfig `yaml:"adapters"`
}

// ThemeConfig overrides individual colors of cheat.DefaultTheme.
type ThemeConfig struct {
	Strong *int `yaml:"strong"`
	CodeFg *int `yaml:"code_fg"`
	CodeBg *int `yaml:"code_bg"`
	Accent *int `yaml:"accent"`
	Muted  *int `yaml:"muted"`
}

// AdapterConfig declares an extra command-backed adapter. An adapter with
// the name of a built-in replaces it.
type AdapterConfig struct {
	Name    string   `yaml:"name"`
	Output  string   `yaml:"output"`
	Cache   bool     `yaml:"cache"`
	Command []string `yaml:"command"`
	Prefix  string   `yaml:"prefix"`
	Pattern string   `yaml:"pattern"`
	Pages   []string `yaml:"pages"`
}

// loadConfig reads the configuration at path. A missing file is tolerated
// unless required is set. $VAR references in the file are expanded with getenv.
func loadConfig(path string, required bool, getenv func(string) string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !required:
		return cfg, nil
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.Expand(string(data), getenv)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) theme() cheat.Theme {
	t := cheat.DefaultTheme()
	for _, o := range []struct {
		src *int
		dst *int
	}{
		{c.Theme.Strong, &t.Strong},
		{c.Theme.CodeFg, &t.CodeFg},
		{c.Theme.CodeBg, &t.CodeBg},
		{c.Theme.Accent, &t.Accent},
		{c.Theme.Muted, &t.Muted},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	return t
}

func (c Config) registry() (*adapter.Registry, error) {
	adapters := adapter.Builtins(c.BaseDir)
	for _, ac := range c.Adapters {
		a, err := ac.adapter()
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter.Resolve(a, c.BaseDir))
	}
	return adapter.NewRegistry(adapters...)
}

func (ac AdapterConfig) adapter() (cheat.Adapter, error) {
	output := cheat.OutputText
	if ac.Output != "" {
		var ok bool
		if output, ok = cheat.ParseOutputKind(ac.Output); !ok {
			return cheat.Adapter{}, fmt.Errorf("adapter %q: unknown output %q: %w", ac.Name, ac.Output, cheat.ErrValidation)
		}
	}
	return cheat.Adapter{
		Name:        ac.Name,
		Output:      output,
		CacheNeeded: ac.Cache,
		Command:     ac.Command,
		Prefix:      ac.Prefix,
		Pattern:     ac.Pattern,
		Pages:       ac.Pages,
	}, nil
}

func (c Config) renderer(highlight bool) *markdown.Renderer {
	opts := []markdown.Option{
		markdown.WithWidth(c.Width),
		markdown.WithTheme(c.theme()),
	}
	if highlight {
		var hopts []chroma.Option
		if c.Style != "" {
			hopts = append(hopts, chroma.WithStyle(c.Style))
		}
		opts = append(opts, markdown.WithHighlighter(chroma.New(hopts...)))
	}
	return markdown.New(opts...)
}

func defaultConfigPath(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cheat", "config.yaml")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "cheat", "config.yaml")
	}
	return ""
}

func defaultCachePath(getenv func(string) string) string {
	if dir := getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "cheat", "cache.db")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".cache", "cheat", "cache.db")
	}
	return ""
}
