package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/cheat"
	bt "github.com/fwojciec/cheat/bubbletea"
	"github.com/fwojciec/cheat/markdown"
)

// ShowCmd prints a page.
type ShowCmd struct {
	Topic     string `arg:"" help:"Topic to show, e.g. rfc/2616."`
	Adapter   string `short:"a" help:"Adapter to use. Found from the topic when omitted."`
	Lang      string `short:"l" help:"Target language for translations."`
	Client    string `help:"Record the query as this client's last query."`
	Pager     bool   `short:"p" help:"Show the page in an interactive pager."`
	Highlight bool   `help:"Highlight code blocks of markdown pages."`
}

func (c *ShowCmd) Run(a *app) error {
	ad, err := c.resolve(a)
	if err != nil {
		return err
	}
	var cache cheat.Cache
	if ad.CacheNeeded || c.Client != "" {
		if cache, err = a.openCache(); err != nil {
			return err
		}
	}
	svc := cheat.NewService(a.fetcher(), cache, a.cfg.renderer(c.Highlight), cheat.WithLogger(a.logger))
	page, err := svc.Page(a.ctx, ad, c.Topic, cheat.Options{Lang: c.Lang})
	if err != nil {
		return err
	}
	if c.Client != "" {
		if err := cheat.SaveQuery(a.ctx, cache, c.Client, c.Topic); err != nil {
			a.logger.Warn("record query", "client", c.Client, "error", err)
		}
	}
	if c.Pager {
		return bt.Run(a.ctx, bt.New(page, a.cfg.theme()))
	}
	var blocks []cheat.Block
	if c.Highlight {
		blocks = page.Blocks
	}
	return writePage(a.stdout, page.Body, page.Links, blocks)
}

func (c *ShowCmd) resolve(a *app) (cheat.Adapter, error) {
	if c.Adapter != "" {
		return a.registry.Lookup(c.Adapter)
	}
	return a.registry.Find(c.Topic)
}

// LastCmd prints the last query recorded for a client.
type LastCmd struct {
	Client string `required:"" help:"Client ID."`
}

func (c *LastCmd) Run(a *app) error {
	cache, err := a.openCache()
	if err != nil {
		return err
	}
	q, ok, err := cheat.LastQuery(a.ctx, cache, c.Client)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no query recorded for client %q: %w", c.Client, cheat.ErrNotFound)
	}
	_, err = fmt.Fprintln(a.stdout, q)
	return err
}

// ListCmd prints the pages an adapter advertises.
type ListCmd struct {
	Adapter string `arg:"" help:"Adapter name."`
	Glob    string `arg:"" optional:"" help:"Only list pages matching this pattern, e.g. 'rfc/26*'."`
}

func (c *ListCmd) Run(a *app) error {
	ad, err := a.registry.Lookup(c.Adapter)
	if err != nil {
		return err
	}
	if c.Glob != "" && !doublestar.ValidatePattern(c.Glob) {
		return fmt.Errorf("invalid glob pattern %q: %w", c.Glob, cheat.ErrValidation)
	}
	for _, p := range ad.Pages {
		if c.Glob != "" {
			if ok, _ := doublestar.Match(c.Glob, p); !ok {
				continue
			}
		}
		if _, err := fmt.Fprintln(a.stdout, p); err != nil {
			return err
		}
	}
	return nil
}

// AdaptersCmd prints the configured adapters.
type AdaptersCmd struct{}

func (c *AdaptersCmd) Run(a *app) error {
	for _, name := range a.registry.Names() {
		ad, err := a.registry.Lookup(name)
		if err != nil {
			return err
		}
		cached := ""
		if ad.CacheNeeded {
			cached = "\tcached"
		}
		if _, err := fmt.Fprintf(a.stdout, "%s\t%s%s\n", ad.Name, ad.Output, cached); err != nil {
			return err
		}
	}
	return nil
}

// RenderCmd renders markdown from a file or standard input.
type RenderCmd struct {
	File      string `arg:"" optional:"" help:"Markdown file. Reads standard input when omitted or '-'."`
	Highlight bool   `help:"Print highlighted code blocks after the body."`
}

func (c *RenderCmd) Run(a *app) error {
	var (
		data []byte
		err  error
	)
	if c.File == "" || c.File == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		return fmt.Errorf("read markdown: %w", err)
	}
	res, err := a.cfg.renderer(c.Highlight).Render(string(data))
	if err != nil {
		return err
	}
	var blocks []cheat.Block
	if c.Highlight {
		blocks = res.Blocks
	}
	return writePage(a.stdout, res.ANSI, res.Links, blocks)
}

// writePage prints a body followed by a numbered link index and any code
// blocks, each labelled with the placeholder it replaced in the body.
func writePage(w io.Writer, body string, links []string, blocks []cheat.Block) error {
	ew := &errWriter{w: w}
	fmt.Fprint(ew, body)
	for i, l := range links {
		fmt.Fprintf(ew, "[%d] %s\n", i+1, l)
	}
	for _, b := range blocks {
		code := b.Highlighted
		if code == "" {
			code = b.Content
		}
		fmt.Fprintf(ew, "\n%s%d:\n%s\n", markdown.PlaceholderPrefix, b.Index, strings.TrimRight(code, "\n"))
	}
	if ew.err != nil {
		return fmt.Errorf("write output: %w", ew.err)
	}
	return nil
}

// errWriter remembers the first write error so a sequence of prints can be
// checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
