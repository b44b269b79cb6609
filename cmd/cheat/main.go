// Command cheat prints pages from command-backed content sources and renders
// markdown for the terminal.
//
// Usage:
//
//	cheat show rfc/2616
//	cheat show de/hallo+welt --lang en
//	cheat list rfc 'rfc/26*'
//	cheat render README.md --highlight
//
// Configuration is read from $XDG_CONFIG_HOME/cheat/config.yaml (or --config).
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "cheat: %v\n", err)
		os.Exit(1)
	}
}

// CLI is the command-line grammar. Global flags override the config file.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path." placeholder:"PATH"`
	Width   int    `short:"w" help:"Wrap width for rendered markdown."`
	Cache   string `help:"Cache file. A .json suffix selects the JSON cache, anything else SQLite." placeholder:"PATH"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Show     ShowCmd     `cmd:"" help:"Print a page."`
	Last     LastCmd     `cmd:"" help:"Print the last query recorded for a client."`
	List     ListCmd     `cmd:"" help:"List the pages an adapter advertises."`
	Adapters AdaptersCmd `cmd:"" help:"List the configured adapters."`
	Render   RenderCmd   `cmd:"" help:"Render markdown from a file or standard input."`
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("cheat"),
		kong.Description("Terminal cheat sheets and markdown rendering."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, &cli, stdin, stdout, stderr, getenv)
	if err != nil {
		return err
	}
	defer a.close()
	return kctx.Run(a)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
