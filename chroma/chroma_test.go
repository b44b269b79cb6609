package chroma_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/cheat/chroma"
	"github.com/fwojciec/cheat/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goSource = "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"

func TestHighlighter(t *testing.T) {
	t.Parallel()

	t.Run("styles code with the named language", func(t *testing.T) {
		t.Parallel()
		h := chroma.New(chroma.WithLanguage("go"))
		out, err := h.Highlight(goSource)
		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[")
		assert.Equal(t, goSource, ansi.Strip(out))
	})

	t.Run("accepts a file extension as language", func(t *testing.T) {
		t.Parallel()
		h := chroma.New(chroma.WithLanguage("py"))
		out, err := h.Highlight("def f():\n    return 1\n")
		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[")
	})

	t.Run("noop formatter returns content unchanged", func(t *testing.T) {
		t.Parallel()
		h := chroma.New(chroma.WithLanguage("go"), chroma.WithFormatter("noop"))
		out, err := h.Highlight(goSource)
		require.NoError(t, err)
		assert.Equal(t, goSource, out)
	})

	t.Run("unknown language falls back to plain text", func(t *testing.T) {
		t.Parallel()
		h := chroma.New(chroma.WithLanguage("zzqqxx"), chroma.WithFormatter("noop"))
		out, err := h.Highlight("just words")
		require.NoError(t, err)
		assert.Equal(t, "just words", out)
	})

	t.Run("guesses the language without one", func(t *testing.T) {
		t.Parallel()
		h := chroma.New(chroma.WithStyle("no-such-style"))
		out, err := h.Highlight("#!/bin/sh\necho hi\n")
		require.NoError(t, err)
		assert.Equal(t, "#!/bin/sh\necho hi\n", ansi.Strip(out))
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		h := chroma.New()
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := h.Highlight(goSource)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})

	t.Run("fills rendered blocks", func(t *testing.T) {
		t.Parallel()
		res, err := markdown.Render("intro\n\n```go\n"+goSource+"```\n", markdown.WithHighlighter(chroma.New(chroma.WithLanguage("go"))))
		require.NoError(t, err)
		require.Len(t, res.Blocks, 1)
		// Lexers may append a final newline to the block.
		assert.Equal(t, res.Blocks[0].Content, strings.TrimSuffix(ansi.Strip(res.Blocks[0].Highlighted), "\n"))
		assert.Contains(t, res.ANSI, markdown.PlaceholderPrefix+"0")
	})
}
