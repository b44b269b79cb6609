package markdown_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/cheat/markdown"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("text without fences or links is unchanged", func(t *testing.T) {
		t.Parallel()
		text, blocks, links := markdown.Extract("plain\ntext [not a link] (either)")
		assert.Equal(t, "plain\ntext [not a link] (either)", text)
		assert.Empty(t, blocks)
		assert.Empty(t, links)
	})

	t.Run("replaces fenced blocks with sequential placeholders", func(t *testing.T) {
		t.Parallel()
		src := "a\n```go\nfmt.Println()\n```\nb\n```\nx\ny\n```\nc"
		text, blocks, _ := markdown.Extract(src)
		assert.Equal(t, "a\nMULTILINE_BLOCK_0\nb\nMULTILINE_BLOCK_1\nc", text)
		assert.Equal(t, []string{"fmt.Println()", "x\ny"}, blocks)
	})

	t.Run("fence must start a line", func(t *testing.T) {
		t.Parallel()
		src := "inline ```\nnot a block\n```"
		text, blocks, _ := markdown.Extract(src)
		assert.Equal(t, src, text)
		assert.Empty(t, blocks)
	})

	t.Run("dangling fence stays literal", func(t *testing.T) {
		t.Parallel()
		src := "```\nnever closed"
		text, blocks, _ := markdown.Extract(src)
		assert.Equal(t, src, text)
		assert.Empty(t, blocks)
	})

	t.Run("odd fence count leaves the last one literal", func(t *testing.T) {
		t.Parallel()
		text, blocks, _ := markdown.Extract("```\none\n```\nmid\n```\ntail")
		assert.Equal(t, "MULTILINE_BLOCK_0\nmid\n```\ntail", text)
		assert.Equal(t, []string{"one"}, blocks)
	})

	t.Run("text after closing fence stays in place", func(t *testing.T) {
		t.Parallel()
		text, _, _ := markdown.Extract("```\ncode\n``` trailing")
		assert.Equal(t, "MULTILINE_BLOCK_0 trailing", text)
	})

	t.Run("empty block", func(t *testing.T) {
		t.Parallel()
		text, blocks, _ := markdown.Extract("```\n```")
		assert.Equal(t, "MULTILINE_BLOCK_0", text)
		assert.Equal(t, []string{""}, blocks)
	})

	t.Run("replaces links with hyperlinks in occurrence order", func(t *testing.T) {
		t.Parallel()
		text, _, links := markdown.Extract("[a](http://a) and [b](http://b)")
		assert.Equal(t, []string{"[a](http://a)", "[b](http://b)"}, links)
		want := ansi.SetHyperlink("http://a") + "a" + ansi.ResetHyperlink() +
			" and " +
			ansi.SetHyperlink("http://b") + "b" + ansi.ResetHyperlink()
		assert.Equal(t, want, text)
	})

	t.Run("passes malformed and empty targets through", func(t *testing.T) {
		t.Parallel()
		text, _, links := markdown.Extract("[x]() [y](not a url)")
		assert.Equal(t, []string{"[x]()", "[y](not a url)"}, links)
		assert.Contains(t, text, ansi.SetHyperlink("")+"x")
		assert.Contains(t, text, ansi.SetHyperlink("not a url")+"y")
	})

	t.Run("link does not cross a line break", func(t *testing.T) {
		t.Parallel()
		text, _, links := markdown.Extract("[a\nb](u)")
		assert.Equal(t, "[a\nb](u)", text)
		assert.Empty(t, links)
	})

	t.Run("links inside fenced blocks are not extracted", func(t *testing.T) {
		t.Parallel()
		text, blocks, links := markdown.Extract("```\n[in](http://in)\n```\n[out](http://out)")
		assert.Equal(t, []string{"[out](http://out)"}, links)
		assert.Equal(t, []string{"[in](http://in)"}, blocks)
		assert.NotContains(t, text, "http://in")
	})

	t.Run("link right after a closing fence is extracted", func(t *testing.T) {
		t.Parallel()
		text, _, links := markdown.Extract("```\ncode\n```[x](u)")
		assert.Equal(t, []string{"[x](u)"}, links)
		assert.Equal(t, "MULTILINE_BLOCK_0"+ansi.SetHyperlink("u")+"x"+ansi.ResetHyperlink(), text)
	})

	t.Run("display text is matched lazily", func(t *testing.T) {
		t.Parallel()
		_, _, links := markdown.Extract("[a] [b](c)")
		assert.Equal(t, []string{"[a] [b](c)"}, links)
	})
}
