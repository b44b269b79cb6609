package cheat_test

import (
	"testing"

	"github.com/fwojciec/cheat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Validate(t *testing.T) {
	t.Parallel()

	valid := cheat.Adapter{Name: "rfc", Command: []string{"rfc.sh", "{topic}"}}

	t.Run("accepts a minimal adapter", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name   string
		mutate func(a *cheat.Adapter)
	}{
		{"missing name", func(a *cheat.Adapter) { a.Name = "" }},
		{"missing command", func(a *cheat.Adapter) { a.Command = nil }},
		{"empty executable", func(a *cheat.Adapter) { a.Command = []string{""} }},
		{"unknown output kind", func(a *cheat.Adapter) { a.Output = cheat.OutputKind(42) }},
		{"bad pattern", func(a *cheat.Adapter) { a.Pattern = "rfc/[0-9" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := valid
			a.Command = append([]string(nil), valid.Command...)
			tt.mutate(&a)
			assert.ErrorIs(t, a.Validate(), cheat.ErrValidation)
		})
	}
}

func TestAdapter_Serves(t *testing.T) {
	t.Parallel()

	t.Run("pattern decides", func(t *testing.T) {
		t.Parallel()
		a := cheat.Adapter{Pattern: `^rfc/[0-9]+$`, Pages: []string{"other"}}
		assert.True(t, a.Serves("rfc/2616"))
		assert.False(t, a.Serves("rfc/abc"))
		assert.False(t, a.Serves("other"))
	})

	t.Run("pages decide without pattern", func(t *testing.T) {
		t.Parallel()
		a := cheat.Adapter{Pages: []string{":fosdem"}}
		assert.True(t, a.Serves(":fosdem"))
		assert.False(t, a.Serves(":other"))
	})

	t.Run("serves everything without pattern or pages", func(t *testing.T) {
		t.Parallel()
		assert.True(t, cheat.Adapter{}.Serves("de/anything"))
	})

	t.Run("invalid pattern serves nothing", func(t *testing.T) {
		t.Parallel()
		assert.False(t, cheat.Adapter{Pattern: "("}.Serves("x"))
	})

	t.Run("patterns are compiled once", func(t *testing.T) {
		t.Parallel()
		a := cheat.Adapter{Pattern: `^man/[a-z]+$`}
		assert.True(t, a.Serves("man/ls"))
		first, err := cheat.CompilePattern(a.Pattern)
		require.NoError(t, err)
		assert.True(t, a.Serves("man/cp"))
		second, err := cheat.CompilePattern(a.Pattern)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})
}

func TestOutputKind(t *testing.T) {
	t.Parallel()

	for _, k := range []cheat.OutputKind{cheat.OutputText, cheat.OutputANSI, cheat.OutputMarkdown} {
		got, ok := cheat.ParseOutputKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := cheat.ParseOutputKind("html")
	assert.False(t, ok)
	assert.Equal(t, "unknown", cheat.OutputKind(9).String())
}
