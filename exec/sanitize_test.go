package exec_test

import (
	"testing"

	cheatexec "github.com/fwojciec/cheat/exec"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"empty", "", ""},
		{"SGR colors", "\x1b[31mhello\x1b[0m", "hello"},
		{"hyperlink", "\x1b]8;;http://x\x07site\x1b]8;;\x07", "site"},
		{"tabs and newlines kept", "a\tb\nc", "a\tb\nc"},
		{"control bytes dropped", "a\x01b\x02c\x07\x7f", "abc"},
		{"CRLF", "a\r\nb\r\n", "a\nb\n"},
		{"lone CR overwrites", "progress 50%\rprogress done", "progress done"},
		{"several CRs", "10%\r50%\rdone", "done"},
		{"shorter overwrite keeps tail", "abcdef\rxy", "xycdef"},
		{"CR scoped to its line", "one\ntwo\rT", "one\nTwo"},
		{"wide runes", "日本語\rx", "x本語"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cheatexec.Sanitize(tt.in))
		})
	}
}
