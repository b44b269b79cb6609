package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cheat"
)

// Styles maps a Theme to lipgloss styles for the pager chrome. Page bodies
// arrive styled already and are never restyled.
type Styles struct {
	Title     lipgloss.Style
	Status    lipgloss.Style
	LinkIndex lipgloss.Style
	LinkURL   lipgloss.Style
	Block     lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t cheat.Theme) Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		LinkIndex: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)),
		LinkURL:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)),
		Block:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Italic(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
