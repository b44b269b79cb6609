// Package bubbletea provides a Bubble Tea pager for rendered pages.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the pager program. It blocks until the user quits or
// the context is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}
