package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/cheat"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// The link index footer takes at most one terminal row in linkShare.
const linkShare = 3

// Model is the Bubble Tea model for the pager.
type Model struct {
	// Viewport is the scrollable page body. Exported for test access.
	Viewport viewport.Model

	page      cheat.Page
	styles    Styles
	showLinks bool
	width     int
	height    int
	ready     bool
}

// New creates a pager for page.
func New(page cheat.Page, theme cheat.Theme) Model {
	return Model{
		page:   page,
		styles: NewStyles(theme),
	}
}

// ShowingLinks reports whether the link index footer is visible.
func (m Model) ShowingLinks() bool { return m.showLinks }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "l":
			if len(m.page.Links) > 0 {
				m.showLinks = !m.showLinks
				m = m.layout()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	for _, line := range m.linkLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) layout() Model {
	h := m.height - 1 - len(m.linkLines())
	if h < 1 {
		h = 1
	}
	if !m.ready {
		m.Viewport = viewport.New(m.width, h)
		m.Viewport.SetContent(m.content())
		m.ready = true
		return m
	}
	m.Viewport.Width = m.width
	m.Viewport.Height = h
	return m
}

func (m Model) content() string {
	var b strings.Builder
	b.WriteString(m.page.Body)
	for _, blk := range m.page.Blocks {
		fmt.Fprintf(&b, "%s\n", m.styles.Block.Render(fmt.Sprintf("[block %d]", blk.Index)))
		code := blk.Highlighted
		if code == "" {
			code = blk.Content
		}
		b.WriteString(strings.TrimRight(code, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}

// linkLines returns the footer rows of the link index, each truncated to
// the terminal width.
func (m Model) linkLines() []string {
	if !m.showLinks || len(m.page.Links) == 0 {
		return nil
	}
	rows := len(m.page.Links)
	if limit := m.height / linkShare; rows > limit {
		rows = max(limit, 1)
	}
	lines := make([]string, 0, rows)
	for i, link := range m.page.Links[:rows] {
		num := fmt.Sprintf("%d. ", i+1)
		rest := runewidth.Truncate(link, max(m.width-runewidth.StringWidth(num), 0), "…")
		lines = append(lines, m.styles.LinkIndex.Render(num)+m.styles.LinkURL.Render(rest))
	}
	return lines
}

func (m Model) statusLine() string {
	title := m.page.Topic
	if m.page.Adapter != "" {
		title = m.page.Adapter + "/" + title
	}
	info := fmt.Sprintf(" %3.0f%%", m.Viewport.ScrollPercent()*100)
	if n := len(m.page.Links); n > 0 {
		info += fmt.Sprintf("  %d links (l)", n)
	}
	info += "  q quit"
	title = runewidth.Truncate(title, max(m.width-runewidth.StringWidth(info), 0), "…")
	return m.styles.Title.Render(title) + m.styles.Status.Render(info)
}
