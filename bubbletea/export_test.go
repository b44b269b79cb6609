package bubbletea

// LinkLines exports linkLines for testing.
func LinkLines(m Model) []string {
	return m.linkLines()
}

// StatusLine exports statusLine for testing.
func StatusLine(m Model) string {
	return m.statusLine()
}
