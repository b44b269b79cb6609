package cheat

// Theme defines semantic color mappings using ANSI color indices (0-255).
// A negative index leaves the terminal default in place.
type Theme struct {
	Strong int // Foreground of **bold** spans
	CodeFg int // Foreground of `code` spans
	CodeBg int // Background of `code` spans
	Accent int // Pager title, link index numbers
	Muted  int // Status bar, link URLs
}

// DefaultTheme returns the default ANSI color mapping: white bold text and
// white-on-dark-gray inline code.
func DefaultTheme() Theme {
	return Theme{
		Strong: 15,
		CodeFg: 15,
		CodeBg: 8,
		Accent: 5,
		Muted:  8,
	}
}
