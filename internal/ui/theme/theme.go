package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Concept = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Value = lipgloss.NewStyle().
		Foreground(Success)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Warn = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Bar renders a fixed-width probability bar for ranked output.
func Bar(p float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(p*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return lipgloss.NewStyle().Foreground(Secondary).Render(bar)
}
