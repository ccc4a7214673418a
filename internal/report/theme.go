package report

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#22C55E")
	colorRed    = lipgloss.Color("#EF4444")
	colorYellow = lipgloss.Color("#EAB308")
	colorDim    = lipgloss.Color("#6B7280")
	colorPurple = lipgloss.Color("#A855F7")

	okStyle      = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	headingStyle = lipgloss.NewStyle().Foreground(colorPurple).Bold(true)
)
