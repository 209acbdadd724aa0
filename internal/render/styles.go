package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/planview/internal/plan"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	highColor      = lipgloss.Color("#AF5F5F") // Muted terracotta
	mediumColor    = lipgloss.Color("#D7AF5F") // Amber
	lowColor       = lipgloss.Color("#87AF87") // Muted sage

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	boldStyle = lipgloss.NewStyle().Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// levelStyle colors a rating cell by its classified level.
func levelStyle(l plan.Level) lipgloss.Style {
	switch l {
	case plan.LevelHigh:
		return tableCellStyle.Foreground(highColor).Bold(true)
	case plan.LevelMedium:
		return tableCellStyle.Foreground(mediumColor)
	case plan.LevelLow:
		return tableCellStyle.Foreground(lowColor)
	default:
		return tableCellStyle
	}
}
