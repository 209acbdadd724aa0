package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/planview/internal/tui/styles"
)

// StatusBar renders the bottom bar: context items on the left, key help on
// the right.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render joins left and right items with " • " and fills width. When both
// do not fit, the help items are dropped first.
func (s StatusBar) Render(width int, left, right []string) string {
	l := strings.Join(left, " • ")
	r := strings.Join(right, " • ")

	gap := width - lipgloss.Width(l) - lipgloss.Width(r)
	if r == "" || gap < 1 {
		return styles.StatusBarStyle.Width(width).MaxHeight(1).Render(l)
	}
	return styles.StatusBarStyle.Width(width).Render(l + strings.Repeat(" ", gap) + r)
}
