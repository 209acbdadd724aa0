package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScrollViewport wraps bubbles/viewport.Model with a 1-column scrollbar.
// Replacing the content keeps the scroll position where possible so a
// reloaded document does not jump back to the top.
type ScrollViewport struct {
	viewport viewport.Model
	lines    int // content line count
	width    int // total width including scrollbar
	height   int
}

// NewScrollViewport creates a viewport. The width includes 1 column for the
// scrollbar.
func NewScrollViewport(width, height int) ScrollViewport {
	vp := viewport.New(max(width-1, 0), height)
	vp.SetContent("")
	return ScrollViewport{viewport: vp, width: width, height: height}
}

// SetSize updates the viewport dimensions. Width includes the scrollbar column.
func (s *ScrollViewport) SetSize(width, height int) {
	if s.width == width && s.height == height {
		return
	}
	s.width = width
	s.height = height
	s.viewport.Width = max(width-1, 0)
	s.viewport.Height = height
	// Clamp y-offset after resize.
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// SetContent replaces the content, preserving the current offset clamped
// to the new length.
func (s *ScrollViewport) SetContent(content string) {
	content = strings.TrimRight(content, "\n")
	s.lines = strings.Count(content, "\n") + 1
	offset := s.viewport.YOffset
	s.viewport.SetContent(content)
	s.viewport.SetYOffset(offset)
}

// GotoTop scrolls to the first line.
func (s *ScrollViewport) GotoTop() {
	s.viewport.GotoTop()
}

// Update handles scrolling keys and mouse wheel events.
func (s ScrollViewport) Update(msg tea.Msg) (ScrollViewport, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "home", "g":
			s.viewport.GotoTop()
			return s, nil
		case "end", "G":
			s.viewport.GotoBottom()
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View renders the content with the scrollbar on the right.
func (s ScrollViewport) View() string {
	content := lipgloss.NewStyle().
		Width(s.ContentWidth()).
		Height(s.height).
		MaxHeight(s.height).
		Render(s.viewport.View())
	bar := RenderScrollbar(s.height, s.lines, s.viewport.YOffset)
	return lipgloss.JoinHorizontal(lipgloss.Top, content, bar)
}

// YOffset returns the current scroll offset.
func (s ScrollViewport) YOffset() int {
	return s.viewport.YOffset
}

// ScrollPercent returns the scroll position between 0 and 1.
func (s ScrollViewport) ScrollPercent() float64 {
	return s.viewport.ScrollPercent()
}

// ContentWidth returns the width available for content (total width minus scrollbar).
func (s ScrollViewport) ContentWidth() int {
	return max(s.width-1, 0)
}
