package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pablasso/planview/internal/logging"
	"github.com/pablasso/planview/internal/plan"
	"github.com/pablasso/planview/internal/render"
	"github.com/pablasso/planview/internal/tui/components"
	"github.com/pablasso/planview/internal/tui/msgs"
	"github.com/pablasso/planview/internal/tui/styles"
	"github.com/pablasso/planview/internal/util"
)

// Minimum terminal dimensions for the viewer layout.
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 8
)

// Options configures the viewer.
type Options struct {
	// Path is the plan file. It is shown in the header and re-read on
	// reload. Empty for saved plans, which cannot be reloaded.
	Path string
	// Title overrides the header label. Defaults to the base name of Path.
	Title  string
	Source string
	Mode   render.Mode
	Watch  bool
	Render render.Options
	Logger *zap.Logger
}

// Model is the Bubble Tea model for the plan viewer.
type Model struct {
	opts   Options
	logger *zap.Logger

	source   string
	doc      plan.Document
	mode     render.Mode
	renderer *render.Renderer

	viewport  components.ScrollViewport
	statusBar components.StatusBar
	watcher   *fileWatcher

	width  int
	height int
	err    error
}

// Run starts the viewer.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer m.close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

// NewModel parses the source and, when requested, starts watching Path.
func NewModel(opts Options) (Model, error) {
	m := Model{
		opts:      opts,
		logger:    logging.OrNop(opts.Logger),
		source:    opts.Source,
		doc:       plan.Parse(opts.Source),
		mode:      opts.Mode,
		viewport:  components.NewScrollViewport(0, 0),
		statusBar: components.NewStatusBar(),
	}

	if opts.Watch {
		if opts.Path == "" {
			return Model{}, fmt.Errorf("watch requires a plan file path")
		}
		w, err := newFileWatcher(opts.Path)
		if err != nil {
			return Model{}, err
		}
		m.watcher = w
		m.logger.Debug("Watching plan file", zap.String("path", w.path))
	}

	return m, nil
}

func (m Model) close() {
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.logger.Warn("Failed to close watcher", zap.Error(err))
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.wait()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetSize(m.width, m.bodyHeight())
		m.rebuildRenderer()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "v":
			m.mode = m.mode.Toggle()
			m.viewport.GotoTop()
			m.refresh()
			return m, nil
		case "r":
			m.reload()
			return m, nil
		}

	case msgs.FileChangedMsg:
		m.logger.Debug("Plan file changed", zap.String("path", msg.Path))
		m.reload()
		return m, m.waitForChange()

	case msgs.WatchErrorMsg:
		m.logger.Warn("Watcher error", zap.Error(msg.Err))
		m.err = msg.Err
		return m, m.waitForChange()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// reload re-reads Path and re-parses it. Errors are shown in the status
// bar and the previous document stays on screen.
func (m *Model) reload() {
	if m.opts.Path == "" {
		return
	}
	data, err := os.ReadFile(m.opts.Path)
	if err != nil {
		m.logger.Warn("Failed to reload plan", zap.String("path", m.opts.Path), zap.Error(err))
		m.err = fmt.Errorf("reload failed: %w", err)
		return
	}
	m.err = nil
	m.source = string(data)
	m.doc = plan.Parse(m.source)
	m.refresh()
}

// rebuildRenderer creates a renderer for the current width unless a fixed
// width is configured and one already exists.
func (m *Model) rebuildRenderer() {
	opts := m.opts.Render
	if opts.Width > 0 && m.renderer != nil {
		return
	}
	if opts.Width <= 0 {
		opts.Width = m.viewport.ContentWidth() - 2
	}
	r, err := render.New(opts)
	if err != nil {
		m.err = err
		return
	}
	m.renderer = r
}

// refresh re-renders the document into the viewport.
func (m *Model) refresh() {
	if m.renderer == nil {
		return
	}
	out, err := m.renderer.Render(m.doc, m.source, m.mode)
	if err != nil {
		m.logger.Warn("Render failed", zap.Error(err))
		m.err = err
		out = m.source
	}
	m.viewport.SetContent(out)
}

func (m Model) bodyHeight() int {
	// header and status bar take one line each
	return max(m.height-2, 0)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatusBar(),
	)
}

func (m Model) renderHeader() string {
	label := m.opts.Title
	if label == "" {
		label = filepath.Base(m.opts.Path)
	}
	header := styles.HeaderStyle.Render("planview") + " " + styles.SubtleStyle.Render(util.Truncate(label, m.width-10))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(header)
}

func (m Model) renderStatusBar() string {
	effective := render.Effective(m.doc, m.mode)
	left := []string{effective.String()}
	if effective != m.mode {
		left[0] = styles.WarningStyle.Render("no structure found, showing raw")
	}
	left = append(left, fmt.Sprintf("%d phases, %d tasks, %d risks",
		len(m.doc.Phases), m.doc.TaskCount(), len(m.doc.Risks)))
	left = append(left, fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	if m.err != nil {
		left = append(left, styles.ErrorStyle.Render(m.err.Error()))
	}

	right := []string{"tab toggle"}
	if m.opts.Path != "" {
		right = append(right, "r reload")
	}
	right = append(right, "q quit")

	return m.statusBar.Render(m.width, left, right)
}

func (m Model) renderTerminalTooSmall() string {
	lines := []string{
		styles.ErrorStyle.Render("Terminal too small"),
		fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight),
		fmt.Sprintf("Current: %dx%d", m.width, m.height),
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		strings.Join(lines, "\n"))
}
