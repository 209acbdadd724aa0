// Package render turns a plan.Document into terminal output: a structured
// view built with lipgloss, or the original markdown rendered by glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pablasso/planview/internal/plan"
)

// DefaultWidth is used when no width is configured.
const DefaultWidth = 100

const minWidth = 20

var glamourStyles = map[string]bool{
	"auto":        true,
	"ascii":       true,
	"dark":        true,
	"dracula":     true,
	"light":       true,
	"notty":       true,
	"pink":        true,
	"tokyo-night": true,
}

// ValidStyle reports whether name is a known glamour style.
func ValidStyle(name string) bool {
	return glamourStyles[name]
}

// Options configures a Renderer.
type Options struct {
	Width int
	Style string
	// MinSeverity hides risks whose severity is below it. LevelUnknown
	// shows every risk.
	MinSeverity plan.Level
}

// Renderer renders documents at a fixed width.
type Renderer struct {
	opts Options
	md   *glamour.TermRenderer
}

// New creates a Renderer. A zero width uses DefaultWidth and an empty
// style uses "auto".
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Width < minWidth {
		opts.Width = minWidth
	}
	if opts.Style == "" {
		opts.Style = "auto"
	}
	if !ValidStyle(opts.Style) {
		return nil, fmt.Errorf("unknown style %q", opts.Style)
	}

	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "auto" {
		styleOpt = glamour.WithStylePath(opts.Style)
	}

	md, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(opts.Width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return &Renderer{opts: opts, md: md}, nil
}

// Width returns the wrap width in use.
func (r *Renderer) Width() int {
	return r.opts.Width
}

// Render shows doc in the requested mode, falling back to the raw source
// when nothing structured was extracted.
func (r *Renderer) Render(doc plan.Document, source string, mode Mode) (string, error) {
	if Effective(doc, mode) == ModeRaw {
		return r.Raw(source)
	}
	return r.Structured(doc), nil
}

// Raw renders the markdown source.
func (r *Renderer) Raw(source string) (string, error) {
	out, err := r.md.Render(source)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// Structured renders the extracted document. Sections with no content are
// omitted.
func (r *Renderer) Structured(doc plan.Document) string {
	var blocks []string

	if doc.Title != "" {
		blocks = append(blocks, titleStyle.Render(doc.Title))
	}
	if doc.Summary != "" {
		blocks = append(blocks, r.prose("Summary", doc.Summary))
	}
	if len(doc.Phases) > 0 {
		blocks = append(blocks, r.phases(doc.Phases))
	}
	if len(doc.Resources) > 0 {
		blocks = append(blocks, r.resources(doc.Resources))
	}
	if len(doc.Risks) > 0 {
		blocks = append(blocks, r.risks(doc.Risks))
	}
	if len(doc.Metrics) > 0 {
		blocks = append(blocks, headingStyle.Render("Success Metrics")+"\n"+r.bullets(doc.Metrics, "✓"))
	}
	if doc.Conclusion != "" {
		blocks = append(blocks, r.prose("Conclusion", doc.Conclusion))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func (r *Renderer) prose(heading, text string) string {
	body := lipgloss.NewStyle().Width(r.opts.Width).Render(text)
	return headingStyle.Render(heading) + "\n" + body
}

func (r *Renderer) bullets(items []string, marker string) string {
	wrap := lipgloss.NewStyle().Width(r.opts.Width - 2)
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, marker+" ", wrap.Render(item))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) phases(phases []plan.Phase) string {
	cards := make([]string, len(phases))
	for i, p := range phases {
		var b strings.Builder
		b.WriteString(boldStyle.Render(fmt.Sprintf("%d. %s", i+1, p.Title)))
		if p.Weeks != "" {
			b.WriteString("  " + subtleStyle.Render(p.Weeks))
		}
		if len(p.Tasks) > 0 {
			b.WriteString("\n" + r.bullets(p.Tasks, "•"))
		} else {
			b.WriteString("\n" + subtleStyle.Render("No tasks listed"))
		}
		cards[i] = cardStyle.Width(r.opts.Width - 2).Render(b.String())
	}
	return headingStyle.Render("Implementation Phases") + "\n" + strings.Join(cards, "\n")
}

func (r *Renderer) resources(resources []plan.ResourceCategory) string {
	parts := make([]string, len(resources))
	for i, rc := range resources {
		parts[i] = boldStyle.Render(rc.Category)
		if len(rc.Details) > 0 {
			parts[i] += "\n" + r.bullets(rc.Details, "-")
		}
	}
	return headingStyle.Render("Resources") + "\n" + strings.Join(parts, "\n")
}

// risks renders the risk table. Impact and probability cells are colored
// by ClassifyRating.
func (r *Renderer) risks(risks []plan.RiskRow) string {
	var rows [][]string
	hidden := 0
	for _, risk := range risks {
		if r.opts.MinSeverity != plan.LevelUnknown && risk.Severity() < r.opts.MinSeverity {
			hidden++
			continue
		}
		rows = append(rows, []string{risk.Risk, risk.Impact, risk.Probability, risk.Mitigation})
	}

	out := headingStyle.Render("Risks")
	if len(rows) > 0 {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(subtleStyle).
			Width(r.opts.Width).
			Headers("Risk", "Impact", "Probability", "Mitigation").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tableHeaderStyle
				}
				if row < 0 || row >= len(rows) {
					return tableCellStyle
				}
				if col == 1 || col == 2 {
					return levelStyle(plan.ClassifyRating(rows[row][col]))
				}
				return tableCellStyle
			})
		out += "\n" + t.String()
	}
	if hidden > 0 {
		out += "\n" + subtleStyle.Render(fmt.Sprintf("%d risk(s) below %s hidden", hidden, r.opts.MinSeverity))
	}
	return out
}
