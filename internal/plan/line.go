package plan

import (
	"regexp"
	"strings"
)

// LineKind is the syntactic category of a single plan line.
type LineKind int

const (
	// KindIgnored is a non-empty line that carries nothing in the active section.
	KindIgnored LineKind = iota
	KindBlank
	KindTitle
	KindHeading
	KindBoldPhaseHeader
	KindBoldResourceHeader
	KindTaskItem
	KindDetailItem
	KindMetricItem
	KindTableSeparator
	KindTableRow
	KindFreeText
)

func (k LineKind) String() string {
	switch k {
	case KindIgnored:
		return "ignored"
	case KindBlank:
		return "blank"
	case KindTitle:
		return "title"
	case KindHeading:
		return "heading"
	case KindBoldPhaseHeader:
		return "phase-header"
	case KindBoldResourceHeader:
		return "resource-header"
	case KindTaskItem:
		return "task"
	case KindDetailItem:
		return "detail"
	case KindMetricItem:
		return "metric"
	case KindTableSeparator:
		return "table-separator"
	case KindTableRow:
		return "table-row"
	case KindFreeText:
		return "text"
	default:
		return "unknown"
	}
}

// Line is a classified source line.
type Line struct {
	Kind LineKind
	Raw  string
	// Text is the payload: title, lower-cased heading key, phase title,
	// resource category, task, detail, metric or prose.
	Text  string
	Weeks string
	Cells []string
}

var (
	boldSpanRe    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	phaseHeaderRe = regexp.MustCompile(`(?i)\*\*(.+?)\*\*\s*\((weeks?\b[^)]*)\)`)
	taskRe        = regexp.MustCompile(`\*\*(.*?)\*\*(.*)`)
	dashRunRe     = regexp.MustCompile(`-{3,}`)
)

// Classify categorizes raw without look-ahead. Lines that depend on context
// (list items, bold lines, table lines, prose) are resolved against section.
func Classify(raw string, section Section) Line {
	raw = strings.TrimRight(raw, "\r")
	trimmed := strings.TrimSpace(raw)
	line := Line{Kind: KindIgnored, Raw: raw}

	switch {
	case trimmed == "":
		line.Kind = KindBlank
		return line
	case strings.HasPrefix(trimmed, "# "):
		line.Kind = KindTitle
		line.Text = strings.TrimSpace(trimmed[2:])
		return line
	case strings.HasPrefix(trimmed, "## "):
		line.Kind = KindHeading
		line.Text = strings.ToLower(strings.TrimSpace(trimmed[3:]))
		return line
	}

	switch section {
	case SectionSummary, SectionConclusion:
		if !strings.HasPrefix(trimmed, "#") {
			line.Kind = KindFreeText
			line.Text = trimmed
		}

	case SectionRisks:
		if !strings.Contains(trimmed, "|") {
			break
		}
		line.Cells = splitCells(trimmed)
		if dashRunRe.MatchString(trimmed) {
			line.Kind = KindTableSeparator
		} else {
			line.Kind = KindTableRow
		}

	case SectionPhases:
		if !strings.Contains(trimmed, "**") {
			break
		}
		if m := phaseHeaderRe.FindStringSubmatch(trimmed); m != nil {
			line.Kind = KindBoldPhaseHeader
			line.Text = strings.TrimSpace(m[1])
			line.Weeks = strings.TrimSpace(m[2])
			break
		}
		if strings.HasPrefix(trimmed, "- **") {
			if m := taskRe.FindStringSubmatch(trimmed); m != nil {
				line.Kind = KindTaskItem
				line.Text = strings.TrimSpace(m[1] + m[2])
			}
		}

	case SectionResources:
		if strings.HasPrefix(trimmed, "-") {
			line.Kind = KindDetailItem
			line.Text = listItemText(trimmed)
			break
		}
		if m := boldSpanRe.FindStringSubmatch(trimmed); m != nil {
			line.Kind = KindBoldResourceHeader
			line.Text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), ":"))
		}

	case SectionMetrics:
		if strings.HasPrefix(trimmed, "-") {
			line.Kind = KindMetricItem
			line.Text = listItemText(trimmed)
		}
	}

	return line
}

// listItemText strips the leading "-" marker of a trimmed list item.
func listItemText(trimmed string) string {
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
}

// splitCells splits a pipe-delimited row, dropping empty cells.
func splitCells(row string) []string {
	parts := strings.Split(row, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}
