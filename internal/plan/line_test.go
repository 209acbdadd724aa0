package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		section Section
		want    Line
	}{
		{
			name: "blank",
			raw:  "   ",
			want: Line{Kind: KindBlank, Raw: "   "},
		},
		{
			name:    "title in any section",
			raw:     "#  Launch Plan  ",
			section: SectionRisks,
			want:    Line{Kind: KindTitle, Raw: "#  Launch Plan  ", Text: "Launch Plan"},
		},
		{
			name: "heading key lower-cased",
			raw:  "## Implementation PHASES",
			want: Line{Kind: KindHeading, Raw: "## Implementation PHASES", Text: "implementation phases"},
		},
		{
			name:    "third-level heading is not a heading",
			raw:     "### Details",
			section: SectionPhases,
			want:    Line{Kind: KindIgnored, Raw: "### Details"},
		},
		{
			name:    "summary prose",
			raw:     "  Some words. ",
			section: SectionSummary,
			want:    Line{Kind: KindFreeText, Raw: "  Some words. ", Text: "Some words."},
		},
		{
			name:    "prose outside prose sections ignored",
			raw:     "Some words.",
			section: SectionMetrics,
			want:    Line{Kind: KindIgnored, Raw: "Some words."},
		},
		{
			name:    "phase header",
			raw:     "**Foundation** (weeks 1-4)",
			section: SectionPhases,
			want:    Line{Kind: KindBoldPhaseHeader, Raw: "**Foundation** (weeks 1-4)", Text: "Foundation", Weeks: "weeks 1-4"},
		},
		{
			name:    "phase header inside a sub-heading",
			raw:     "### Phase 1: **Discovery** (Week 1)",
			section: SectionPhases,
			want:    Line{Kind: KindBoldPhaseHeader, Raw: "### Phase 1: **Discovery** (Week 1)", Text: "Discovery", Weeks: "Week 1"},
		},
		{
			name:    "bold line without weeks is not a phase header",
			raw:     "**Foundation** (Q1)",
			section: SectionPhases,
			want:    Line{Kind: KindIgnored, Raw: "**Foundation** (Q1)"},
		},
		{
			name:    "task joins lead-in and remainder",
			raw:     "  - **Week 1:** Kickoff meeting",
			section: SectionPhases,
			want:    Line{Kind: KindTaskItem, Raw: "  - **Week 1:** Kickoff meeting", Text: "Week 1: Kickoff meeting"},
		},
		{
			name:    "task with extra bold markers keeps the rest verbatim",
			raw:     "- **Design** the **API** layer",
			section: SectionPhases,
			want:    Line{Kind: KindTaskItem, Raw: "- **Design** the **API** layer", Text: "Design the **API** layer"},
		},
		{
			name:    "plain list item in phases ignored",
			raw:     "- Kickoff meeting",
			section: SectionPhases,
			want:    Line{Kind: KindIgnored, Raw: "- Kickoff meeting"},
		},
		{
			name:    "resource header strips colon",
			raw:     "**Budget:** ",
			section: SectionResources,
			want:    Line{Kind: KindBoldResourceHeader, Raw: "**Budget:** ", Text: "Budget"},
		},
		{
			name:    "bold list item in resources is a detail",
			raw:     "- **Lead:** Alice",
			section: SectionResources,
			want:    Line{Kind: KindDetailItem, Raw: "- **Lead:** Alice", Text: "**Lead:** Alice"},
		},
		{
			name:    "metric",
			raw:     "-   99% uptime",
			section: SectionMetrics,
			want:    Line{Kind: KindMetricItem, Raw: "-   99% uptime", Text: "99% uptime"},
		},
		{
			name:    "table separator",
			raw:     "|------|:---:|",
			section: SectionRisks,
			want:    Line{Kind: KindTableSeparator, Raw: "|------|:---:|", Cells: []string{"------", ":---:"}},
		},
		{
			name:    "table row",
			raw:     "| Delay | High |  | Buffer |",
			section: SectionRisks,
			want:    Line{Kind: KindTableRow, Raw: "| Delay | High |  | Buffer |", Cells: []string{"Delay", "High", "Buffer"}},
		},
		{
			name:    "pipe line outside risks ignored",
			raw:     "| a | b |",
			section: SectionResources,
			want:    Line{Kind: KindIgnored, Raw: "| a | b |"},
		},
		{
			name:    "carriage return trimmed",
			raw:     "- Ship it\r",
			section: SectionMetrics,
			want:    Line{Kind: KindMetricItem, Raw: "- Ship it", Text: "Ship it"},
		},
		{
			name: "no section ignores list items",
			raw:  "- orphan",
			want: Line{Kind: KindIgnored, Raw: "- orphan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw, tt.section)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify(%q, %s) mismatch (-want +got):\n%s", tt.raw, tt.section, diff)
			}
		})
	}
}

func TestLineKindString(t *testing.T) {
	if KindTaskItem.String() != "task" {
		t.Errorf("got %q, want %q", KindTaskItem.String(), "task")
	}
	if LineKind(99).String() != "unknown" {
		t.Errorf("got %q, want %q", LineKind(99).String(), "unknown")
	}
}
