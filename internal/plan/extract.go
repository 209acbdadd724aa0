package plan

import "strings"

// scanState is the accumulator threaded through the fold over plan lines.
type scanState struct {
	section Section
	prevRaw string

	openPhase    int // index into doc.Phases, -1 when none is open
	openResource int // index into doc.Resources, -1 when none is open
	inRiskTable  bool
	// riskColumns holds the header cells of the last risk table. Rows are
	// read positionally; the header is not used to remap columns.
	riskColumns []string

	summary    strings.Builder
	conclusion strings.Builder
	doc        Document
}

func newScanState() *scanState {
	return &scanState{
		openPhase:    -1,
		openResource: -1,
		doc: Document{
			Phases:    []Phase{},
			Resources: []ResourceCategory{},
			Risks:     []RiskRow{},
			Metrics:   []string{},
		},
	}
}

// Parse extracts a Document from plan markdown in a single pass. It never
// fails: unrecognized or malformed lines are skipped, and input with no
// structure yields an empty Document (see Document.IsEmpty).
func Parse(source string) Document {
	st := newScanState()
	for _, raw := range strings.Split(source, "\n") {
		st = st.fold(Classify(raw, st.section))
	}
	return st.finish()
}

// fold applies one classified line to the state.
func (st *scanState) fold(l Line) *scanState {
	switch l.Kind {
	case KindTitle:
		st.doc.Title = l.Text

	case KindHeading:
		st.enter(SectionFor(l.Text))

	case KindFreeText:
		prose := &st.summary
		if st.section == SectionConclusion {
			prose = &st.conclusion
		}
		prose.WriteString(l.Text)
		prose.WriteByte(' ')

	case KindBoldPhaseHeader:
		st.doc.Phases = append(st.doc.Phases, Phase{Title: l.Text, Weeks: l.Weeks, Tasks: []string{}})
		st.openPhase = len(st.doc.Phases) - 1

	case KindTaskItem:
		if st.openPhase >= 0 {
			p := &st.doc.Phases[st.openPhase]
			p.Tasks = append(p.Tasks, l.Text)
		}

	case KindBoldResourceHeader:
		st.doc.Resources = append(st.doc.Resources, ResourceCategory{Category: l.Text, Details: []string{}})
		st.openResource = len(st.doc.Resources) - 1

	case KindDetailItem:
		if st.openResource >= 0 {
			r := &st.doc.Resources[st.openResource]
			r.Details = append(r.Details, l.Text)
		}

	case KindTableSeparator:
		header := splitCells(strings.TrimSpace(st.prevRaw))
		for i, c := range header {
			header[i] = strings.ToLower(c)
		}
		st.riskColumns = header
		st.inRiskTable = true

	case KindTableRow:
		if st.inRiskTable && len(l.Cells) >= 4 {
			st.doc.Risks = append(st.doc.Risks, RiskRow{
				Risk:        l.Cells[0],
				Impact:      l.Cells[1],
				Probability: l.Cells[2],
				Mitigation:  l.Cells[3],
			})
		}

	case KindMetricItem:
		st.doc.Metrics = append(st.doc.Metrics, l.Text)
	}

	st.prevRaw = l.Raw
	return st
}

// enter switches the active section and resets the per-section pointers
// of the section being entered. Accumulated output is kept, so a section
// that appears twice keeps appending.
func (st *scanState) enter(s Section) {
	st.section = s
	switch s {
	case SectionPhases:
		st.openPhase = -1
	case SectionResources:
		st.openResource = -1
	case SectionRisks:
		st.inRiskTable = false
	}
}

func (st *scanState) finish() Document {
	doc := st.doc
	doc.Summary = strings.TrimSpace(st.summary.String())
	doc.Conclusion = strings.TrimSpace(st.conclusion.String())
	return doc
}
