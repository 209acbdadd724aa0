package plan

import "strings"

// Section is the part of the plan the scanner attributes lines to.
type Section int

const (
	SectionNone Section = iota
	SectionSummary
	SectionPhases
	SectionResources
	SectionRisks
	SectionMetrics
	SectionConclusion
)

func (s Section) String() string {
	switch s {
	case SectionNone:
		return "none"
	case SectionSummary:
		return "summary"
	case SectionPhases:
		return "phases"
	case SectionResources:
		return "resources"
	case SectionRisks:
		return "risks"
	case SectionMetrics:
		return "metrics"
	case SectionConclusion:
		return "conclusion"
	default:
		return "unknown"
	}
}

// sectionKeys is checked in order; the first substring found wins, so a
// heading like "Risk Metrics" selects risks.
var sectionKeys = []struct {
	key     string
	section Section
}{
	{"phase", SectionPhases},
	{"resource", SectionResources},
	{"risk", SectionRisks},
	{"metric", SectionMetrics},
	{"summary", SectionSummary},
	{"conclusion", SectionConclusion},
}

// SectionFor maps a lower-cased heading key to a section. Headings that
// match nothing return SectionNone.
func SectionFor(key string) Section {
	for _, k := range sectionKeys {
		if strings.Contains(key, k.key) {
			return k.section
		}
	}
	return SectionNone
}
