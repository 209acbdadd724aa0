package render

import (
	"fmt"
	"strings"

	"github.com/pablasso/planview/internal/plan"
)

// Mode selects between the structured view and the rendered source.
type Mode int

const (
	ModeStructured Mode = iota
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeStructured:
		return "structured"
	case ModeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeRaw {
		return ModeStructured
	}
	return ModeRaw
}

// ParseMode parses a mode name. The empty string parses as ModeStructured.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "structured":
		return ModeStructured, nil
	case "raw":
		return ModeRaw, nil
	default:
		return ModeStructured, fmt.Errorf("invalid mode %q: must be structured or raw", s)
	}
}

// Effective returns the mode that will actually be shown. A document with
// nothing extracted always shows the raw source.
func Effective(doc plan.Document, requested Mode) Mode {
	if doc.IsEmpty() {
		return ModeRaw
	}
	return requested
}
