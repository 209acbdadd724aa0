package plan

import (
	"fmt"
	"strings"
)

// Level is a coarse rating derived from free-text impact or probability.
type Level int

const (
	LevelUnknown Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name. The empty string parses as LevelUnknown.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return LevelUnknown, nil
	case "low":
		return LevelLow, nil
	case "medium":
		return LevelMedium, nil
	case "high":
		return LevelHigh, nil
	default:
		return LevelUnknown, fmt.Errorf("invalid level %q: must be low, medium or high", s)
	}
}

// ClassifyRating maps free text such as "Very High" or "Medium-Low" to a
// Level by substring, checking high before medium before low.
func ClassifyRating(s string) Level {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "high"):
		return LevelHigh
	case strings.Contains(s, "medium"):
		return LevelMedium
	case strings.Contains(s, "low"):
		return LevelLow
	default:
		return LevelUnknown
	}
}

// Severity is the higher of the row's impact and probability levels.
func (r RiskRow) Severity() Level {
	return max(ClassifyRating(r.Impact), ClassifyRating(r.Probability))
}
