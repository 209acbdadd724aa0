package plan

// Document is the structured form of an implementation plan extracted from
// markdown. A Document is produced whole by Parse and is not modified after.
type Document struct {
	Title      string             `json:"title" yaml:"title"`
	Summary    string             `json:"summary" yaml:"summary"`
	Phases     []Phase            `json:"phases" yaml:"phases"`
	Resources  []ResourceCategory `json:"resources" yaml:"resources"`
	Risks      []RiskRow          `json:"risks" yaml:"risks"`
	Metrics    []string           `json:"metrics" yaml:"metrics"`
	Conclusion string             `json:"conclusion" yaml:"conclusion"`
}

// Phase is a titled block of work spanning a labeled time range.
type Phase struct {
	Title string   `json:"title" yaml:"title"`
	Weeks string   `json:"weeks" yaml:"weeks"`
	Tasks []string `json:"tasks" yaml:"tasks"`
}

// ResourceCategory groups resource details under a name such as "Team".
type ResourceCategory struct {
	Category string   `json:"category" yaml:"category"`
	Details  []string `json:"details" yaml:"details"`
}

// RiskRow is one row of the risk table. Impact and probability are free
// text; see ClassifyRating.
type RiskRow struct {
	Risk        string `json:"risk" yaml:"risk"`
	Impact      string `json:"impact" yaml:"impact"`
	Probability string `json:"probability" yaml:"probability"`
	Mitigation  string `json:"mitigation" yaml:"mitigation"`
}

// IsEmpty reports whether nothing structured could be extracted. Callers
// should show the raw source instead.
func (d Document) IsEmpty() bool {
	return d.Title == "" &&
		d.Summary == "" &&
		d.Conclusion == "" &&
		len(d.Phases) == 0 &&
		len(d.Resources) == 0 &&
		len(d.Risks) == 0 &&
		len(d.Metrics) == 0
}

// TaskCount returns the number of tasks across all phases.
func (d Document) TaskCount() int {
	n := 0
	for _, p := range d.Phases {
		n += len(p.Tasks)
	}
	return n
}
