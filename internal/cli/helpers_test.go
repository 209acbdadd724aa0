package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

const samplePlan = `# Launch Plan
## Executive Summary
Ship the beta to early customers.
## Implementation Phases
**Foundation** (Weeks 1-4)
- **Week 1:** Kickoff meeting
- **Week 2:** Requirements gathering
**Build** (Weeks 5-8)
- **Week 5:** Core features
## Resource Requirements
**Team:**
- PM
- 2 engineers
## Risk Management
| Risk | Impact | Probability | Mitigation |
|------|--------|-------------|------------|
| Delay | High | Medium | Buffer time |
| Churn | Low | Low | Retention emails |
## Success Metrics
- Ship on time
## Conclusion
Go.
`

// newTestCommand returns a bare command with the given flags registered
// and parsed. Registering flags resets their package variables to defaults.
func newTestCommand(t *testing.T, addFlags func(*cobra.Command), args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{}
	if addFlags != nil {
		addFlags(cmd)
	}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("failed to parse flags %v: %v", args, err)
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func mustInit(t *testing.T) {
	t.Helper()
	cmd, _, _ := newTestCommand(t, nil)
	if err := runInit(cmd, nil); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}
}
