package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pablasso/planview/internal/config"
	"github.com/pablasso/planview/internal/plan"
	"github.com/pablasso/planview/internal/render"
	"github.com/pablasso/planview/internal/testutil"
)

func runShowForTest(t *testing.T, ref string, flags ...string) (string, string, error) {
	t.Helper()
	cmd, out, errOut := newTestCommand(t, addShowFlags, flags...)
	err := runShow(cmd, []string{ref})
	return out.String(), errOut.String(), err
}

func TestRunShow_Structured(t *testing.T) {
	testutil.SetupTestDir(t)
	testutil.WriteFile(t, "launch.md", samplePlan)

	out, errOut, err := runShowForTest(t, "launch.md", "--style", "notty")
	if err != nil {
		t.Fatalf("runShow failed: %v", err)
	}
	for _, want := range []string{"Launch Plan", "1. Foundation", "Weeks 1-4", "2. Build", "Delay", "Ship on time"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
	if errOut != "" {
		t.Errorf("expected no stderr output, got %q", errOut)
	}
}

func TestRunShow_Raw(t *testing.T) {
	testutil.SetupTestDir(t)
	testutil.WriteFile(t, "launch.md", samplePlan)

	out, _, err := runShowForTest(t, "launch.md", "--raw", "--style", "notty")
	if err != nil {
		t.Fatalf("runShow failed: %v", err)
	}
	if strings.Contains(out, "1. Foundation") {
		t.Errorf("raw output should not contain phase cards\n%s", out)
	}
	if !strings.Contains(out, "Kickoff meeting") {
		t.Errorf("expected markdown content\n%s", out)
	}
}

func TestRunShow_FallsBackToRaw(t *testing.T) {
	testutil.SetupTestDir(t)
	testutil.WriteFile(t, "notes.md", "Just some loose notes.\n")

	out, errOut, err := runShowForTest(t, "notes.md", "--style", "notty")
	if err != nil {
		t.Fatalf("runShow failed: %v", err)
	}
	if !strings.Contains(out, "Just some loose notes.") {
		t.Errorf("expected raw content, got %q", out)
	}
	if !strings.Contains(errOut, "no structure found") {
		t.Errorf("expected fallback hint on stderr, got %q", errOut)
	}
}

func TestRunShow_MinSeverity(t *testing.T) {
	testutil.SetupTestDir(t)
	testutil.WriteFile(t, "launch.md", samplePlan)

	out, _, err := runShowForTest(t, "launch.md", "--style", "notty", "--min-severity", "medium")
	if err != nil {
		t.Fatalf("runShow failed: %v", err)
	}
	if !strings.Contains(out, "Delay") {
		t.Errorf("expected high risk to be shown\n%s", out)
	}
	if strings.Contains(out, "Churn") {
		t.Errorf("expected low risk to be hidden\n%s", out)
	}
}

func TestRunShow_UsesConfig(t *testing.T) {
	testutil.SetupTestDir(t)
	mustInit(t)
	testutil.WriteFile(t, "launch.md", samplePlan)
	testutil.WriteFile(t, filepath.Join(".planview", config.FileName), "view:\n  mode: raw\n  style: notty\n")

	out, _, err := runShowForTest(t, "launch.md")
	if err != nil {
		t.Fatalf("runShow failed: %v", err)
	}
	if strings.Contains(out, "1. Foundation") {
		t.Errorf("expected raw mode from config\n%s", out)
	}
}

func TestRunShow_SavedPlan(t *testing.T) {
	testutil.SetupTestDir(t)
	mustInit(t)
	testutil.WriteFile(t, "launch.md", samplePlan)

	cmd, _, _ := newTestCommand(t, addParseFlags, "--save")
	if err := runParse(cmd, []string{"launch.md"}); err != nil {
		t.Fatalf("runParse failed: %v", err)
	}

	out, _, err := runShowForTest(t, "launch-plan", "--style", "notty")
	if err != nil {
		t.Fatalf("runShow failed: %v", err)
	}
	if !strings.Contains(out, "1. Foundation") {
		t.Errorf("expected saved plan to render\n%s", out)
	}

	if _, _, err := runShowForTest(t, "nope", "--style", "notty"); err == nil || !strings.Contains(err.Error(), `no file or saved plan named "nope"`) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestShowOptions(t *testing.T) {
	cfg := config.Default()
	cfg.View.Width = 80
	cfg.Show.MinSeverity = "low"

	t.Run("config values without flags", func(t *testing.T) {
		cmd, _, _ := newTestCommand(t, addShowFlags)
		opts, mode, err := showOptions(cmd, cfg)
		if err != nil {
			t.Fatalf("showOptions failed: %v", err)
		}
		want := render.Options{Width: 80, Style: "auto", MinSeverity: plan.LevelLow}
		if opts != want {
			t.Errorf("got %+v, want %+v", opts, want)
		}
		if mode != render.ModeStructured {
			t.Errorf("got mode %s, want structured", mode)
		}
	})

	t.Run("flags override config", func(t *testing.T) {
		cmd, _, _ := newTestCommand(t, addShowFlags, "--raw", "--width", "60", "--style", "dark", "--min-severity", "high")
		opts, mode, err := showOptions(cmd, cfg)
		if err != nil {
			t.Fatalf("showOptions failed: %v", err)
		}
		want := render.Options{Width: 60, Style: "dark", MinSeverity: plan.LevelHigh}
		if opts != want {
			t.Errorf("got %+v, want %+v", opts, want)
		}
		if mode != render.ModeRaw {
			t.Errorf("got mode %s, want raw", mode)
		}
	})

	invalid := []struct {
		name    string
		flags   []string
		wantErr string
	}{
		{"negative width", []string{"--width", "-5"}, "--width"},
		{"unknown style", []string{"--style", "neon"}, `unknown style "neon"`},
		{"unknown severity", []string{"--min-severity", "extreme"}, "--min-severity"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCommand(t, addShowFlags, tt.flags...)
			_, _, err := showOptions(cmd, cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
