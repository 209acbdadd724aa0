package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{"init": false, "deinit": false, "parse": false, "show": false, "view": false, "list": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), "planview version dev") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}

func TestRootCommand_VerboseFlag(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("expected persistent --verbose flag")
	}
}
