package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/pablasso/planview/internal/tui/msgs"
)

func TestFileWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.md")
	if err := os.WriteFile(path, []byte("# One"), 0644); err != nil {
		t.Fatal(err)
	}

	fw, err := newFileWatcher(path)
	if err != nil {
		t.Fatalf("newFileWatcher failed: %v", err)
	}
	defer fw.Close()

	got := make(chan any, 1)
	go func() { got <- fw.wait()() }()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("# Two"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-got:
		changed, ok := msg.(msgs.FileChangedMsg)
		if !ok {
			t.Fatalf("expected FileChangedMsg, got %T", msg)
		}
		if changed.Path != fw.path {
			t.Errorf("expected path %q, got %q", fw.path, changed.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestFileWatcher_ClosedReturnsNil(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "plan.md")
	if err := os.WriteFile(path, []byte("# One"), 0644); err != nil {
		t.Fatal(err)
	}

	fw, err := newFileWatcher(path)
	if err != nil {
		t.Fatalf("newFileWatcher failed: %v", err)
	}
	cmd := fw.wait()
	fw.Close()

	if msg := cmd(); msg != nil {
		t.Errorf("expected nil after close, got %#v", msg)
	}
}
