package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/pablasso/planview/internal/tui/msgs"
)

// fileWatcher reports changes to a single file. It watches the parent
// directory so editors that save by renaming a temp file are still seen.
type fileWatcher struct {
	w    *fsnotify.Watcher
	path string
}

func newFileWatcher(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &fileWatcher{w: w, path: abs}, nil
}

// wait returns a command that blocks until the file changes or the watcher
// reports an error. It returns nil once the watcher is closed.
func (fw *fileWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-fw.w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != fw.path {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return msgs.FileChangedMsg{Path: fw.path}
				}
			case err, ok := <-fw.w.Errors:
				if !ok {
					return nil
				}
				return msgs.WatchErrorMsg{Err: err}
			}
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
