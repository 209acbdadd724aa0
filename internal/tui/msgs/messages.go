// Package msgs defines message types shared by the viewer and its watcher.
package msgs

// FileChangedMsg is sent when the watched plan file is written or replaced.
type FileChangedMsg struct {
	Path string
}

// WatchErrorMsg carries an error reported by the file watcher.
type WatchErrorMsg struct {
	Err error
}

