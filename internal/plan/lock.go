package plan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const (
	saveLockFile     = "save.lock"
	lockPollInterval = 25 * time.Millisecond
)

// ErrStoreBusy is returned when another live process keeps the save lock
// past the wait timeout.
var ErrStoreBusy = errors.New("plan store is busy")

// storeLock is a PID file that serializes saves into one base directory,
// so two processes never resolve the same plan name.
type storeLock struct {
	path string
}

func newStoreLock(baseDir string) *storeLock {
	return &storeLock{path: filepath.Join(baseDir, saveLockFile)}
}

// acquire waits up to timeout for the lock. Lock files left by dead
// processes or holding garbage are removed.
func (l *storeLock) acquire(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		err := l.create()
		if err == nil {
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("failed to create lock file: %w", err)
		}

		holder, err := l.holder()
		if err != nil {
			return err
		}
		if holder == 0 {
			continue
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w: locked by PID %d", ErrStoreBusy, holder)
		}
		time.Sleep(lockPollInterval)
	}
}

// create publishes a fully written PID file with a hard link, so readers
// never observe an empty lock.
func (l *storeLock) create() error {
	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".save-lock-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, writeErr := fmt.Fprintf(tmp, "%d", os.Getpid())
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		return fmt.Errorf("failed to write lock file: %w", errors.Join(writeErr, closeErr))
	}
	return os.Link(tmp.Name(), l.path)
}

// holder returns the PID of the live process owning the lock, or 0 after
// clearing a stale or unreadable lock file.
func (l *storeLock) holder() (int, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read lock file: %w", err)
	}

	pid, parseErr := strconv.Atoi(strings.TrimSpace(string(data)))
	if parseErr == nil && processExists(pid) {
		return pid, nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	return 0, nil
}

// release is idempotent.
func (l *storeLock) release() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// processExists checks if a process with the given PID is running.
// Signal 0 checks for existence without delivering anything.
func processExists(pid int) bool {
	if pid <= 0 {
		return false
	}
	if pid == os.Getpid() {
		return true
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
