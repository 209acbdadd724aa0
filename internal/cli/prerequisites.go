package cli

import (
	"fmt"
	"os"

	"github.com/pablasso/planview/internal/plan"
)

const planviewDir = plan.DirName

// PrerequisiteError represents a failed prerequisite check with helpful remediation info.
type PrerequisiteError struct {
	Check   string
	Message string
	Help    string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("%s: %s\n\n%s", e.Check, e.Message, e.Help)
}

// checkPrerequisites validates the working directory before init.
func checkPrerequisites() error {
	return checkWritableDir(".")
}

// checkWritableDir verifies dir is a directory we can create files in.
func checkWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &PrerequisiteError{
			Check:   "Project directory",
			Message: fmt.Sprintf("%s is not a directory", dir),
			Help:    "Run planview init from the root of your project.",
		}
	}

	f, err := os.CreateTemp(dir, ".planview-check-*")
	if err != nil {
		return &PrerequisiteError{
			Check:   "Project directory",
			Message: "Directory is not writable",
			Help:    "Planview stores its config and saved plans in .planview/. Check the directory permissions.",
		}
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}

// IsInitialized checks if planview is initialized in the current directory.
func IsInitialized() bool {
	info, err := os.Stat(planviewDir)
	return err == nil && info.IsDir()
}

// RequireInitialized returns an error if planview is not initialized.
func RequireInitialized() error {
	if !IsInitialized() {
		return fmt.Errorf("planview is not initialized. Run 'planview init' first.")
	}
	return nil
}
