package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// DirName is the project-local directory holding planview data.
	DirName = ".planview"

	plansDir   = "plans"
	planFile   = "plan.json"
	sourceFile = "source.md"
)

// ErrPlanNotFound is returned by Load when no saved plan matches.
var ErrPlanNotFound = errors.New("plan not found")

// SavedPlan is a Document persisted with its metadata.
type SavedPlan struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SourceFile string    `json:"sourceFile"`
	CreatedAt  time.Time `json:"createdAt"`
	Document   Document  `json:"document"`
}

// FolderName returns the plan's folder name, <id>-<name>.
func (sp SavedPlan) FolderName() string {
	return fmt.Sprintf("%s-%s", sp.ID, sp.Name)
}

// PlansPath returns the plans directory under baseDir.
func PlansPath(baseDir string) string {
	return filepath.Join(baseDir, plansDir)
}

// ResolvePlanName checks for name collisions in the plans directory and returns
// a unique name. If the baseName is not taken, it returns as-is. If taken, it
// appends -2, -3, etc. until a unique name is found.
func ResolvePlanName(baseDir, baseName string) (string, error) {
	entries, err := os.ReadDir(PlansPath(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return baseName, nil
		}
		return "", fmt.Errorf("failed to read plans directory: %w", err)
	}

	// Folder format is <id>-<name>, so we split on first hyphen
	existingNames := make(map[string]bool)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		parts := strings.SplitN(entry.Name(), "-", 2)
		if len(parts) == 2 {
			existingNames[parts[1]] = true
		}
	}

	if !existingNames[baseName] {
		return baseName, nil
	}

	for suffix := 2; ; suffix++ {
		candidate := fmt.Sprintf("%s-%d", baseName, suffix)
		if !existingNames[candidate] {
			return candidate, nil
		}
	}
}

// Save writes plan.json and source.md to <baseDir>/plans/<id>-<name>/ and
// returns the folder path.
func Save(baseDir string, sp *SavedPlan, source string) (string, error) {
	folderPath := filepath.Join(PlansPath(baseDir), sp.FolderName())

	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create plan folder: %w", err)
	}

	data, err := json.MarshalIndent(sp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(filepath.Join(folderPath, planFile), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", planFile, err)
	}

	if err := os.WriteFile(filepath.Join(folderPath, sourceFile), []byte(source), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", sourceFile, err)
	}

	return folderPath, nil
}

// lockTimeout bounds how long SaveUnique waits for another save to finish.
var lockTimeout = 5 * time.Second

// SaveUnique saves sp under a collision-free name derived from baseName.
// Name resolution and the write happen under a lock on baseDir, so
// concurrent saves of the same title get distinct names.
func SaveUnique(baseDir string, sp *SavedPlan, baseName, source string) (string, error) {
	if err := os.MkdirAll(PlansPath(baseDir), 0755); err != nil {
		return "", fmt.Errorf("failed to create plans directory: %w", err)
	}

	lock := newStoreLock(baseDir)
	if err := lock.acquire(lockTimeout); err != nil {
		return "", err
	}
	defer lock.release()

	name, err := ResolvePlanName(baseDir, baseName)
	if err != nil {
		return "", err
	}
	sp.Name = name
	return Save(baseDir, sp, source)
}

// List returns all saved plans ordered by creation time. Folders without a
// readable plan.json are skipped.
func List(baseDir string) ([]SavedPlan, error) {
	entries, err := os.ReadDir(PlansPath(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []SavedPlan{}, nil
		}
		return nil, fmt.Errorf("failed to read plans directory: %w", err)
	}

	plans := make([]SavedPlan, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sp, err := readPlanFile(filepath.Join(PlansPath(baseDir), entry.Name()))
		if err != nil {
			continue
		}
		plans = append(plans, *sp)
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})
	return plans, nil
}

// Load finds a saved plan by ID, name or folder name and returns it with
// its original source text.
func Load(baseDir, ref string) (*SavedPlan, string, error) {
	plans, err := List(baseDir)
	if err != nil {
		return nil, "", err
	}

	for i := range plans {
		sp := &plans[i]
		if ref != sp.ID && ref != sp.Name && ref != sp.FolderName() {
			continue
		}
		source, err := os.ReadFile(filepath.Join(PlansPath(baseDir), sp.FolderName(), sourceFile))
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", sourceFile, err)
		}
		return sp, string(source), nil
	}

	return nil, "", fmt.Errorf("%w: %s", ErrPlanNotFound, ref)
}

func readPlanFile(folderPath string) (*SavedPlan, error) {
	data, err := os.ReadFile(filepath.Join(folderPath, planFile))
	if err != nil {
		return nil, err
	}
	var sp SavedPlan
	if err := json.Unmarshal(data, &sp); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", planFile, err)
	}
	return &sp, nil
}
