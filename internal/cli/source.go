package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pablasso/planview/internal/config"
	"github.com/pablasso/planview/internal/plan"
)

// planSource is a plan read from disk or from the saved plans folder.
type planSource struct {
	// Path is empty for saved plans.
	Path   string
	Label  string
	Source string
	Doc    plan.Document
}

// resolvePlan reads ref as a file path, falling back to a saved plan
// reference (ID, name or folder name) when no such file exists.
func resolvePlan(ref string) (planSource, error) {
	info, err := os.Stat(ref)
	switch {
	case err == nil && info.IsDir():
		return planSource{}, fmt.Errorf("%s is a directory", ref)
	case err == nil:
		data, err := os.ReadFile(ref)
		if err != nil {
			return planSource{}, fmt.Errorf("failed to read %s: %w", ref, err)
		}
		source := string(data)
		doc := plan.Parse(source)
		logger.Debug("Parsed plan file",
			zap.String("path", ref),
			zap.Int("phases", len(doc.Phases)),
			zap.Int("risks", len(doc.Risks)))
		return planSource{Path: ref, Label: filepath.Base(ref), Source: source, Doc: doc}, nil
	case !errors.Is(err, fs.ErrNotExist):
		return planSource{}, fmt.Errorf("failed to read %s: %w", ref, err)
	}

	if !IsInitialized() {
		return planSource{}, fmt.Errorf("file not found: %s", ref)
	}

	sp, source, err := plan.Load(planviewDir, ref)
	if errors.Is(err, plan.ErrPlanNotFound) {
		return planSource{}, fmt.Errorf("no file or saved plan named %q", ref)
	}
	if err != nil {
		return planSource{}, err
	}
	logger.Debug("Loaded saved plan", zap.String("plan", sp.FolderName()))
	return planSource{Label: sp.FolderName(), Source: source, Doc: sp.Document}, nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
