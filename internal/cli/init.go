package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pablasso/planview/internal/config"
	"github.com/pablasso/planview/internal/plan"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize planview in the current directory",
	Long:  "Creates a .planview/ folder with a default config.yaml and a plans/ folder for saved plans.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := checkPrerequisites(); err != nil {
		return err
	}

	if IsInitialized() {
		return fmt.Errorf("planview is already initialized in this directory")
	}

	dirs := []string{
		planviewDir,
		plan.PlansPath(planviewDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := config.WriteDefault("."); err != nil {
		return err
	}
	logger.Debug("Initialized project", zap.String("dir", planviewDir))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Initialized planview in", planviewDir)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Adjust %s if needed\n", filepath.Join(planviewDir, config.FileName))
	fmt.Fprintln(out, "  2. Run: planview view <plan.md>")
	return nil
}
