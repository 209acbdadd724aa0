package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pablasso/planview/internal/plan"
)

var (
	deinitForce bool
)

var deinitCmd = &cobra.Command{
	Use:   "deinit",
	Short: "Remove planview from the current directory",
	Long:  "Removes the .planview/ folder, its config and all saved plans. This action cannot be undone.",
	Args:  cobra.NoArgs,
	RunE:  runDeinit,
}

func init() {
	addDeinitFlags(deinitCmd)
}

func addDeinitFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&deinitForce, "force", "f", false, "Skip confirmation prompt")
}

func runDeinit(cmd *cobra.Command, args []string) error {
	info, err := os.Stat(planviewDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("planview is not initialized in this directory")
	}
	if err != nil {
		return fmt.Errorf("failed to check %s directory: %w", planviewDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", planviewDir)
	}

	planCount, totalSize, err := calculateDirStats(planviewDir)
	if err != nil {
		return fmt.Errorf("failed to analyze %s/: %w", planviewDir, err)
	}

	out := cmd.OutOrStdout()
	if !deinitForce {
		fmt.Fprintf(out, "This will delete %s/ (%d plans, %s). Continue? [y/N] ", planviewDir, planCount, formatSize(totalSize))

		reader := bufio.NewReader(cmd.InOrStdin())
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(planviewDir); err != nil {
		return fmt.Errorf("failed to remove %s/: %w", planviewDir, err)
	}

	fmt.Fprintln(out, "planview has been removed from this directory.")
	return nil
}

func calculateDirStats(dir string) (planCount int, totalSize int64, err error) {
	entries, readErr := os.ReadDir(plan.PlansPath(dir))
	if readErr == nil {
		for _, e := range entries {
			if e.IsDir() {
				planCount++
			}
		}
	}

	err = filepath.Walk(dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})
	return
}

func formatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}
