package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pablasso/planview/internal/plan"
	"github.com/pablasso/planview/internal/util"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans",
	Long:  "Lists plans saved with 'planview parse --save', oldest first.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if err := RequireInitialized(); err != nil {
		return err
	}

	plans, err := plan.List(planviewDir)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(plans) == 0 {
		fmt.Fprintln(out, "No saved plans. Run 'planview parse <file> --save' to add one.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHASES\tTASKS\tRISKS\tCREATED")
	for _, sp := range plans {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			sp.ID,
			util.Truncate(sp.Name, 40),
			len(sp.Document.Phases),
			sp.Document.TaskCount(),
			len(sp.Document.Risks),
			humanize.Time(sp.CreatedAt),
		)
	}
	return w.Flush()
}
