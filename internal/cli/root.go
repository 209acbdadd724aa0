package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pablasso/planview/internal/logging"
	"github.com/pablasso/planview/internal/version"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "planview",
	Short: "Structured viewer for implementation plan documents",
	Long: `Planview reads implementation plans written in markdown, extracts phases,
resources, risks and success metrics, and shows them as a structured view
or as the rendered markdown.`,
	Version:      version.String(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("Starting command", zap.String("command", cmd.CommandPath()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.AddCommand(initCmd, deinitCmd, parseCmd, showCmd, viewCmd, listCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
