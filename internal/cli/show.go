package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pablasso/planview/internal/config"
	"github.com/pablasso/planview/internal/plan"
	"github.com/pablasso/planview/internal/render"
)

var (
	showRaw         bool
	showWidth       int
	showStyle       string
	showMinSeverity string
)

var showCmd = &cobra.Command{
	Use:   "show <file|saved-plan>",
	Short: "Print the structured view of a plan",
	Long: `Renders a plan to stdout. The structured view lists phases as cards and
risks as a table. Documents with no recognizable structure are shown as
rendered markdown instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	addShowFlags(showCmd)
}

func addShowFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&showRaw, "raw", false, "Render the markdown source instead of the structured view")
	cmd.Flags().IntVar(&showWidth, "width", 0, "Wrap width (default from config, then 100)")
	cmd.Flags().StringVar(&showStyle, "style", "", "Markdown style: auto, dark, light, notty, ...")
	cmd.Flags().StringVar(&showMinSeverity, "min-severity", "", "Hide risks below this severity: low, medium or high")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, mode, err := showOptions(cmd, cfg)
	if err != nil {
		return err
	}

	src, err := resolvePlan(args[0])
	if err != nil {
		return err
	}

	r, err := render.New(opts)
	if err != nil {
		return err
	}

	if render.Effective(src.Doc, mode) != mode {
		logger.Debug("No structure found, rendering raw", zap.String("plan", src.Label))
		fmt.Fprintln(cmd.ErrOrStderr(), "no structure found, showing raw markdown")
	}

	out, err := r.Render(src.Doc, src.Source, mode)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// showOptions merges the config with any flags set on the command line.
func showOptions(cmd *cobra.Command, cfg config.Config) (render.Options, render.Mode, error) {
	opts := render.Options{
		Width:       cfg.View.Width,
		Style:       cfg.View.Style,
		MinSeverity: cfg.MinSeverity(),
	}
	mode := cfg.Mode()

	flags := cmd.Flags()
	if flags.Changed("raw") && showRaw {
		mode = render.ModeRaw
	}
	if flags.Changed("width") {
		if showWidth < 0 {
			return render.Options{}, mode, fmt.Errorf("--width must be >= 0")
		}
		opts.Width = showWidth
	}
	if flags.Changed("style") {
		if !render.ValidStyle(showStyle) {
			return render.Options{}, mode, fmt.Errorf("unknown style %q", showStyle)
		}
		opts.Style = showStyle
	}
	if flags.Changed("min-severity") {
		level, err := plan.ParseLevel(showMinSeverity)
		if err != nil {
			return render.Options{}, mode, fmt.Errorf("--min-severity: %w", err)
		}
		opts.MinSeverity = level
	}
	return opts, mode, nil
}
