package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/planview/internal/render"
	"github.com/pablasso/planview/internal/tui"
)

var (
	viewWatch bool
	viewRaw   bool
	viewStyle string
)

var viewCmd = &cobra.Command{
	Use:   "view <file|saved-plan>",
	Short: "Open a plan in the interactive viewer",
	Long: `Opens a plan in a scrollable terminal viewer. Press tab to switch between
the structured view and the rendered markdown, r to reload and q to quit.

With --watch the viewer reloads the file whenever it changes on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

// runViewer is replaced in tests.
var runViewer = tui.Run

func init() {
	addViewFlags(viewCmd)
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "Reload when the file changes")
	cmd.Flags().BoolVar(&viewRaw, "raw", false, "Start in the raw markdown view")
	cmd.Flags().StringVar(&viewStyle, "style", "", "Markdown style: auto, dark, light, notty, ...")
}

func runView(cmd *cobra.Command, args []string) error {
	opts, err := viewOptions(cmd, args[0])
	if err != nil {
		return err
	}
	return runViewer(opts)
}

func viewOptions(cmd *cobra.Command, ref string) (tui.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return tui.Options{}, err
	}

	src, err := resolvePlan(ref)
	if err != nil {
		return tui.Options{}, err
	}

	opts := tui.Options{
		Path:   src.Path,
		Title:  src.Label,
		Source: src.Source,
		Mode:   cfg.Mode(),
		Watch:  cfg.View.Watch,
		Render: render.Options{
			Width:       cfg.View.Width,
			Style:       cfg.View.Style,
			MinSeverity: cfg.MinSeverity(),
		},
		Logger: logger,
	}

	flags := cmd.Flags()
	if flags.Changed("watch") {
		opts.Watch = viewWatch
	}
	if flags.Changed("raw") && viewRaw {
		opts.Mode = render.ModeRaw
	}
	if flags.Changed("style") {
		if !render.ValidStyle(viewStyle) {
			return tui.Options{}, fmt.Errorf("unknown style %q", viewStyle)
		}
		opts.Render.Style = viewStyle
	}

	if opts.Watch && opts.Path == "" {
		if flags.Changed("watch") {
			return tui.Options{}, fmt.Errorf("--watch needs a plan file; %s is a saved plan", ref)
		}
		// watch from config only applies to files
		opts.Watch = false
	}
	return opts, nil
}
