package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pablasso/planview/internal/plan"
	"github.com/pablasso/planview/internal/util"
)

var (
	parseFormat string
	parseSave   bool
	parseName   string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Extract the structure of a plan document",
	Long: `Parses a plan document and prints the extracted title, summary, phases,
resources, risks, metrics and conclusion as JSON or YAML.

With --save the result is stored under .planview/plans/ together with the
original markdown so it can be shown later by ID or name.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	addParseFlags(parseCmd)
}

func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&parseFormat, "format", "json", "Output format: json or yaml")
	cmd.Flags().BoolVar(&parseSave, "save", false, "Save the parsed plan to .planview/plans/")
	cmd.Flags().StringVar(&parseName, "name", "", "Name for the saved plan (defaults to the title)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(parseFormat)
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unknown format %q: use json or yaml", parseFormat)
	}
	if parseSave {
		if err := RequireInitialized(); err != nil {
			return err
		}
	}

	src, err := resolvePlan(args[0])
	if err != nil {
		return err
	}

	data, err := encodeDocument(src.Doc, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))

	if !parseSave {
		return nil
	}

	dir, err := savePlan(src, parseName)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved plan to %s\n", dir)
	return nil
}

func encodeDocument(doc plan.Document, format string) ([]byte, error) {
	if format == "yaml" {
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// savePlan persists src under a unique kebab-case name derived from name,
// the document title or the file name, in that order.
func savePlan(src planSource, name string) (string, error) {
	base := util.ToKebabCase(name)
	if base == "" {
		base = util.ToKebabCase(src.Doc.Title)
	}
	if base == "" && src.Path != "" {
		base = util.ToKebabCase(strings.TrimSuffix(filepath.Base(src.Path), filepath.Ext(src.Path)))
	}
	if base == "" {
		base = "plan"
	}

	id, err := util.GenerateShortID()
	if err != nil {
		return "", fmt.Errorf("failed to generate plan ID: %w", err)
	}

	sp := &plan.SavedPlan{
		ID:         id,
		SourceFile: src.Path,
		CreatedAt:  time.Now().UTC(),
		Document:   src.Doc,
	}
	dir, err := plan.SaveUnique(planviewDir, sp, base, src.Source)
	if err != nil {
		return "", err
	}
	logger.Debug("Saved plan", zap.String("id", id), zap.String("name", sp.Name))
	return dir, nil
}
