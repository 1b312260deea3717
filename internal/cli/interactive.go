package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/avoronov/waymark/internal/input"
	"github.com/avoronov/waymark/internal/model"
	"github.com/avoronov/waymark/internal/parse"
	"github.com/avoronov/waymark/internal/pipeline"
)

var (
	// interactiveOut is separate from convert's outPath: the two
	// commands register different defaults, and flag registration
	// writes the default into the bound variable.
	interactiveOut string
	plainPrompt    bool
	// outMD, compact, and noFooter are defined in convert.go and shared here
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Enter coordinates one by one and write a GeoJSON document",
	Long: `Interactive collects records through a prompt session instead of a file:
- Full-screen entry form on a terminal, line prompts otherwise
- Every record is validated as it is entered and can be corrected
- Type 'done' to finish and write the document

Example:
  waymark interactive
  waymark interactive -o trip.geojson --md trip.md
  waymark interactive --plain`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	// Output flags
	interactiveCmd.Flags().StringVarP(&interactiveOut, "output", "o", "output.geojson", "output path")
	interactiveCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")
	interactiveCmd.Flags().BoolVar(&compact, "compact", false, "write the document without indentation")
	interactiveCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	interactiveCmd.Flags().BoolVar(&plainPrompt, "plain", false, "line prompts even on a terminal")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("compact") {
		cfg.Output.Compact = compact
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	cfg.Output.Verbose = verbose

	parser := parse.NewParser(cfg.Input.NamePrefix)

	// The entry form needs a terminal; piped stdin gets line prompts.
	// Both front-ends render to stderr so "-o -" keeps stdout for the
	// document.
	var records []model.LocationRecord
	if plainPrompt || !isatty.IsTerminal(os.Stdin.Fd()) {
		records, err = input.NewPrompter(os.Stdin, os.Stderr, parser).Collect()
	} else {
		records, err = input.RunWizard(os.Stdin, os.Stderr, parser)
	}
	if err != nil {
		return err
	}

	out := ensureGeoJSONExt(interactiveOut)

	p := pipeline.NewPipeline(cfg)
	result, err := p.ConvertRecords(records, "interactive")
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	if err := p.RenderResult(result, out, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// ensureGeoJSONExt appends .geojson unless the name already carries it
// or output goes to stdout.
func ensureGeoJSONExt(name string) string {
	if name == "-" || strings.HasSuffix(name, ".geojson") {
		return name
	}
	return name + ".geojson"
}
