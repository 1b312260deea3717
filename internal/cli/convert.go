package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avoronov/waymark/internal/pipeline"
)

var (
	outPath    string
	outMD      string
	compact    bool
	strictMode bool
	noFooter   bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a coordinate file into a GeoJSON document",
	Long: `Convert reads a comma-delimited coordinate file and writes a GeoJSON
FeatureCollection:
- One record per line: latitude, longitude, name, start date, end date
- Name and dates are optional; dates use compact ddmmyyyy form
- Blank lines and #-comments are skipped
- Invalid records are skipped and reported, valid ones are still written

Example:
  waymark convert coordinates.txt
  waymark convert coordinates.txt -o trip.geojson --md trip.md
  waymark convert coordinates.txt -o - --compact`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output flags
	convertCmd.Flags().StringVarP(&outPath, "output", "o", "", `output path (default: input name with .geojson, "-" for stdout)`)
	convertCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")
	convertCmd.Flags().BoolVar(&compact, "compact", false, "write the document without indentation")
	convertCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Validation flags
	convertCmd.Flags().BoolVar(&strictMode, "strict", false, "fail on the first invalid record instead of skipping it")
}

func runConvert(cmd *cobra.Command, args []string) error {
	file := args[0]

	// Build configuration; flags override the config file only when
	// set, so a partial file stays effective.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("compact") {
		cfg.Output.Compact = compact
	}
	if cmd.Flags().Changed("strict") {
		cfg.Input.Strict = strictMode
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	cfg.Output.Verbose = verbose

	out := outPath
	if out == "" {
		out = defaultOutputPath(file)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Converting: %s\n", file)
		fmt.Fprintf(os.Stderr, "Output: %s\n", out)
		if outMD != "" {
			fmt.Fprintf(os.Stderr, "Report: %s\n", outMD)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	result, err := p.ConvertFile(file)
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Parsed %d valid records\n", result.Summary.Valid)
		if result.Summary.Skipped > 0 {
			fmt.Fprintf(os.Stderr, "⚠ Skipped %d invalid records\n", result.Summary.Skipped)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	if err := p.RenderResult(result, out, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// defaultOutputPath swaps the input extension for .geojson, so
// "places.txt" becomes "places.geojson".
func defaultOutputPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".geojson"
}
