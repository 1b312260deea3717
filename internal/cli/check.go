package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoronov/waymark/internal/pipeline"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a coordinate file without writing anything",
	Long: `Check lints a coordinate file and reports every invalid record with
its line number, field, and cause. Nothing is written; the exit status
is non-zero when findings exist, so it fits CI and pre-commit hooks.

Example:
  waymark check coordinates.txt
  waymark check coordinates.txt --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)
	check, err := p.CheckFile(file)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if verbose {
		for _, rec := range check.Records {
			fmt.Fprintf(os.Stderr, "✓ #%d %s (%s)\n", rec.Number, rec.Name, rec.Status)
		}
	}

	for _, finding := range check.Findings {
		fmt.Fprintf(os.Stderr, "✗ %v\n", finding)
	}

	fmt.Fprintf(os.Stderr, "\n%d records: %d valid, %d invalid\n", check.Total, len(check.Records), len(check.Findings))

	if len(check.Findings) > 0 {
		return fmt.Errorf("%d invalid record(s) in %s", len(check.Findings), file)
	}
	if len(check.Records) == 0 {
		return fmt.Errorf("%w in %s", pipeline.ErrNoValidRecords, file)
	}

	return nil
}
