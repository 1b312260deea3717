// Package pipeline orchestrates conversion runs from raw input to
// rendered output.
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/avoronov/waymark/internal/geojson"
	"github.com/avoronov/waymark/internal/input"
	"github.com/avoronov/waymark/internal/model"
	"github.com/avoronov/waymark/internal/parse"
)

// ErrNoValidRecords means a run produced nothing usable; no output
// file is written in that case.
var ErrNoValidRecords = errors.New("no valid records")

// Pipeline orchestrates the complete conversion process
type Pipeline struct {
	parser   *parse.Parser
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	return &Pipeline{
		parser:   parse.NewParser(cfg.Input.NamePrefix),
		renderer: NewRenderer(cfg.Output.Compact, cfg.Output.IncludeFooter),
		config:   cfg,
	}
}

// Result contains one complete conversion
type Result struct {
	Collection geojson.FeatureCollection
	Summary    model.Summary
	Skipped    []*parse.FieldError
}

// ConvertFile converts a record file into a GeoJSON document. Invalid
// records are skipped and collected unless strict mode is on; a file
// with no valid records fails with ErrNoValidRecords.
func (p *Pipeline) ConvertFile(path string) (*Result, error) {
	// 1. Read raw lines
	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, err
	}

	// 2. Validate records
	records, skipped, err := p.parseLines(lines, p.config.Input.Strict)
	if err != nil {
		return nil, err
	}

	// 3. Refuse to write an empty document
	if len(records) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoValidRecords, path)
	}

	// 4. Assemble document and summary
	return p.assemble(records, skipped, len(lines), path), nil
}

// ConvertRecords builds the result for records that already passed
// validation, as the interactive modes produce them.
func (p *Pipeline) ConvertRecords(records []model.LocationRecord, source string) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrNoValidRecords
	}
	return p.assemble(records, nil, len(records), source), nil
}

// CheckResult is the validation outcome of a file, with nothing
// written.
type CheckResult struct {
	Total    int // records seen, excluding blank and comment lines
	Records  []model.LocationRecord
	Findings []*parse.FieldError
}

// CheckFile validates a record file and reports every finding. Unlike
// ConvertFile it never stops early and never writes output.
func (p *Pipeline) CheckFile(path string) (*CheckResult, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, err
	}

	records, findings, err := p.parseLines(lines, false)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Total:    len(lines),
		Records:  records,
		Findings: findings,
	}, nil
}

// parseLines validates raw lines one by one. Valid records are numbered
// by their position among the valid set, so a skipped line leaves no
// gap.
func (p *Pipeline) parseLines(lines []input.Line, strict bool) ([]model.LocationRecord, []*parse.FieldError, error) {
	var (
		records []model.LocationRecord
		skipped []*parse.FieldError
	)

	for _, line := range lines {
		rec, err := p.parser.ParseLine(line.Text, len(records)+1, line.Number)
		if err != nil {
			var fe *parse.FieldError
			if !errors.As(err, &fe) {
				return nil, nil, err
			}
			if strict {
				return nil, nil, fmt.Errorf("strict mode: %w", fe)
			}

			log.Warn().
				Int("line", fe.Line).
				Str("field", fe.Field).
				Str("value", fe.Value).
				Str("reason", fe.Kind.Error()).
				Str("detail", fe.Detail).
				Msg("skipping invalid record")
			skipped = append(skipped, fe)
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

func (p *Pipeline) assemble(records []model.LocationRecord, skipped []*parse.FieldError, total int, source string) *Result {
	log.Debug().
		Int("valid", len(records)).
		Int("skipped", len(skipped)).
		Str("source", source).
		Msg("assembling document")

	return &Result{
		Collection: geojson.Build(records),
		Summary:    model.Summarize(records, total, source),
		Skipped:    skipped,
	}
}

// RenderResult writes the GeoJSON document and the optional Markdown
// report, then prints the run summary. Progress goes to stderr so "-"
// output can stream the document on stdout.
func (p *Pipeline) RenderResult(result *Result, geoPath string, mdPath string, verbose bool) error {
	if geoPath != "" {
		if err := p.renderer.WriteGeoJSON(result.Collection, geoPath); err != nil {
			return fmt.Errorf("write GeoJSON: %w", err)
		}
		if verbose && geoPath != "-" {
			fmt.Fprintf(os.Stderr, "✓ Wrote GeoJSON: %s\n", geoPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.WriteMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(result)

	return nil
}
