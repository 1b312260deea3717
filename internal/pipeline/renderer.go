package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/avoronov/waymark/internal/geojson"
)

// Renderer writes conversion results as GeoJSON documents, Markdown
// reports, and console summaries.
type Renderer struct {
	compact       bool
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(compact, includeFooter bool) *Renderer {
	return &Renderer{
		compact:       compact,
		includeFooter: includeFooter,
	}
}

// WriteGeoJSON writes the document to path, pretty-printed with
// two-space indentation unless the renderer is compact. Path "-"
// streams to stdout instead.
func (r *Renderer) WriteGeoJSON(fc geojson.FeatureCollection, path string) error {
	var (
		data []byte
		err  error
	)
	if r.compact {
		data, err = json.Marshal(fc)
	} else {
		data, err = json.MarshalIndent(fc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("features", len(fc.Features)).
		Msg("wrote document")

	return nil
}

// WriteMarkdown writes a human-readable trip report next to the
// document: run summary, the point table, and any skipped input.
func (r *Renderer) WriteMarkdown(result *Result, path string) error {
	var b strings.Builder
	s := result.Summary

	fmt.Fprintf(&b, "# Travel Points: %s\n\n", s.Source)
	fmt.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Records: %d valid of %d read", s.Valid, s.Total)
	if s.Skipped > 0 {
		fmt.Fprintf(&b, " (%d skipped)", s.Skipped)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Visited: %d (%d days total)\n", s.Visited, s.TotalDays)
	fmt.Fprintf(&b, "- Same-day visits: %d\n", s.SameDayVisits)
	fmt.Fprintf(&b, "- Not visited yet: %d\n", s.NotVisitedYet)
	if s.EarliestStart != "" && s.LatestEnd != "" {
		fmt.Fprintf(&b, "- Date range: %s to %s\n", s.EarliestStart, s.LatestEnd)
	}
	if s.Bounds != nil {
		fmt.Fprintf(&b, "- Bounds: lat %g to %g, lon %g to %g\n",
			s.Bounds.MinLat, s.Bounds.MaxLat, s.Bounds.MinLon, s.Bounds.MaxLon)
	}

	b.WriteString("\n## Points\n\n")
	b.WriteString("| # | Name | Latitude | Longitude | Start | End | Days | Status |\n")
	b.WriteString("|---|------|----------|-----------|-------|-----|------|--------|\n")
	for _, f := range result.Collection.Features {
		pr := f.Properties
		fmt.Fprintf(&b, "| %d | %s | %g | %g | %s | %s | %d | %s |\n",
			pr.Number, pr.Name, pr.Latitude, pr.Longitude,
			orDash(pr.StartDate), orDash(pr.EndDate), pr.DurationDays, pr.Status)
	}

	if len(result.Skipped) > 0 {
		b.WriteString("\n## Skipped Records\n\n")
		for _, fe := range result.Skipped {
			fmt.Fprintf(&b, "- %v\n", fe)
		}
	}

	if r.includeFooter {
		b.WriteString("\n---\n\nGenerated by waymark\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// RenderSummary prints the run summary to stderr.
func (r *Renderer) RenderSummary(result *Result) {
	s := result.Summary

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Conversion Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Source:          %s\n", s.Source)
	fmt.Fprintf(os.Stderr, "  Records:         %d valid / %d read\n", s.Valid, s.Total)
	if s.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "  Skipped:         %d\n", s.Skipped)
	}
	fmt.Fprintf(os.Stderr, "  Visited:         %d\n", s.Visited)
	fmt.Fprintf(os.Stderr, "  Same-day visits: %d\n", s.SameDayVisits)
	fmt.Fprintf(os.Stderr, "  Not visited yet: %d\n", s.NotVisitedYet)
	if s.TotalDays > 0 {
		fmt.Fprintf(os.Stderr, "  Days traveled:   %d\n", s.TotalDays)
	}
	if s.EarliestStart != "" && s.LatestEnd != "" {
		fmt.Fprintf(os.Stderr, "  Date range:      %s to %s\n", s.EarliestStart, s.LatestEnd)
	}
	fmt.Fprintf(os.Stderr, "\n")

	for _, fe := range result.Skipped {
		fmt.Fprintf(os.Stderr, "  ✗ %v\n", fe)
	}
	if len(result.Skipped) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
