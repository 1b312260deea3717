package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avoronov/waymark/internal/geojson"
	"github.com/avoronov/waymark/internal/model"
)

func sampleResult() *Result {
	records := []model.LocationRecord{
		{
			Number:       1,
			Name:         "San Francisco",
			Latitude:     37.7749,
			Longitude:    -122.4194,
			StartDate:    model.NewDate(2024, time.January, 15),
			EndDate:      model.NewDate(2024, time.January, 20),
			DurationDays: 5,
			Status:       model.StatusVisited,
		},
		{
			Number:    2,
			Name:      "London",
			Latitude:  51.5074,
			Longitude: -0.1278,
			Status:    model.StatusNotVisitedYet,
		},
	}

	return &Result{
		Collection: geojson.Build(records),
		Summary:    model.Summarize(records, 2, "trips.txt"),
	}
}

func TestWriteGeoJSON(t *testing.T) {
	result := sampleResult()
	path := filepath.Join(t.TempDir(), "trips.geojson")

	r := NewRenderer(false, true)
	if err := r.WriteGeoJSON(result.Collection, path); err != nil {
		t.Fatalf("WriteGeoJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	// Pretty output is indented and newline-terminated.
	if !strings.Contains(string(data), "\n  \"type\": \"FeatureCollection\"") {
		t.Errorf("output should be indented:\n%s", data)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("output should end with a newline")
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Errorf("len(Features) = %d, want 2", len(fc.Features))
	}
}

func TestWriteGeoJSONCompact(t *testing.T) {
	result := sampleResult()
	path := filepath.Join(t.TempDir(), "trips.geojson")

	r := NewRenderer(true, true)
	if err := r.WriteGeoJSON(result.Collection, path); err != nil {
		t.Fatalf("WriteGeoJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	doc := strings.TrimSuffix(string(data), "\n")
	if strings.ContainsAny(doc, "\n") {
		t.Errorf("compact output should be a single line:\n%s", data)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestWriteMarkdown(t *testing.T) {
	result := sampleResult()
	path := filepath.Join(t.TempDir(), "trips.md")

	r := NewRenderer(false, true)
	if err := r.WriteMarkdown(result, path); err != nil {
		t.Fatalf("WriteMarkdown returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	report := string(data)

	for _, want := range []string{
		"# Travel Points: trips.txt",
		"## Summary",
		"## Points",
		"| 1 | San Francisco |",
		"| 2 | London |",
		"2024-01-15",
		"not_visited_yet",
		"Generated by waymark",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report should contain %q:\n%s", want, report)
		}
	}

	// London has no dates; the table shows dashes instead.
	if !strings.Contains(report, "| - | - | 0 |") {
		t.Errorf("report should dash out absent dates:\n%s", report)
	}
}

func TestWriteMarkdownNoFooter(t *testing.T) {
	result := sampleResult()
	path := filepath.Join(t.TempDir(), "trips.md")

	r := NewRenderer(false, false)
	if err := r.WriteMarkdown(result, path); err != nil {
		t.Fatalf("WriteMarkdown returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), "Generated by waymark") {
		t.Error("footer should be omitted")
	}
}

func TestRenderResult(t *testing.T) {
	result := sampleResult()
	dir := t.TempDir()
	geoPath := filepath.Join(dir, "trips.geojson")
	mdPath := filepath.Join(dir, "trips.md")

	p := NewPipeline(model.DefaultConfig())
	if err := p.RenderResult(result, geoPath, mdPath, false); err != nil {
		t.Fatalf("RenderResult returned error: %v", err)
	}

	if _, err := os.Stat(geoPath); err != nil {
		t.Errorf("GeoJSON file missing: %v", err)
	}
	if _, err := os.Stat(mdPath); err != nil {
		t.Errorf("Markdown file missing: %v", err)
	}
}
