package geojson

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/avoronov/waymark/internal/model"
)

func TestBuild(t *testing.T) {
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

	fc := Build(records)

	if fc.Type != "FeatureCollection" {
		t.Errorf("Type = %q, want FeatureCollection", fc.Type)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("len(Features) = %d, want 2", len(fc.Features))
	}

	sf := fc.Features[0]
	if sf.Type != "Feature" || sf.Geometry.Type != "Point" {
		t.Errorf("feature types = %q/%q, want Feature/Point", sf.Type, sf.Geometry.Type)
	}
	if len(sf.Geometry.Coordinates) != 2 ||
		sf.Geometry.Coordinates[0] != -122.4194 ||
		sf.Geometry.Coordinates[1] != 37.7749 {
		t.Errorf("Coordinates = %v, want [-122.4194 37.7749]", sf.Geometry.Coordinates)
	}
	if sf.Properties.StartDate != "2024-01-15" || sf.Properties.EndDate != "2024-01-20" {
		t.Errorf("dates = %q/%q, want 2024-01-15/2024-01-20", sf.Properties.StartDate, sf.Properties.EndDate)
	}
	if sf.Properties.DurationDays != 5 || sf.Properties.Status != model.StatusVisited {
		t.Errorf("derived = %d/%q, want 5/visited", sf.Properties.DurationDays, sf.Properties.Status)
	}

	wantBBox := []float64{-122.4194, 37.7749, -0.1278, 51.5074}
	if len(fc.BBox) != 4 {
		t.Fatalf("BBox = %v, want %v", fc.BBox, wantBBox)
	}
	for i, v := range wantBBox {
		if fc.BBox[i] != v {
			t.Errorf("BBox[%d] = %g, want %g", i, fc.BBox[i], v)
		}
	}
}

// Absent dates must disappear from the JSON entirely while
// duration_days stays numeric, so map consumers never see null.
func TestBuildOmitsAbsentDates(t *testing.T) {
	records := []model.LocationRecord{
		{
			Number:    1,
			Name:      "London",
			Latitude:  51.5074,
			Longitude: -0.1278,
			Status:    model.StatusNotVisitedYet,
		},
	}

	data, err := json.Marshal(Build(records))
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	doc := string(data)

	if strings.Contains(doc, "start_date") || strings.Contains(doc, "end_date") {
		t.Errorf("document should omit absent dates: %s", doc)
	}
	if strings.Contains(doc, "null") {
		t.Errorf("document should contain no null members: %s", doc)
	}
	if !strings.Contains(doc, `"duration_days":0`) {
		t.Errorf("document should keep duration_days at 0: %s", doc)
	}
	if !strings.Contains(doc, `"status":"not_visited_yet"`) {
		t.Errorf("document should carry the status label: %s", doc)
	}
}

func TestBuildPropertyOrder(t *testing.T) {
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
	}

	data, err := json.Marshal(Build(records))
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	doc := string(data)

	order := []string{`"number"`, `"name"`, `"latitude"`, `"longitude"`, `"start_date"`, `"end_date"`, `"duration_days"`, `"status"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(doc, key)
		if idx < 0 {
			t.Fatalf("document missing %s: %s", key, doc)
		}
		if idx < last {
			t.Errorf("%s appears out of order", key)
		}
		last = idx
	}
}

func TestBuildEmpty(t *testing.T) {
	fc := Build(nil)

	if fc.BBox != nil {
		t.Errorf("BBox = %v, want nil for an empty set", fc.BBox)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if !strings.Contains(string(data), `"features":[]`) {
		t.Errorf("empty collection should marshal features as [], got %s", data)
	}
}

func TestBuildRoundTrip(t *testing.T) {
	records := []model.LocationRecord{
		{
			Number:       1,
			Name:         "Tokyo",
			Latitude:     35.6762,
			Longitude:    139.6503,
			StartDate:    model.NewDate(2024, time.March, 2),
			EndDate:      model.NewDate(2024, time.March, 2),
			DurationDays: 0,
			Status:       model.StatusSameDayVisit,
		},
	}

	data, err := json.MarshalIndent(Build(records), "", "  ")
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	var decoded FeatureCollection
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if len(decoded.Features) != 1 {
		t.Fatalf("len(Features) = %d, want 1", len(decoded.Features))
	}
	got := decoded.Features[0].Properties
	if got.Name != "Tokyo" || got.Status != model.StatusSameDayVisit || got.DurationDays != 0 {
		t.Errorf("round-tripped properties = %+v", got)
	}
}
