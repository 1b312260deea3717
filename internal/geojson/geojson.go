// Package geojson assembles RFC 7946 documents from location records.
package geojson

import (
	"github.com/avoronov/waymark/internal/model"
)

// FeatureCollection is the top-level GeoJSON document.
type FeatureCollection struct {
	Type     string    `json:"type"`
	BBox     []float64 `json:"bbox,omitempty"` // [minLon, minLat, maxLon, maxLat]
	Features []Feature `json:"features"`
}

// Feature is one point with its attributes.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry holds the point position.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat] per RFC 7946
}

// Properties carries the record attributes in a fixed member order.
// Absent dates are omitted entirely rather than written as null.
// DurationDays is always present, 0 when no usable date pair exists, so
// styling expressions can treat it as numeric without guards.
type Properties struct {
	Number       int          `json:"number"`
	Name         string       `json:"name"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	StartDate    string       `json:"start_date,omitempty"`
	EndDate      string       `json:"end_date,omitempty"`
	DurationDays int          `json:"duration_days"`
	Status       model.Status `json:"status"`
}

// Build assembles the feature collection for a set of valid records.
// Feature order follows record order, and the collection bbox covers
// every point.
func Build(records []model.LocationRecord) FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(records)),
	}

	for _, rec := range records {
		props := Properties{
			Number:       rec.Number,
			Name:         rec.Name,
			Latitude:     rec.Latitude,
			Longitude:    rec.Longitude,
			DurationDays: rec.DurationDays,
			Status:       rec.Status,
		}
		if !rec.StartDate.IsZero() {
			props.StartDate = rec.StartDate.ISO()
		}
		if !rec.EndDate.IsZero() {
			props.EndDate = rec.EndDate.ISO()
		}

		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{rec.Longitude, rec.Latitude},
			},
			Properties: props,
		})
	}

	if b := model.BoundsOf(records); b != nil {
		fc.BBox = []float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat}
	}

	return fc
}
