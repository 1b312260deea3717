package model

import "time"

// Summary aggregates one conversion run for console and report output.
type Summary struct {
	Source      string    `json:"source"`       // Input path or "interactive"
	GeneratedAt time.Time `json:"generated_at"` // When the conversion ran

	Total   int `json:"total"`   // Records seen, excluding blank and comment lines
	Valid   int `json:"valid"`   // Records that passed validation
	Skipped int `json:"skipped"` // Records rejected and left out of the document

	Visited       int `json:"visited"`         // Completed stays of at least one day
	SameDayVisits int `json:"same_day_visits"` // Arrivals and departures on one date
	NotVisitedYet int `json:"not_visited_yet"` // Records without a usable date pair

	TotalDays int `json:"total_days"` // Sum of stay durations across all records

	EarliestStart string `json:"earliest_start,omitempty"` // ISO date of the first arrival
	LatestEnd     string `json:"latest_end,omitempty"`     // ISO date of the last departure

	Bounds *Bounds `json:"bounds,omitempty"` // Geographic extent of the valid records
}

// Bounds is the geographic extent of a record set in decimal degrees.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Summarize builds the run summary for a set of valid records. total is
// the number of records seen before validation; the difference to
// len(records) becomes the skipped count.
func Summarize(records []LocationRecord, total int, source string) Summary {
	s := Summary{
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Total:       total,
		Valid:       len(records),
		Skipped:     total - len(records),
	}

	var earliest, latest Date
	for _, rec := range records {
		switch rec.Status {
		case StatusVisited:
			s.Visited++
		case StatusSameDayVisit:
			s.SameDayVisits++
		case StatusNotVisitedYet:
			s.NotVisitedYet++
		}
		s.TotalDays += rec.DurationDays

		if !rec.StartDate.IsZero() && (earliest.IsZero() || rec.StartDate.Before(earliest)) {
			earliest = rec.StartDate
		}
		if !rec.EndDate.IsZero() && (latest.IsZero() || rec.EndDate.After(latest)) {
			latest = rec.EndDate
		}
	}

	if !earliest.IsZero() {
		s.EarliestStart = earliest.ISO()
	}
	if !latest.IsZero() {
		s.LatestEnd = latest.ISO()
	}
	s.Bounds = BoundsOf(records)

	return s
}

// BoundsOf returns the bounding box of the records, or nil for an empty
// set.
func BoundsOf(records []LocationRecord) *Bounds {
	if len(records) == 0 {
		return nil
	}

	b := &Bounds{
		MinLat: records[0].Latitude,
		MaxLat: records[0].Latitude,
		MinLon: records[0].Longitude,
		MaxLon: records[0].Longitude,
	}
	for _, rec := range records[1:] {
		if rec.Latitude < b.MinLat {
			b.MinLat = rec.Latitude
		}
		if rec.Latitude > b.MaxLat {
			b.MaxLat = rec.Latitude
		}
		if rec.Longitude < b.MinLon {
			b.MinLon = rec.Longitude
		}
		if rec.Longitude > b.MaxLon {
			b.MaxLon = rec.Longitude
		}
	}

	return b
}
