package model

// Status classifies a location by its travel dates.
type Status string

const (
	// StatusVisited marks a completed stay of at least one full day.
	StatusVisited Status = "visited"

	// StatusSameDayVisit marks arrival and departure on the same date.
	StatusSameDayVisit Status = "same_day_visit"

	// StatusNotVisitedYet marks a location without a usable date pair.
	StatusNotVisitedYet Status = "not_visited_yet"
)

func (s Status) String() string {
	return string(s)
}

// StatusOf derives the visit status from a date pair. hasDates is true
// only when both travel dates were supplied; durationDays is ignored
// otherwise.
func StatusOf(hasDates bool, durationDays int) Status {
	switch {
	case !hasDates:
		return StatusNotVisitedYet
	case durationDays > 0:
		return StatusVisited
	default:
		return StatusSameDayVisit
	}
}

// LocationRecord is one validated coordinate entry with its derived
// fields filled in.
type LocationRecord struct {
	Number       int     // 1-based position among the valid records
	Name         string  // user label or generated placeholder
	Latitude     float64 // decimal degrees, [-90, 90]
	Longitude    float64 // decimal degrees, [-180, 180]
	StartDate    Date    // zero when not supplied
	EndDate      Date    // zero when not supplied
	DurationDays int     // whole days between the dates, 0 without a pair
	Status       Status
}

// HasDates reports whether both travel dates were supplied.
func (r LocationRecord) HasDates() bool {
	return !r.StartDate.IsZero() && !r.EndDate.IsZero()
}

// ValidLatitude reports whether v is a usable latitude in decimal
// degrees.
func ValidLatitude(v float64) bool {
	return v >= -90 && v <= 90
}

// ValidLongitude reports whether v is a usable longitude in decimal
// degrees.
func ValidLongitude(v float64) bool {
	return v >= -180 && v <= 180
}
