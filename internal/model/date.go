package model

import (
	"fmt"
	"time"
)

// compactLayout is the 8-digit day-month-year input encoding,
// e.g. "15012024" for 15 January 2024.
const compactLayout = "02012006"

// isoLayout is the sortable representation written to output properties.
const isoLayout = "2006-01-02"

// Date is a calendar date with whole-day precision, held at UTC
// midnight. The zero value means "no date supplied".
type Date struct {
	t time.Time
}

// NewDate builds a date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseCompactDate parses the compact ddmmyyyy encoding. The input must
// be exactly eight ASCII digits forming a real calendar date. Digits are
// checked up front because time.Parse accepts some shorter numeric
// inputs for padded layouts.
func ParseCompactDate(s string) (Date, error) {
	if len(s) != 8 {
		return Date{}, fmt.Errorf("expected 8 digits (ddmmyyyy), got %d characters", len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Date{}, fmt.Errorf("expected 8 digits (ddmmyyyy), got %q", s)
		}
	}

	t, err := time.Parse(compactLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("not a valid calendar date: %q", s)
	}

	return Date{t: t.UTC()}, nil
}

// IsZero reports whether the date was supplied at all.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// ISO returns the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.t.Format(isoLayout)
}

// Compact returns the date in the ddmmyyyy input encoding, so a parsed
// date round-trips to its original text.
func (d Date) Compact() string {
	return d.t.Format(compactLayout)
}

func (d Date) String() string {
	return d.ISO()
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DaysBetween returns the whole-day difference end - start. Both dates
// sit at UTC midnight, so the division is exact; the result is negative
// when end precedes start. Computed on Unix seconds because a Duration
// caps out near 292 years and eight-digit years reach 9999.
func DaysBetween(start, end Date) int {
	return int((end.t.Unix() - start.t.Unix()) / 86400)
}
