// Package parse turns raw coordinate input into validated location
// records. Both input modes, file and interactive, feed the same
// parser so validation cannot drift between them.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avoronov/waymark/internal/model"
)

// Input fields in order. Name and the two dates are optional.
const (
	fieldLatitude  = "latitude"
	fieldLongitude = "longitude"
	fieldStartDate = "start_date"
	fieldEndDate   = "end_date"
)

// Parser validates one raw record at a time. It holds no state between
// records, so a single instance serves a whole run.
type Parser struct {
	namePrefix string
}

// NewParser returns a parser that labels unnamed records with
// namePrefix plus the record's sequence number.
func NewParser(namePrefix string) *Parser {
	if namePrefix == "" {
		namePrefix = "Point"
	}
	return &Parser{namePrefix: namePrefix}
}

// ParseLine splits a comma-delimited record line and validates it.
// number is the 1-based position the record will take among the valid
// records; line is the source line for error context, 0 for
// interactive entries.
func (p *Parser) ParseLine(text string, number, line int) (model.LocationRecord, error) {
	fields := strings.Split(text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return p.ParseFields(fields, number, line)
}

// ParseFields validates the fields of one record, in the order
// latitude, longitude, name, start date, end date. Trailing fields may
// be omitted; anything past the fifth is ignored.
func (p *Parser) ParseFields(fields []string, number, line int) (model.LocationRecord, error) {
	var rec model.LocationRecord

	if len(fields) < 2 {
		return rec, &FieldError{
			Line:   line,
			Field:  "coordinates",
			Value:  strings.Join(fields, ","),
			Kind:   ErrInvalidCoordinate,
			Detail: "need at least latitude and longitude",
		}
	}

	lat, err := p.coordinate(fields[0], fieldLatitude, line, model.ValidLatitude, "[-90, 90]")
	if err != nil {
		return rec, err
	}
	lon, err := p.coordinate(fields[1], fieldLongitude, line, model.ValidLongitude, "[-180, 180]")
	if err != nil {
		return rec, err
	}

	name := ""
	if len(fields) > 2 {
		name = fields[2]
	}
	if name == "" {
		name = fmt.Sprintf("%s %d", p.namePrefix, number)
	}

	var start, end model.Date
	if len(fields) > 3 {
		if start, err = p.date(fields[3], fieldStartDate, line); err != nil {
			return rec, err
		}
	}
	if len(fields) > 4 {
		if end, err = p.date(fields[4], fieldEndDate, line); err != nil {
			return rec, err
		}
	}

	duration := 0
	hasDates := !start.IsZero() && !end.IsZero()
	if hasDates {
		duration = model.DaysBetween(start, end)
		if duration < 0 {
			return rec, &FieldError{
				Line:   line,
				Field:  fieldEndDate,
				Value:  fields[4],
				Kind:   ErrInvalidDateRange,
				Detail: fmt.Sprintf("ends %s before start %s", end.ISO(), start.ISO()),
			}
		}
	}

	rec = model.LocationRecord{
		Number:       number,
		Name:         name,
		Latitude:     lat,
		Longitude:    lon,
		StartDate:    start,
		EndDate:      end,
		DurationDays: duration,
		Status:       model.StatusOf(hasDates, duration),
	}
	return rec, nil
}

func (p *Parser) coordinate(raw, field string, line int, valid func(float64) bool, bounds string) (float64, error) {
	if raw == "" {
		return 0, &FieldError{
			Line:   line,
			Field:  field,
			Value:  raw,
			Kind:   ErrInvalidCoordinate,
			Detail: "missing value",
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{
			Line:   line,
			Field:  field,
			Value:  raw,
			Kind:   ErrInvalidCoordinate,
			Detail: "not a number",
		}
	}
	if !valid(v) {
		return 0, &FieldError{
			Line:   line,
			Field:  field,
			Value:  raw,
			Kind:   ErrInvalidCoordinate,
			Detail: "outside " + bounds,
		}
	}

	return v, nil
}

// date parses an optional compact date field. Empty values and the
// literal "unknown" mean the date was not supplied.
func (p *Parser) date(raw, field string, line int) (model.Date, error) {
	if raw == "" || strings.EqualFold(raw, "unknown") {
		return model.Date{}, nil
	}

	d, err := model.ParseCompactDate(raw)
	if err != nil {
		return model.Date{}, &FieldError{
			Line:   line,
			Field:  field,
			Value:  raw,
			Kind:   ErrInvalidDate,
			Detail: err.Error(),
		}
	}

	return d, nil
}
