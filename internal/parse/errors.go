package parse

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Wrapped by FieldError so callers can branch
// with errors.Is.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidDateRange  = errors.New("invalid date range")
)

// FieldError reports a validation failure for one field of one record,
// with enough context to correct the input and rerun.
type FieldError struct {
	Line   int    // 1-based input line, 0 for interactive entries
	Field  string // "latitude", "longitude", "start_date", "end_date"
	Value  string // the offending raw value
	Kind   error  // one of the Err* sentinels
	Detail string // what exactly was wrong with the value
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}
