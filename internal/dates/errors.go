package dates

import (
	"errors"
	"fmt"
)

// ErrInvalidDateFormat is matched by every InvalidDateFormatError via errors.Is
var ErrInvalidDateFormat = errors.New("invalid date format")

// InvalidDateFormatError represents a date string that is not YYYY-MM, YYYY-MM-DD or RFC3339
type InvalidDateFormatError struct {
	Value string
	Cause error
}

func (e *InvalidDateFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid date format %q: %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("invalid date format %q", e.Value)
}

func (e *InvalidDateFormatError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidDateFormat
func (e *InvalidDateFormatError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}

// RangeError represents a date range whose end falls before its start
type RangeError struct {
	Start YearMonth
	End   YearMonth
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid date range: end %s is before start %s", e.End, e.Start)
}
