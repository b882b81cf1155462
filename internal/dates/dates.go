// Package dates provides year/month parsing and the human-readable date helpers used across the CV.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Present is rendered in place of a missing end date
const Present = "Present"

const (
	layoutYearMonth = "2006-01"
	layoutDate      = "2006-01-02"
)

// YearMonth is a calendar month. Day of month and time of day are never part of a CV date.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth returns the calendar month containing t
func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses YYYY-MM, YYYY-MM-DD or an RFC3339 timestamp, keeping only year and month.
func ParseYearMonth(value string) (YearMonth, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return YearMonth{}, &InvalidDateFormatError{Value: value}
	}

	t, err := time.Parse(layoutFor(trimmed), trimmed)
	if err != nil {
		return YearMonth{}, &InvalidDateFormatError{Value: value, Cause: err}
	}
	return NewYearMonth(t), nil
}

// layoutFor picks the layout whose shape matches value, so parse errors describe the real problem
func layoutFor(value string) string {
	switch len(value) {
	case len(layoutYearMonth):
		return layoutYearMonth
	case len(layoutDate):
		return layoutDate
	default:
		return time.RFC3339
	}
}

// MonthsUntil returns the whole months from ym to other, ignoring days
func (ym YearMonth) MonthsUntil(other YearMonth) int {
	return (other.Year-ym.Year)*12 + int(other.Month-ym.Month)
}

// Before reports whether ym is strictly earlier than other
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.MonthsUntil(other) > 0
}

// String renders ym as YYYY-MM
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Format renders ym as an abbreviated English month and four-digit year, e.g. "Mar 2021"
func (ym YearMonth) Format() string {
	return fmt.Sprintf("%s %04d", ym.Month.String()[:3], ym.Year)
}

// FormatDate renders an optional CV date. A nil or empty date is an ongoing engagement and
// renders as "Present".
func FormatDate(date *string) (string, error) {
	if date == nil || *date == "" {
		return Present, nil
	}

	ym, err := ParseYearMonth(*date)
	if err != nil {
		return "", err
	}
	return ym.Format(), nil
}

// FormatRange renders "start - end" with FormatDate semantics for both ends
func FormatRange(start string, end *string) (string, error) {
	from, err := FormatDate(&start)
	if err != nil {
		return "", err
	}
	to, err := FormatDate(end)
	if err != nil {
		return "", err
	}
	return from + " - " + to, nil
}
