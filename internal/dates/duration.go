package dates

import "fmt"

// Duration is a span of whole months split into years and remaining months
type Duration struct {
	Years  int
	Months int
}

// Between returns the whole-month span from start to end. Days of month are ignored, so
// 2020-01-31 to 2020-02-01 counts as one month.
func Between(start, end YearMonth) (Duration, error) {
	total := start.MonthsUntil(end)
	if total < 0 {
		return Duration{}, &RangeError{Start: start, End: end}
	}
	return Duration{Years: total / 12, Months: total % 12}, nil
}

// String renders the span as "N month(s)", "N year(s)" or "N year(s) M month(s)"
func (d Duration) String() string {
	switch {
	case d.Years == 0:
		return plural(d.Months, "month")
	case d.Months == 0:
		return plural(d.Years, "year")
	default:
		return plural(d.Years, "year") + " " + plural(d.Months, "month")
	}
}

// CalculateDuration renders the span between two CV dates. A nil or empty end runs until
// clock.Now(); a nil clock reads the wall clock.
func CalculateDuration(start string, end *string, clock Clock) (string, error) {
	from, err := ParseYearMonth(start)
	if err != nil {
		return "", err
	}

	var to YearMonth
	if end == nil || *end == "" {
		to = NewYearMonth(orSystem(clock).Now())
	} else {
		to, err = ParseYearMonth(*end)
		if err != nil {
			return "", err
		}
	}

	d, err := Between(from, to)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
