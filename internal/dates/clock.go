package dates

import "time"

// Clock supplies the current time for computations that default to "now"
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock time.Time

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// orSystem returns c, or SystemClock when c is nil
func orSystem(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}
	return c
}
