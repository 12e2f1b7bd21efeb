package datetime

import (
	"time"
)

// IsLeapYear reports whether the calendar year of t is a Gregorian leap year.
// Only the year component of t is consulted. The textbook rule applies,
// including the century exception and the 400-year override: 1900 is not a
// leap year, 2000 is.
func IsLeapYear(t time.Time) bool {
	year := t.Year()

	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
