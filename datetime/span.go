package datetime

import (
	"fmt"
	"time"
)

// FormatTimeSpan formats the span between start and end as "HH:mm:ss.sss":
// milliseconds padded to 3 digits, seconds and minutes to 2, and hours as the
// total elapsed hours modulo 24. Hours do not roll over into a day field, so
// a 30-hour span formats as "06:00:00.000".
//
// The span is the difference of the two epoch-millisecond instants, decomposed
// by successive division; no calendar-aware duration logic is involved. When
// end precedes start the absolute difference is formatted, so the result is
// always well-formed but carries no sign.
func FormatTimeSpan(start, end time.Time) string {
	diffMillis := end.UnixMilli() - start.UnixMilli()
	if diffMillis < 0 {
		diffMillis = -diffMillis
	}

	millis := diffMillis % 1000
	totalSeconds := diffMillis / 1000
	seconds := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := (totalMinutes / 60) % 24

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
