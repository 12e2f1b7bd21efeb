package datetime

import (
	"math"
	"time"
)

// ClockAngle returns the angle between the hour and minute hands of a 12-hour
// analog clock face at the UTC wall-clock time of t, in radians. The result is
// always the smaller of the two possible angles, in the range [0, π].
// Seconds and sub-second components are ignored.
func ClockAngle(t time.Time) float64 {
	utc := t.UTC()

	return clockAngleRadians(utc.Hour(), utc.Minute())
}

func clockAngleRadians(hour int, minute int) float64 {
	hour %= 12
	if minute == 60 {
		minute = 0
		hour = (hour + 1) % 12
	}

	// The hour hand advances 0.5 degrees per minute since the last 12 o'clock,
	// the minute hand 6 degrees per minute.
	hourAngle := 0.5 * float64(hour*60+minute)
	minuteAngle := 6.0 * float64(minute)

	raw := math.Mod(math.Abs(hourAngle-minuteAngle), 360)
	degrees := math.Min(360-raw, raw)

	// Converting to radians only once, at the very end, keeps the floating-point
	// error of the conversion out of the degree arithmetic.
	return math.Abs(degrees * (math.Pi / 180))
}
