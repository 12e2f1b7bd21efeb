package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_FormatTimeSpan(t *testing.T) {
	start := time.Date(2016, time.January, 19, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{
			name:     "zero duration",
			start:    start,
			end:      start,
			expected: "00:00:00.000",
		},
		{
			name:     "one hour",
			start:    start,
			end:      time.Date(2016, time.January, 19, 11, 0, 0, 0, time.UTC),
			expected: "01:00:00.000",
		},
		{
			name:     "thirty minutes",
			start:    start,
			end:      time.Date(2016, time.January, 19, 10, 30, 0, 0, time.UTC),
			expected: "00:30:00.000",
		},
		{
			name:     "twenty seconds",
			start:    start,
			end:      time.Date(2016, time.January, 19, 10, 0, 20, 0, time.UTC),
			expected: "00:00:20.000",
		},
		{
			name:     "milliseconds only",
			start:    start,
			end:      time.Date(2016, time.January, 19, 10, 0, 0, 250000000, time.UTC),
			expected: "00:00:00.250",
		},
		{
			name:     "all components",
			start:    start,
			end:      time.Date(2016, time.January, 19, 15, 20, 10, 453000000, time.UTC),
			expected: "05:20:10.453",
		},
		{
			name:     "hours wrap at twenty four",
			start:    start,
			end:      time.Date(2016, time.January, 20, 16, 0, 0, 0, time.UTC),
			expected: "06:00:00.000",
		},
		{
			name:     "exactly one day",
			start:    start,
			end:      time.Date(2016, time.January, 20, 10, 0, 0, 0, time.UTC),
			expected: "00:00:00.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeSpan(tt.start, tt.end))
		})
	}
}

func Test_FormatTimeSpan_ReversedArgumentsFormatTheAbsoluteSpan(t *testing.T) {
	start := time.Date(2016, time.January, 19, 10, 0, 0, 0, time.UTC)
	end := time.Date(2016, time.January, 19, 15, 20, 10, 453000000, time.UTC)

	assert.Equal(t, FormatTimeSpan(start, end), FormatTimeSpan(end, start))
	assert.Equal(t, "05:20:10.453", FormatTimeSpan(end, start))
}

func Test_FormatTimeSpan_ComparesInstantsNotWallClocks(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	start := time.Date(2016, time.January, 19, 11, 0, 0, 0, cet) // 10:00:00 UTC
	end := time.Date(2016, time.January, 19, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "00:30:00.000", FormatTimeSpan(start, end))
}
