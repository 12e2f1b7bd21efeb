package datetime

import (
	"errors"
	"strings"
	"time"
)

// ErrUnparsableDateString is returned by ParseRFC2822 and ParseISO8601 when no known layout matches the input.
var ErrUnparsableDateString = errors.New("date string is not parsable")

// rfc2822Layouts are the accepted shapes of the RFC-2822 date family, tried in order.
// The "GMT-07" and "GMT-0700" entries match a literal "GMT" followed by a numeric offset,
// as in "Sun, 17 May 1998 03:00:00 GMT+01". They must run before the MST-based layouts:
// the MST token also consumes "GMT+01" but keeps the wall clock as the instant instead
// of applying the offset. The long-month entries cover the loose human-written form
// "December 17, 1995 03:24:00".
var rfc2822Layouts = []string{
	"Mon, 2 Jan 2006 15:04:05 GMT-0700",
	"Mon, 2 Jan 2006 15:04:05 GMT-07",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
}

// iso8601Layouts are the accepted shapes of ISO-8601 extended format, tried in order.
// Fractional seconds are optional in every layout that names them; a missing zone
// designator means UTC.
var iso8601Layouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseRFC2822 parses a date string in the RFC 2822 family of formats, e.g.
// "Tue, 26 Jan 2016 13:48:02 GMT", "Sun, 17 May 1998 03:00:00 GMT+01" or the
// loosely formatted "December 17, 1995 03:24:00" (interpreted as UTC).
//
// Returns the zero time.Time and ErrUnparsableDateString when no layout matches.
func ParseRFC2822(text string) (time.Time, error) {
	return parseWithLayouts(text, rfc2822Layouts)
}

// ParseISO8601 parses a date string in ISO 8601 extended format, with a "Z"
// designator, an explicit offset, no zone at all (interpreted as UTC), or a
// date-only form, e.g. "2016-01-19T16:07:37+00:00" or "2016-01-19T08:07:37Z".
//
// Returns the zero time.Time and ErrUnparsableDateString when no layout matches.
func ParseISO8601(text string) (time.Time, error) {
	return parseWithLayouts(text, iso8601Layouts)
}

func parseWithLayouts(text string, layouts []string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, ErrUnparsableDateString
	}

	for _, layout := range layouts {
		parsed, parseErr := time.Parse(layout, trimmed)
		if parseErr == nil {
			return parsed, nil
		}
	}

	return time.Time{}, ErrUnparsableDateString
}
