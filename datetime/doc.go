// Package datetime provides a small collection of pure date/time utility
// functions over the standard library time.Time type.
//
// Every function is a stateless, single-pass computation: it reads its
// arguments, allocates only its result, performs no I/O and holds no hidden
// state, so concurrent use needs no synchronization.
//
// The package covers:
//   - Parsing RFC-2822 style date strings (ParseRFC2822)
//   - Parsing ISO-8601 extended date strings (ParseISO8601)
//   - Detecting Gregorian leap years (IsLeapYear)
//   - Formatting the span between two instants as "HH:mm:ss.sss" (FormatTimeSpan)
//   - Computing the angle between the hands of an analog clock (ClockAngle)
//
// Key types:
//   - Timestamp: a time.Time wrapper whose JSON form is ISO-8601 text and
//     whose JSON input accepts anything the two parsers accept
//   - Span: a Start/End pair of Timestamps with a Format method
//
// Common usage pattern:
//
//	occurredAt, err := datetime.ParseRFC2822("Tue, 26 Jan 2016 13:48:02 GMT")
//	if err != nil {
//		// handle unparsable input
//	}
//
//	if datetime.IsLeapYear(occurredAt) {
//		// ...
//	}
//
//	elapsed := datetime.FormatTimeSpan(startedAt, occurredAt)
package datetime
