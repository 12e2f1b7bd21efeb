package datetime

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// ErrInvalidTimestampJSON is returned when timestamp or span JSON data is malformed
// or carries a date string neither parser accepts.
var ErrInvalidTimestampJSON = errors.New("timestamp json is not valid")

// timestampJSONLayout is the serialized form of a Timestamp: ISO-8601 in UTC
// with millisecond precision, for a stable representation.
const timestampJSONLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp wraps a time.Time with a textual JSON representation.
//
// It marshals as an ISO-8601 string and unmarshals any date string accepted by
// ParseISO8601 or ParseRFC2822, in that order. The zero Timestamp marshals the
// zero time.Time.
type Timestamp struct {
	t time.Time
}

// TimestampFromTime is a factory method for Timestamp.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{t: t}
}

// TimestampFromJSON is a factory method for Timestamp.
//
// It expects a JSON string carrying an ISO-8601 or RFC-2822 date.
// Returns an error joined with ErrInvalidTimestampJSON if the input is not
// valid JSON or the date string is not parsable.
func TimestampFromJSON(data []byte) (Timestamp, error) {
	timestamp := new(Timestamp)
	if unmarshallingErr := timestamp.UnmarshalJSON(data); unmarshallingErr != nil {
		return Timestamp{}, unmarshallingErr
	}

	return *timestamp, nil
}

// Time returns the wrapped time.Time.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// ToJSON serializes the Timestamp as an ISO-8601 JSON string.
func (ts Timestamp) ToJSON() ([]byte, error) {
	return ts.MarshalJSON()
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(ts.t.UTC().Format(timestampJSONLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var text string
	if unmarshallingErr := jsoniter.ConfigFastest.Unmarshal(data, &text); unmarshallingErr != nil {
		return errors.Join(ErrInvalidTimestampJSON, unmarshallingErr)
	}

	parsed, parseErr := ParseISO8601(text)
	if parseErr != nil {
		parsed, parseErr = ParseRFC2822(text)
	}
	if parseErr != nil {
		return errors.Join(ErrInvalidTimestampJSON, parseErr)
	}

	ts.t = parsed

	return nil
}

// Span is a chronological Start/End pair of Timestamps.
type Span struct {
	Start Timestamp
	End   Timestamp
}

// SpanFromTimes is a factory method for Span.
func SpanFromTimes(start time.Time, end time.Time) Span {
	return Span{
		Start: TimestampFromTime(start),
		End:   TimestampFromTime(end),
	}
}

// SpanFromJSON is a factory method for Span.
//
// It expects a JSON object with Start and End date strings.
// Returns an error joined with ErrInvalidTimestampJSON if the input is not
// valid JSON or either date string is not parsable.
func SpanFromJSON(data []byte) (Span, error) {
	span := new(Span)
	if unmarshallingErr := jsoniter.ConfigFastest.Unmarshal(data, span); unmarshallingErr != nil {
		return Span{}, errors.Join(ErrInvalidTimestampJSON, unmarshallingErr)
	}

	return *span, nil
}

// ToJSON serializes the Span as a JSON object of two ISO-8601 strings.
func (s Span) ToJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(s)
}

// Format renders the span between Start and End as "HH:mm:ss.sss".
func (s Span) Format() string {
	return FormatTimeSpan(s.Start.Time(), s.End.Time())
}
