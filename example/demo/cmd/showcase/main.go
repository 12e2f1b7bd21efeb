// Package main walks through every operation of the datetime package with the
// example inputs from its documentation.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/chronokit/chronokit-go/datetime"
)

func main() {
	occurredAt, err := datetime.ParseRFC2822("Tue, 26 Jan 2016 13:48:02 GMT")
	if err != nil {
		log.Fatalf("Failed to parse RFC-2822 date: %v", err)
	}
	fmt.Printf("RFC-2822 parsed: %v\n", occurredAt)

	startedAt, err := datetime.ParseISO8601("2016-01-19T16:07:37+00:00")
	if err != nil {
		log.Fatalf("Failed to parse ISO-8601 date: %v", err)
	}
	fmt.Printf("ISO-8601 parsed: %v\n", startedAt)

	for _, year := range []int{1900, 2000, 2012, 2015} {
		date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		fmt.Printf("%d leap year: %t\n", year, datetime.IsLeapYear(date))
	}

	fmt.Printf("Span between the parsed dates: %s\n", datetime.FormatTimeSpan(startedAt, occurredAt))

	for _, hour := range []int{0, 3, 18, 21} {
		date := time.Date(2016, time.January, 19, hour, 0, 0, 0, time.UTC)
		fmt.Printf("Clock angle at %02d:00 UTC: %.6f rad\n", hour, datetime.ClockAngle(date))
	}

	spanJSON, err := datetime.SpanFromTimes(startedAt, occurredAt).ToJSON()
	if err != nil {
		log.Fatalf("Failed to serialize span: %v", err)
	}
	fmt.Printf("Span as JSON: %s\n", spanJSON)
}
