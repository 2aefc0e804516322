// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToHoursMinsSecs expresses a seconds value in hours, minutes and seconds.
func SecsToHoursMinsSecs(val int) (hrs, mins, secs int) {
	if val < 0 {
		val = 0
	}

	hrs = val / secondsInAnHour
	mins = (val % secondsInAnHour) / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// Clock formats a seconds value as HH:MM:SS.
func Clock(val int) string {
	h, m, s := SecsToHoursMinsSecs(val)

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// HoursMins formats a seconds value as a whole number of hours and minutes
// (e.g. "19h 58m").
func HoursMins(val int) string {
	h, m, _ := SecsToHoursMinsSecs(val)

	return fmt.Sprintf("%dh %dm", h, m)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// FromStr parses an absolute or relative (e.g. "2 days ago") date.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
