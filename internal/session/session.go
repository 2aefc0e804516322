// Package session defines the study sessions recorded by the countdown
package session

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateFormat is the layout of Record.Date.
	DateFormat = "2006/1/2"
	// StartTimeFormat is the layout of Record.StartTime.
	StartTimeFormat = "15:04"
)

// Progress is the overall countdown progress (in percent) at the moment a
// session ended. Older state files store it as a string, so both forms are
// accepted when decoding.
type Progress float64

// NewProgress computes the progress for a countdown of total seconds with
// remaining seconds left, rounded to one decimal place.
func NewProgress(total, remaining int) Progress {
	if total <= 0 {
		return 0
	}

	p := float64(total-remaining) / float64(total) * 100

	return Progress(math.Round(p*10) / 10)
}

// String formats the progress with one decimal place.
func (p Progress) String() string {
	return strconv.FormatFloat(float64(p), 'f', 1, 64)
}

func (p Progress) MarshalJSON() ([]byte, error) {
	return json.Marshal(math.Round(float64(p)*10) / 10)
}

func (p *Progress) UnmarshalJSON(b []byte) error {
	var f float64

	err := json.Unmarshal(b, &f)
	if err == nil {
		*p = Progress(f)
		return nil
	}

	var s string

	if err = json.Unmarshal(b, &s); err != nil {
		return err
	}

	f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}

	*p = Progress(f)

	return nil
}

// Record represents one contiguous interval of running time.
type Record struct {
	Date      string   `json:"date"      yaml:"date"`
	StartTime string   `json:"startTime" yaml:"start_time"`
	Duration  int      `json:"duration"  yaml:"duration"` // seconds
	Progress  Progress `json:"progress"  yaml:"progress"`
}

// New creates a record for a session that began at start and ended at end.
func New(start, end time.Time, progress Progress) Record {
	return Record{
		Date:      end.Format(DateFormat),
		StartTime: start.Format(StartTimeFormat),
		Duration:  Elapsed(start, end),
		Progress:  progress,
	}
}

// Elapsed returns the number of whole seconds between start and end.
func Elapsed(start, end time.Time) int {
	return int(end.Sub(start) / time.Second)
}

// Valid reports whether the record describes a session that actually ran.
func (r Record) Valid() bool {
	return r.Duration > 0
}

// Day parses the record date in the given location.
func (r Record) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, r.Date, loc)
}

// DurationText renders the session length as hours and minutes, omitting
// the hours for sessions shorter than one hour.
func (r Record) DurationText() string {
	d := time.Duration(r.Duration) * time.Second

	hrs := int(d.Hours())
	mins := int(d.Minutes()) % 60

	if hrs > 0 {
		return strconv.Itoa(hrs) + "h " + strconv.Itoa(mins) + "m"
	}

	return strconv.Itoa(mins) + "m"
}

// Recent returns up to n records, newest first.
func Recent(records []Record, n int) []Record {
	if n > len(records) {
		n = len(records)
	}

	out := make([]Record, 0, n)

	for i := len(records) - 1; i >= len(records)-n; i-- {
		out = append(out, records[i])
	}

	return out
}
