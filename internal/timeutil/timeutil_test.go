package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	testCases := []struct {
		Input int
		Want  string
	}{
		{Input: 72000, Want: "20:00:00"},
		{Input: 3600, Want: "01:00:00"},
		{Input: 3599, Want: "00:59:59"},
		{Input: 61, Want: "00:01:01"},
		{Input: 0, Want: "00:00:00"},
		{Input: -4, Want: "00:00:00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, Clock(tc.Input))
	}
}

func TestHoursMins(t *testing.T) {
	assert.Equal(t, "20h 0m", HoursMins(72000))
	assert.Equal(t, "0h 0m", HoursMins(59))
	assert.Equal(t, "19h 58m", HoursMins(71999-60))
}

func TestRoundToStart(t *testing.T) {
	in := time.Date(2026, 10, 15, 13, 45, 10, 5, time.UTC)

	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), RoundToStart(in))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2 days ago", now)

	assert.NoError(t, err)
	assert.WithinDuration(t, now.Add(-48*time.Hour), got, time.Minute)
}
