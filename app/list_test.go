package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/marathon/internal/session"
	"github.com/ayoisaiah/marathon/internal/testutil"
)

var sampleRecords = []session.Record{
	{Date: "2024/3/1", StartTime: "09:00", Duration: 3600, Progress: 5},
	{Date: "2024/3/1", StartTime: "14:30", Duration: 1800, Progress: 7.5},
	{Date: "2024/3/2", StartTime: "08:15", Duration: 6600, Progress: 16.7},
	{Date: "2024/3/4", StartTime: "20:05", Duration: 59, Progress: 16.8},
}

func TestFilterSince(t *testing.T) {
	testCases := []struct {
		Since time.Time
		Name  string
		Want  []session.Record
	}{
		{
			Name: "zero time keeps everything",
			Want: sampleRecords,
		},
		{
			Name:  "same day counts from midnight",
			Since: time.Date(2024, time.March, 2, 15, 0, 0, 0, time.Local),
			Want:  sampleRecords[2:],
		},
		{
			Name:  "after every session",
			Since: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local),
			Want:  []session.Record{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := filterSince(sampleRecords, tc.Since)

			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Fatalf("filterSince() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterSinceDropsMalformedDates(t *testing.T) {
	records := []session.Record{
		{Date: "yesterday", StartTime: "09:00", Duration: 60},
		{Date: "2024/3/9", StartTime: "09:00", Duration: 60},
	}

	got := filterSince(records, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local))

	assert.Equal(t, records[1:], got)
}

func TestWriteSessionsJSON(t *testing.T) {
	var buf bytes.Buffer

	err := writeSessions(&buf, sampleRecords, formatJSON)
	if err != nil {
		t.Fatal(err)
	}

	testutil.CompareGoldenFile(t, "sessions_json", buf.Bytes())
}

func TestWriteSessionsYAML(t *testing.T) {
	var buf bytes.Buffer

	err := writeSessions(&buf, sampleRecords[:1], formatYAML)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	assert.Contains(t, out, "date: 2024/3/1")
	assert.Contains(t, out, "start_time: \"09:00\"")
	assert.Contains(t, out, "duration: 3600")
	assert.Contains(t, out, "progress: 5")
}

func TestWriteSessionsTable(t *testing.T) {
	var buf bytes.Buffer

	err := writeSessions(&buf, sampleRecords, formatTable)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	assert.Contains(t, out, "DURATION")
	assert.Contains(t, out, "1h 0m")
	assert.Contains(t, out, "1h 50m")
	assert.Contains(t, out, "0m")
	assert.Contains(t, out, "16.8%")
}

func TestWriteSessionsEmpty(t *testing.T) {
	var buf bytes.Buffer

	err := writeSessions(&buf, nil, formatTable)
	if err != nil {
		t.Fatal(err)
	}

	assert.Contains(t, buf.String(), noSessionsMsg)
}
