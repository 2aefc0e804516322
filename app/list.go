package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/marathon/internal/session"
	"github.com/ayoisaiah/marathon/internal/timeutil"
	"github.com/ayoisaiah/marathon/internal/ui"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
)

type outputFormat int

const (
	formatTable outputFormat = iota
	formatJSON
	formatYAML
)

// filterSince returns the records dated on or after the day of since. The
// zero time keeps every record. Records whose date cannot be parsed are
// dropped.
func filterSince(records []session.Record, since time.Time) []session.Record {
	if since.IsZero() {
		return records
	}

	start := timeutil.RoundToStart(since)

	filtered := make([]session.Record, 0, len(records))

	for _, r := range records {
		day, err := r.Day(since.Location())
		if err != nil || day.Before(start) {
			continue
		}

		filtered = append(filtered, r)
	}

	return filtered
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, records []session.Record) error {
	tableBody := make([][]string, len(records))

	for i, r := range records {
		progress := ui.Value(r.Progress.String() + "%")
		if r.Progress >= 100 {
			progress = ui.Milestone("100% 🏆")
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			r.Date,
			r.StartTime,
			r.DurationText(),
			progress,
		}
	}

	tableBody = append([][]string{
		{"#", "DATE", "START", "DURATION", "PROGRESS"},
	}, tableBody...)

	return ui.Table(w, tableBody)
}

// writeSessions prints the records in the requested format.
func writeSessions(
	w io.Writer,
	records []session.Record,
	format outputFormat,
) error {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err

	case formatYAML:
		b, err := yaml.Marshal(records)
		if err != nil {
			return err
		}

		_, err = w.Write(b)

		return err

	case formatTable:
	}

	if len(records) == 0 {
		pterm.Fprintln(w, pterm.Info.Sprint(noSessionsMsg))
		return nil
	}

	return printSessionsTable(w, records)
}
