// Package stats derives study statistics from the countdown state
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/session"
	"github.com/ayoisaiah/marathon/internal/timeutil"
	"github.com/ayoisaiah/marathon/internal/ui"
)

const (
	barChartChar = "▇"

	// RecentLimit is the number of sessions listed as recent.
	RecentLimit = 10
)

// Day is the study time logged on a single date.
type Day struct {
	Date    string `json:"date"`
	Seconds int    `json:"seconds"`
}

// Stats is a summary of the countdown state. All durations are in seconds.
type Stats struct {
	Total        int              `json:"total"`
	Studied      int              `json:"studied"`
	Remaining    int              `json:"remaining"`
	Progress     session.Progress `json:"progress"`
	SessionCount int              `json:"sessionCount"`
	Average      int              `json:"averageDuration"`
	Days         int              `json:"days"`
	Completed    bool             `json:"completed"`
	Daily        []Day            `json:"daily"`
	Recent       []session.Record `json:"recent"`
}

// Compute derives the statistics for a countdown of total seconds with
// remaining seconds left and the given recorded sessions.
func Compute(total, remaining int, sessions []session.Record) Stats {
	s := Stats{
		Total:        total,
		Remaining:    remaining,
		Studied:      total - remaining,
		Progress:     session.NewProgress(total, remaining),
		SessionCount: len(sessions),
		Completed:    remaining == 0,
		Daily:        []Day{},
		Recent:       session.Recent(sessions, RecentLimit),
	}

	index := make(map[string]int)

	var sum int

	for _, r := range sessions {
		sum += r.Duration

		i, ok := index[r.Date]
		if !ok {
			i = len(s.Daily)
			index[r.Date] = i

			s.Daily = append(s.Daily, Day{Date: r.Date})
		}

		s.Daily[i].Seconds += r.Duration
	}

	if len(sessions) > 0 {
		s.Average = int(math.Round(float64(sum) / float64(len(sessions))))
	}

	s.Days = len(s.Daily)
	if s.Completed && s.Days == 0 {
		s.Days = 1
	}

	return s
}

// FromSnapshot computes the statistics for a persisted snapshot.
func FromSnapshot(snap models.Snapshot, total int) Stats {
	return Compute(total, snap.RemainingSeconds, snap.Sessions)
}

// ToJSON returns the indented JSON representation of the statistics.
func (s Stats) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// getSummary renders the headline numbers.
func getSummary(s Stats) string {
	header := fmt.Sprintf("%s\n", ui.Milestone("Summary"))

	var b strings.Builder

	b.WriteString(header)
	fmt.Fprintln(&b, "Time studied:", ui.Value(timeutil.HoursMins(s.Studied)))
	fmt.Fprintln(&b, "Time remaining:", ui.Value(timeutil.HoursMins(s.Remaining)))
	fmt.Fprintln(&b, "Progress:", ui.Value(s.Progress.String()+"%"))
	fmt.Fprintln(&b, "Sessions:", ui.Value(s.SessionCount))
	fmt.Fprintln(&b, "Average session:", ui.Value(timeutil.HoursMins(s.Average)))
	fmt.Fprintln(&b, "Study days:", ui.Value(s.Days))

	return b.String()
}

// getBarChart renders the time studied per day.
func getBarChart(days []Day) string {
	if len(days) == 0 {
		return ""
	}

	var bars pterm.Bars

	for _, d := range days {
		mins := int((time.Duration(d.Seconds) * time.Second).Minutes())

		bars = append(bars, pterm.Bar{
			Label: d.Date + " (" + timeutil.HoursMins(d.Seconds) + ")",
			Value: mins,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue(false).
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return fmt.Sprintf("\n%s\n%s", ui.Milestone("Daily"), chart)
}

// RecentTable returns the table rows for the recent sessions, header first.
func RecentTable(records []session.Record) [][]string {
	data := [][]string{{"#", "DATE", "START", "DURATION", "PROGRESS"}}

	for i, r := range records {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			r.Date,
			r.StartTime,
			r.DurationText(),
			r.Progress.String() + "%",
		})
	}

	return data
}

// Show writes the statistics to w.
func Show(w io.Writer, s Stats) error {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Study target: %s", timeutil.HoursMins(s.Total))

	output := fmt.Sprint(
		header,
		getSummary(s),
		getBarChart(s.Daily),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))

	if len(s.Recent) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\n%s\n", ui.Milestone("Recent sessions"))

	return ui.Table(w, RecentTable(s.Recent))
}
