package timer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ayoisaiah/marathon/countdown"
	"github.com/ayoisaiah/marathon/internal/session"
	"github.com/ayoisaiah/marathon/internal/timeutil"
	"github.com/ayoisaiah/marathon/stats"
)

// toggleLabel is the help text of the start/pause key for the current state.
func (t *Timer) toggleLabel() string {
	switch t.ctrl.State() {
	case countdown.Running:
		return "pause"
	case countdown.Paused:
		return "resume"
	case countdown.Idle, countdown.Completed:
	}

	return "start"
}

func (t *Timer) statusLine() string {
	var timeFormat string
	if t.cfg.Settings.TwentyFourHour {
		timeFormat = "15:04"
	} else {
		timeFormat = "03:04 PM"
	}

	switch t.ctrl.State() {
	case countdown.Running:
		return t.style.Hint.Render(
			"studying since " + t.ctrl.SessionStart().Format(timeFormat),
		)
	case countdown.Paused:
		return t.style.Secondary.Render("[Paused]")
	case countdown.Completed:
		return t.style.Title.Render("[Completed]")
	case countdown.Idle:
	}

	return t.style.Secondary.Render("[Ready]")
}

func (t *Timer) noticeView() string {
	if t.notice.text == "" {
		return ""
	}

	switch t.notice.kind {
	case noticeWarning:
		return t.style.Warning.Render("⚠ " + t.notice.text)
	case noticeError:
		return t.style.Error.Render("✗ " + t.notice.text)
	case noticeInfo:
	}

	return t.style.Notice.Render(t.notice.text)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	p := t.ctrl.Progress()

	s.WriteString(t.style.Title.Render("MARATHON"))
	s.WriteString(
		t.style.Hint.Render(timeutil.HoursMins(t.ctrl.Total()) + " study target"),
	)
	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(timeutil.Clock(t.ctrl.Remaining())))
	s.WriteString(" ")
	s.WriteString(t.statusLine())
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(float64(p) / 100))
	s.WriteString(t.style.Hint.Render(p.String() + "%"))

	if n := t.noticeView(); n != "" {
		s.WriteString("\n\n" + n)
	}

	return s.String()
}

func (t *Timer) sessionsView() string {
	recent := session.Recent(t.ctrl.Sessions(), stats.RecentLimit)
	if len(recent) == 0 {
		return t.style.Hint.Render("No sessions recorded yet")
	}

	rows := stats.RecentTable(recent)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.style.Hint).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return t.style.Table
		}).
		Headers(rows[0][1:]...)

	for _, row := range rows[1:] {
		tbl.Row(row[1:]...)
	}

	return tbl.String()
}

func (t *Timer) completionView() string {
	s := t.ctrl.Sessions()

	st := stats.Compute(t.ctrl.Total(), t.ctrl.Remaining(), s)

	var b strings.Builder

	if t.celebrate >= 0 && t.celebrate < len(celebrationFrames) {
		b.WriteString(celebrationFrames[t.celebrate] + "\n\n")
	}

	b.WriteString(t.style.Title.Render("Congratulations!"))
	b.WriteString("\n\n")
	b.WriteString(t.style.Secondary.Render(
		"You completed " + timeutil.HoursMins(st.Total) + " of study",
	))
	b.WriteString("\n")
	b.WriteString(t.style.Secondary.Render(
		"across " + strconv.Itoa(st.Days) + " " + plural(st.Days, "day", "days"),
	))
	b.WriteString("\n\n")
	b.WriteString(t.help.ShortHelpView([]key.Binding{
		t.keys.enter,
		t.keys.reset,
		t.keys.quit,
	}))

	return t.style.Dialog.Render(b.String())
}

func (t *Timer) helpView() string {
	t.keys.togglePlay.SetHelp("space", t.toggleLabel())
	t.keys.togglePlay.SetEnabled(t.ctrl.State() != countdown.Completed)

	return t.help.ShortHelpView([]key.Binding{
		t.keys.togglePlay,
		t.keys.reset,
		t.keys.quit,
	})
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}

func (t *Timer) View() string {
	if t.confirm != nil {
		return t.style.Base.Render(t.timerView() + "\n\n" + t.confirm.View())
	}

	if t.dialog {
		return t.style.Base.Render(t.completionView())
	}

	view := t.timerView() +
		"\n\n" + t.sessionsView() +
		"\n\n" + t.helpView()

	return t.style.Base.Render(view)
}
