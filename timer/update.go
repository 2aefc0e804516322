package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/marathon/countdown"
)

// handleTimerTick advances the countdown by one second for every tick the
// clock accepts.
func (t *Timer) handleTimerTick(msg btimer.TickMsg) (tea.Model, tea.Cmd) {
	if msg.ID != t.clock.ID() {
		return t, nil
	}

	before := t.clock.Timeout

	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	if t.clock.Timeout >= before {
		return t, cmd
	}

	t.ctrl.Tick()
	t.updateStatus()

	return t, tea.Batch(cmd, t.handleEvents())
}

// handleAutosave persists the countdown on the autosave interval.
func (t *Timer) handleAutosave() (tea.Model, tea.Cmd) {
	if t.ctrl.State() != countdown.Running {
		return t, t.autosave()
	}

	_ = t.ctrl.Persist()

	return t, tea.Batch(t.autosave(), t.handleEvents())
}

// scheduled reports whether msg comes from one of the model's own timers.
// These keep firing while the reset confirmation is shown.
func scheduled(msg tea.Msg) bool {
	switch msg.(type) {
	case btimer.TickMsg, btimer.StartStopMsg, btimer.TimeoutMsg,
		autosaveMsg, dismissNoticeMsg, celebrateMsg, progress.FrameMsg:
		return true
	}

	return false
}

// handleConfirm forwards messages to the reset confirmation form.
func (t *Timer) handleConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			t.confirm = nil
			return t, t.quit()
		case key.Matches(keyMsg, t.keys.esc):
			t.confirm = nil
			return t, nil
		}
	}

	form, cmd := t.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.confirm = f
	}

	switch t.confirm.State {
	case huh.StateCompleted:
		t.confirm = nil

		if t.confirmed {
			return t, t.reset()
		}

		return t, nil
	case huh.StateAborted:
		t.confirm = nil

		return t, nil
	case huh.StateNormal:
	}

	return t, cmd
}

// askReset shows the reset confirmation form.
func (t *Timer) askReset() tea.Cmd {
	t.confirmed = false

	t.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset the countdown?").
				Description("All progress and recorded sessions will be lost.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&t.confirmed),
		),
	).WithShowHelp(false)

	return t.confirm.Init()
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.quit):
		return t, t.quit()

	case key.Matches(msg, t.keys.enter), key.Matches(msg, t.keys.esc):
		t.dialog = false

		return t, nil

	case key.Matches(msg, t.keys.togglePlay):
		switch t.ctrl.State() {
		case countdown.Running:
			return t, t.pause()
		case countdown.Idle, countdown.Paused:
			return t, t.start()
		case countdown.Completed:
		}

		return t, nil

	case key.Matches(msg, t.keys.reset):
		return t, t.askReset()
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug("update", slog.String("msg", spew.Sdump(msg)))
	}

	if t.confirm != nil && !scheduled(msg) {
		return t.handleConfirm(msg)
	}

	switch msg := msg.(type) {
	case btimer.TickMsg:
		return t.handleTimerTick(msg)

	case btimer.StartStopMsg:
		var cmd tea.Cmd
		t.clock, cmd = t.clock.Update(msg)

		return t, cmd

	case btimer.TimeoutMsg:
		return t, nil

	case autosaveMsg:
		return t.handleAutosave()

	case dismissNoticeMsg:
		if msg.id == t.notice.id {
			t.notice = notice{}
		}

		return t, nil

	case celebrateMsg:
		if t.celebrate < 0 {
			return t, nil
		}

		t.celebrate++
		if t.celebrate >= len(celebrationFrames) {
			t.celebrate = -1
			return t, nil
		}

		return t, t.celebrateTick()

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
