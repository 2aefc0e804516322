// Package timer presents the study countdown, either as an interactive
// terminal UI or as a plain ticking line for headless use
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/marathon/countdown"
	"github.com/ayoisaiah/marathon/internal/config"
	"github.com/ayoisaiah/marathon/internal/timeutil"
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeWarning
	noticeError
)

type notice struct {
	text string
	kind noticeKind
	id   int
}

type (
	autosaveMsg struct{}

	dismissNoticeMsg struct {
		id int
	}

	celebrateMsg struct{}
)

// Options configures the terminal UI.
type Options struct {
	Controller *countdown.Timer
	Config     *config.Config
	Logger     *slog.Logger
	// Player plays the warning and completion tones; nil disables sound
	Player Player
	// Alert sends desktop notifications; nil disables them
	Alert Alerter
	// StatusFile is updated on every tick while the countdown runs
	StatusFile string
	// AutoStart begins the countdown as soon as the UI starts
	AutoStart bool
}

// Timer is the bubbletea model for the study countdown. It drives the
// countdown controller from the bubbletea event loop.
type Timer struct {
	ctrl       *countdown.Timer
	cfg        *config.Config
	log        *slog.Logger
	player     Player
	alert      Alerter
	confirm    *huh.Form
	now        func() time.Time
	statusFile string
	keys       keymap
	notice     notice
	pending    []countdown.Event
	style      Style
	help       help.Model
	progress   progress.Model
	clock      btimer.Model
	noticeSeq  int
	celebrate  int
	confirmed  bool
	dialog     bool
	autoStart  bool
}

// New creates the terminal UI model and registers it as the controller's
// notifier.
func New(opts Options) *Timer {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	cfg := opts.Config

	t := &Timer{
		ctrl:       opts.Controller,
		cfg:        cfg,
		log:        opts.Logger,
		player:     opts.Player,
		alert:      opts.Alert,
		statusFile: opts.StatusFile,
		autoStart:  opts.AutoStart,
		keys:       newKeymap(),
		style:      NewStyle(cfg.Display),
		help:       help.New(),
		celebrate:  -1,
		now:        time.Now,
		progress: progress.New(
			progress.WithSolidFill(cfg.Display.Color),
			progress.WithoutPercentage(),
		),
	}

	if !cfg.Sound.Enabled {
		t.player = nil
	}

	if !cfg.Notifications.Enabled {
		t.alert = nil
	}

	t.ctrl.SetNotifier(t)

	return t
}

// Notify queues controller events. They are handled after the controller
// call that produced them returns.
func (t *Timer) Notify(e countdown.Event) {
	t.pending = append(t.pending, e)
}

// Init starts the autosave loop and, if requested, the countdown.
func (t *Timer) Init() tea.Cmd {
	t.updateStatus()

	cmds := []tea.Cmd{t.autosave()}

	if t.autoStart {
		cmds = append(cmds, t.start())
	}

	return tea.Batch(cmds...)
}

func (t *Timer) autosave() tea.Cmd {
	return tea.Tick(t.cfg.Timer.AutosaveInterval, func(time.Time) tea.Msg {
		return autosaveMsg{}
	})
}

// start begins or resumes the countdown with a fresh tick source.
func (t *Timer) start() tea.Cmd {
	if !t.ctrl.Start() {
		return nil
	}

	t.clock = btimer.NewWithInterval(
		time.Duration(t.ctrl.Remaining())*time.Second,
		time.Second,
	)

	return tea.Batch(t.clock.Init(), t.handleEvents())
}

// pause stops the countdown and its tick source.
func (t *Timer) pause() tea.Cmd {
	if !t.ctrl.Pause() {
		return nil
	}

	_ = t.ctrl.Persist()

	t.updateStatus()

	return tea.Batch(t.clock.Stop(), t.handleEvents())
}

// reset discards all progress once the user has confirmed it.
func (t *Timer) reset() tea.Cmd {
	var cmd tea.Cmd
	if t.clock.Running() {
		cmd = t.clock.Stop()
	}

	t.ctrl.Reset()

	_ = t.ctrl.Persist()

	t.updateStatus()

	t.dialog = false
	t.celebrate = -1

	return tea.Batch(cmd, t.handleEvents())
}

// quit flushes the countdown before exiting.
func (t *Timer) quit() tea.Cmd {
	_ = t.ctrl.Close()

	removeStatusFile(t.statusFile)

	t.pending = nil

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

// updateStatus refreshes the status file read by other marathon commands.
func (t *Timer) updateStatus() {
	err := writeStatusFile(t.statusFile, t.ctrl, t.now())
	if err != nil {
		t.log.Debug("status file not updated", slog.Any("error", err))
	}
}

func (t *Timer) showNotice(text string, kind noticeKind) tea.Cmd {
	t.noticeSeq++

	t.notice = notice{
		text: text,
		kind: kind,
		id:   t.noticeSeq,
	}

	id := t.noticeSeq

	return tea.Tick(t.cfg.Notifications.DismissAfter, func(time.Time) tea.Msg {
		return dismissNoticeMsg{id: id}
	})
}

func (t *Timer) play(tones []Tone) tea.Cmd {
	if t.player == nil {
		return nil
	}

	p := t.player

	return func() tea.Msg {
		p.Play(tones)
		return nil
	}
}

func (t *Timer) desktopAlert(title, message string) tea.Cmd {
	if t.alert == nil {
		return nil
	}

	alert, log := t.alert, t.log

	return func() tea.Msg {
		if err := alert(title, message); err != nil {
			log.Warn("desktop notification failed", slog.Any("error", err))
		}

		return nil
	}
}

func (t *Timer) sessionCmd() tea.Cmd {
	if t.cfg.Settings.Cmd == "" {
		return nil
	}

	sessionCmd, log := t.cfg.Settings.Cmd, t.log

	return func() tea.Msg {
		if err := runSessionCmd(sessionCmd); err != nil {
			log.Error("session command failed", slog.Any("error", err))
		}

		return nil
	}
}

func (t *Timer) celebrateTick() tea.Cmd {
	return tea.Tick(celebrationInterval, func(time.Time) tea.Msg {
		return celebrateMsg{}
	})
}

// handleEvents turns the queued controller events into notices, sounds and
// other side effects.
func (t *Timer) handleEvents() tea.Cmd {
	events := t.pending
	t.pending = nil

	var cmds []tea.Cmd

	for _, e := range events {
		switch e.Type {
		case countdown.EventStateChange:
			switch e.State {
			case countdown.Running:
				text := "Study session started. Good luck!"
				if e.Resumed {
					text = "Welcome back! Study session resumed."
				}

				cmds = append(cmds, t.showNotice(text, noticeInfo))
			case countdown.Paused:
				cmds = append(
					cmds,
					t.showNotice("Study session paused. Take a break!", noticeInfo),
				)
			case countdown.Idle, countdown.Completed:
			}

		case countdown.EventReset:
			cmds = append(
				cmds,
				t.showNotice("Timer reset. Ready for a fresh start!", noticeInfo),
			)

		case countdown.EventWarning:
			msg := "Only one hour of study remaining!"
			if e.Remaining != countdown.DefaultWarningAt {
				msg = timeutil.HoursMins(e.Remaining) + " of study remaining!"
			}

			cmds = append(
				cmds,
				t.showNotice(msg, noticeWarning),
				t.play(warningTones),
				t.desktopAlert("Almost there", msg),
			)

		case countdown.EventCompleted:
			t.dialog = true
			t.celebrate = 0

			t.updateStatus()

			cmds = append(
				cmds,
				t.clock.Stop(),
				t.celebrateTick(),
				t.play(completionTones),
				t.desktopAlert(
					"Congratulations!",
					"You completed "+timeutil.HoursMins(e.Total)+" of study",
				),
				t.sessionCmd(),
			)

		case countdown.EventPersistError:
			cmds = append(
				cmds,
				t.showNotice("Unable to save progress", noticeError),
			)

		case countdown.EventSessionRecorded:
			t.log.Debug(
				"session recorded",
				slog.String("date", e.Record.Date),
				slog.Int("duration", e.Record.Duration),
			)

		case countdown.EventTick:
		}
	}

	return tea.Batch(cmds...)
}
