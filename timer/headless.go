package timer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/marathon/countdown"
	"github.com/ayoisaiah/marathon/internal/config"
	"github.com/ayoisaiah/marathon/internal/timeutil"
)

// Headless runs the countdown without the terminal UI, printing the time
// remaining on a single line.
type Headless struct {
	ctrl       *countdown.Timer
	cfg        *config.Config
	log        *slog.Logger
	out        io.Writer
	player     Player
	alert      Alerter
	now        func() time.Time
	statusFile string
	pending    []countdown.Event
}

// NewHeadless creates a headless runner and registers it as the
// controller's notifier.
func NewHeadless(opts Options, out io.Writer) *Headless {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	h := &Headless{
		ctrl:       opts.Controller,
		cfg:        opts.Config,
		log:        opts.Logger,
		out:        out,
		player:     opts.Player,
		alert:      opts.Alert,
		statusFile: opts.StatusFile,
		now:        time.Now,
	}

	if !h.cfg.Sound.Enabled {
		h.player = nil
	}

	if !h.cfg.Notifications.Enabled {
		h.alert = nil
	}

	h.ctrl.SetNotifier(h)

	return h
}

// Notify queues controller events.
func (h *Headless) Notify(e countdown.Event) {
	h.pending = append(h.pending, e)
}

// Run starts the countdown and blocks until it completes or ctx is
// cancelled. The countdown is closed before Run returns.
func (h *Headless) Run(ctx context.Context) error {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	save := time.NewTicker(h.cfg.Timer.AutosaveInterval)
	defer save.Stop()

	return h.run(ctx, tick.C, save.C)
}

func (h *Headless) run(ctx context.Context, tick, save <-chan time.Time) error {
	defer removeStatusFile(h.statusFile)

	if h.ctrl.State() == countdown.Completed {
		pterm.Fprintln(h.out, pterm.Success.Sprint(
			"Countdown already completed. Run 'marathon reset' to start over.",
		))

		return nil
	}

	h.ctrl.Start()
	h.flush()
	h.countdown()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(h.out)

			err := h.ctrl.Close()
			h.flush()

			return err

		case <-save:
			_ = h.ctrl.Persist()
			h.flush()

		case <-tick:
			h.ctrl.Tick()

			if h.ctrl.State() == countdown.Running {
				err := writeStatusFile(h.statusFile, h.ctrl, h.now())
				if err != nil {
					h.log.Debug("status file not updated", slog.Any("error", err))
				}
			}

			h.countdown()
			h.flush()

			if h.ctrl.State() == countdown.Completed {
				return h.ctrl.Close()
			}
		}
	}
}

// countdown prints the time remaining over the current line.
func (h *Headless) countdown() {
	fmt.Fprintf(
		h.out,
		"\r🕒 %s %s",
		pterm.Yellow(timeutil.Clock(h.ctrl.Remaining())),
		pterm.Gray("("+h.ctrl.Progress().String()+"%)"),
	)
}

// flush handles the queued events.
func (h *Headless) flush() {
	events := h.pending
	h.pending = nil

	for _, e := range events {
		switch e.Type {
		case countdown.EventStateChange:
			if e.State != countdown.Running {
				continue
			}

			if e.Resumed {
				pterm.Fprintln(h.out, pterm.Info.Sprint("Study session resumed"))
			} else {
				pterm.Fprintln(h.out, pterm.Info.Sprint("Study session started"))
			}

		case countdown.EventWarning:
			msg := timeutil.HoursMins(e.Remaining) + " of study remaining!"

			fmt.Fprintln(h.out)
			pterm.Fprintln(h.out, pterm.Warning.Sprint(msg))

			h.background(func() { h.player.Play(warningTones) }, h.player != nil)
			h.background(func() { h.sendAlert("Almost there", msg) }, h.alert != nil)

		case countdown.EventCompleted:
			fmt.Fprintln(h.out)
			pterm.Fprintln(h.out, pterm.Success.Sprintf(
				"Congratulations! You completed %s of study.",
				timeutil.HoursMins(e.Total),
			))

			if h.alert != nil {
				h.sendAlert(
					"Congratulations!",
					"You completed "+timeutil.HoursMins(e.Total)+" of study",
				)
			}

			if err := runSessionCmd(h.cfg.Settings.Cmd); err != nil {
				h.log.Error("session command failed", slog.Any("error", err))
			}

			if h.player != nil {
				h.player.Play(completionTones)
			}

		case countdown.EventPersistError:
			h.log.Warn("progress not saved", slog.Any("error", e.Err))

		case countdown.EventTick, countdown.EventReset, countdown.EventSessionRecorded:
		}
	}
}

func (h *Headless) sendAlert(title, msg string) {
	if err := h.alert(title, msg); err != nil {
		h.log.Warn("desktop notification failed", slog.Any("error", err))
	}
}

// background runs fn in its own goroutine when enabled.
func (h *Headless) background(fn func(), enabled bool) {
	if !enabled {
		return
	}

	go fn()
}
