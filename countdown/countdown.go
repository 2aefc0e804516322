// Package countdown implements the study countdown: a fixed-duration timer
// that records a session every time it stops running and persists its
// progress so it can be picked up again later.
package countdown

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/session"
)

const (
	// DefaultTotal is the length of the countdown in seconds (20 hours).
	DefaultTotal = 20 * 60 * 60
	// DefaultWarningAt is the number of remaining seconds at which the
	// warning is fired.
	DefaultWarningAt = 60 * 60
	// DefaultAutosaveEvery makes Tick persist whenever the remaining seconds
	// are a multiple of this value.
	DefaultAutosaveEvery = 5
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = systemClock{}

// Store is the key-value storage the countdown state is persisted to.
type Store interface {
	// GetState returns the stored state or nil if nothing has been saved
	GetState() ([]byte, error)
	UpdateState(value []byte) error
}

// Options configures a Timer.
type Options struct {
	Clock    Clock
	Store    Store
	Notifier Notifier
	Logger   *slog.Logger
	// Total is the countdown length in seconds
	Total int
	// WarningAt is the remaining seconds threshold for EventWarning
	WarningAt int
	// AutosaveEvery is the remaining seconds multiple at which Tick
	// persists. Zero disables tick-driven saves.
	AutosaveEvery int
}

// Timer is the countdown controller. It is not safe for concurrent use: a
// single goroutine must drive all of its methods.
type Timer struct {
	clock         Clock
	store         Store
	notifier      Notifier
	log           *slog.Logger
	sessionStart  time.Time
	sessions      []session.Record
	state         State
	total         int
	remaining     int
	warningAt     int
	autosaveEvery int
	warned        bool
	closed        bool
}

// New creates a countdown in the Idle state.
func New(opts Options) *Timer {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}

	if opts.Total <= 0 {
		opts.Total = DefaultTotal
	}

	if opts.WarningAt <= 0 || opts.WarningAt >= opts.Total {
		opts.WarningAt = DefaultWarningAt
	}

	if opts.AutosaveEvery < 0 {
		opts.AutosaveEvery = 0
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Timer{
		clock:         opts.Clock,
		store:         opts.Store,
		notifier:      opts.Notifier,
		log:           opts.Logger,
		total:         opts.Total,
		remaining:     opts.Total,
		warningAt:     opts.WarningAt,
		autosaveEvery: opts.AutosaveEvery,
		sessions:      []session.Record{},
		state:         Idle,
	}
}

// SetNotifier replaces the presentation collaborator that receives events.
func (t *Timer) SetNotifier(n Notifier) {
	t.notifier = n
}

// State returns the current run state.
func (t *Timer) State() State {
	return t.state
}

// Total returns the countdown length in seconds.
func (t *Timer) Total() int {
	return t.total
}

// Remaining returns the number of seconds left.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Sessions returns a copy of the recorded sessions in insertion order.
func (t *Timer) Sessions() []session.Record {
	out := make([]session.Record, len(t.sessions))
	copy(out, t.sessions)

	return out
}

// Warned reports whether the warning has fired since the last reset.
func (t *Timer) Warned() bool {
	return t.warned
}

// SessionStart returns the start of the open session interval. The zero time
// is returned unless the timer is running.
func (t *Timer) SessionStart() time.Time {
	return t.sessionStart
}

// Progress returns the overall progress rounded to one decimal place.
func (t *Timer) Progress() session.Progress {
	return session.NewProgress(t.total, t.remaining)
}

// Start begins or resumes the countdown. It reports whether the state
// changed: starting a running or completed timer does nothing.
func (t *Timer) Start() bool {
	if t.state != Idle && t.state != Paused {
		return false
	}

	resumed := t.state == Paused

	t.state = Running
	t.sessionStart = t.clock.Now()

	t.log.Debug(
		"countdown started",
		slog.Bool("resumed", resumed),
		slog.Int("remaining", t.remaining),
	)

	e := t.event(EventStateChange)
	e.Resumed = resumed

	t.emit(e)

	return true
}

// Pause stops a running countdown and records the session that just ended.
// It reports whether the state changed.
func (t *Timer) Pause() bool {
	if t.state != Running {
		return false
	}

	t.recordSession(t.Progress())

	t.state = Paused
	t.sessionStart = time.Time{}

	t.log.Debug("countdown paused", slog.Int("remaining", t.remaining))

	t.emit(t.event(EventStateChange))

	return true
}

// Reset discards all progress and recorded sessions. Callers are expected to
// obtain confirmation before invoking it.
func (t *Timer) Reset() {
	t.sessions = []session.Record{}
	t.remaining = t.total
	t.warned = false
	t.sessionStart = time.Time{}
	t.state = Idle

	t.log.Info("countdown reset")

	t.emit(t.event(EventReset))
	t.emit(t.event(EventStateChange))
}

// Tick advances a running countdown by one second.
func (t *Timer) Tick() {
	if t.state != Running || t.remaining <= 0 {
		return
	}

	prev := t.remaining
	t.remaining--

	t.emit(t.event(EventTick))

	if !t.warned && prev > t.warningAt && t.remaining <= t.warningAt {
		t.warned = true

		t.log.Info("warning threshold reached", slog.Int("remaining", t.remaining))

		t.emit(t.event(EventWarning))
	}

	if t.remaining == 0 {
		t.complete()
		return
	}

	if t.autosaveEvery > 0 && t.remaining%t.autosaveEvery == 0 {
		_ = t.Persist()
	}
}

// complete is reached only through Tick when the countdown hits zero.
func (t *Timer) complete() {
	t.recordSession(100)

	t.state = Completed
	t.sessionStart = time.Time{}

	t.log.Info("countdown completed", slog.Int("sessions", len(t.sessions)))

	t.emit(t.event(EventStateChange))
	t.emit(t.event(EventCompleted))

	_ = t.Persist()
}

// recordSession appends a record for the open interval. Intervals shorter
// than one second are discarded.
func (t *Timer) recordSession(progress session.Progress) {
	if t.sessionStart.IsZero() {
		return
	}

	r := session.New(t.sessionStart, t.clock.Now(), progress)
	if !r.Valid() {
		return
	}

	t.sessions = append(t.sessions, r)

	e := t.event(EventSessionRecorded)
	e.Record = r

	t.emit(e)
}

// Snapshot returns the persistable subset of the state.
func (t *Timer) Snapshot() models.Snapshot {
	return models.Snapshot{
		RemainingSeconds:    t.remaining,
		Sessions:            t.Sessions(),
		OneHourWarningShown: t.warned,
	}
}

// Restore applies a previously captured snapshot. Invalid fields fall back to
// their defaults. The timer never comes back running: it is Idle when no
// time has elapsed, Completed when none is left and Paused otherwise.
func (t *Timer) Restore(s models.Snapshot) {
	t.remaining = s.RemainingSeconds
	if t.remaining < 0 || t.remaining > t.total {
		t.remaining = t.total
	}

	t.sessions = make([]session.Record, 0, len(s.Sessions))

	for _, r := range s.Sessions {
		if r.Valid() {
			t.sessions = append(t.sessions, r)
		}
	}

	t.warned = s.OneHourWarningShown
	t.sessionStart = time.Time{}

	switch t.remaining {
	case t.total:
		t.state = Idle
	case 0:
		t.state = Completed
	default:
		t.state = Paused
	}

	t.emit(t.event(EventStateChange))
}

func (t *Timer) event(typ EventType) Event {
	return Event{
		Type:      typ,
		State:     t.state,
		Remaining: t.remaining,
		Total:     t.total,
		At:        t.clock.Now(),
	}
}

func (t *Timer) emit(e Event) {
	if t.notifier == nil {
		return
	}

	t.notifier.Notify(e)
}
