package countdown

import (
	"time"

	"github.com/ayoisaiah/marathon/internal/session"
)

// State represents the run state of the countdown.
type State string

const (
	Idle      State = "idle"
	Running   State = "running"
	Paused    State = "paused"
	Completed State = "completed"
)

// EventType defines the type of countdown event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventTick            EventType = "tick"
	EventWarning         EventType = "warning"
	EventSessionRecorded EventType = "session_recorded"
	EventCompleted       EventType = "completed"
	EventReset           EventType = "reset"
	EventPersistError    EventType = "persist_error"
)

// Event is a one-way notification to the presentation layer.
type Event struct {
	At        time.Time
	Err       error
	Type      EventType
	State     State
	Record    session.Record
	Remaining int
	Total     int
	Resumed   bool
}

// Notifier receives countdown events. Notify is called synchronously from
// the goroutine driving the Timer and must not call back into it.
type Notifier interface {
	Notify(e Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(e Event)

func (f NotifierFunc) Notify(e Event) {
	f(e)
}
