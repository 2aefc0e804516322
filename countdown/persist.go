package countdown

import (
	"log/slog"

	"github.com/ayoisaiah/marathon/internal/apperr"
	"github.com/ayoisaiah/marathon/internal/models"
)

var (
	errReadState = &apperr.Error{
		Message: "reading saved countdown failed",
	}

	errWriteState = &apperr.Error{
		Message: "saving countdown failed",
	}
)

// Open rehydrates the countdown from its store. A missing or unreadable state
// leaves the defaults in place; the error is logged and returned for
// reporting but the timer remains usable.
func (t *Timer) Open() error {
	t.closed = false

	if t.store == nil {
		return nil
	}

	b, err := t.store.GetState()
	if err != nil {
		err = errReadState.Wrap(err)

		t.log.Error("restoring countdown", slog.Any("error", err))

		return err
	}

	if b == nil {
		return nil
	}

	t.Restore(models.DecodeSnapshot(b, t.total))

	t.log.Info(
		"countdown restored",
		slog.Int("remaining", t.remaining),
		slog.Int("sessions", len(t.sessions)),
	)

	return nil
}

// Persist writes the current snapshot to the store. It is best effort:
// failures are logged and reported as EventPersistError, and the next save
// simply tries again.
func (t *Timer) Persist() error {
	if t.store == nil {
		return nil
	}

	b, err := t.Snapshot().Encode()
	if err == nil {
		err = t.store.UpdateState(b)
	}

	if err != nil {
		err = errWriteState.Wrap(err)

		t.log.Error("persisting countdown", slog.Any("error", err))

		e := t.event(EventPersistError)
		e.Err = err

		t.emit(e)

		return err
	}

	t.log.Debug("countdown persisted", slog.Int("remaining", t.remaining))

	return nil
}

// Close ends the countdown's lifecycle. A running timer is paused so that the
// open session is recorded, then the state is flushed one last time. Calling
// Close more than once is harmless.
func (t *Timer) Close() error {
	if t.closed {
		return nil
	}

	t.Pause()

	t.closed = true

	return t.Persist()
}
