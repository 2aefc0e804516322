package countdown

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/session"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type recorder struct {
	events []Event
}

func (r *recorder) Notify(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(typ EventType) int {
	var n int

	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}

	return n
}

type memStore struct {
	data     []byte
	writes   int
	readErr  error
	writeErr error
}

func (m *memStore) GetState() ([]byte, error) {
	return m.data, m.readErr
}

func (m *memStore) UpdateState(value []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}

	m.writes++
	m.data = value

	return nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestTimer(t *testing.T, opts Options) (*Timer, *fakeClock, *recorder) {
	t.Helper()

	clock := &fakeClock{
		now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
	}
	rec := &recorder{}

	opts.Clock = clock
	opts.Notifier = rec
	opts.Logger = discard

	return New(opts), clock, rec
}

// advance simulates n elapsed seconds of a running countdown.
func advance(timer *Timer, clock *fakeClock, n int) {
	for range n {
		clock.Advance(time.Second)
		timer.Tick()
	}
}

func TestNewDefaults(t *testing.T) {
	timer, _, _ := newTestTimer(t, Options{})

	assert.Equal(t, DefaultTotal, timer.Total())
	assert.Equal(t, 72000, timer.Remaining())
	assert.Equal(t, Idle, timer.State())
	assert.Empty(t, timer.Sessions())
	assert.False(t, timer.Warned())
	assert.True(t, timer.SessionStart().IsZero())
}

func TestStart(t *testing.T) {
	timer, clock, rec := newTestTimer(t, Options{})

	assert.True(t, timer.Start())
	assert.Equal(t, Running, timer.State())
	assert.Equal(t, clock.now, timer.SessionStart())

	// starting again is ignored
	clock.Advance(time.Second)
	assert.False(t, timer.Start())
	assert.Equal(t, clock.now.Add(-time.Second), timer.SessionStart())
	assert.Equal(t, 1, rec.count(EventStateChange))
}

func TestPauseRecordsSession(t *testing.T) {
	timer, clock, rec := newTestTimer(t, Options{})

	timer.Start()
	advance(timer, clock, 10)

	assert.True(t, timer.Pause())
	assert.Equal(t, Paused, timer.State())
	assert.True(t, timer.SessionStart().IsZero())

	want := []session.Record{
		{Date: "2026/10/15", StartTime: "09:00", Duration: 10, Progress: 0},
	}

	if diff := cmp.Diff(want, timer.Sessions()); diff != "" {
		t.Errorf("sessions mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 71990, timer.Remaining())
	assert.Equal(t, 1, rec.count(EventSessionRecorded))
}

func TestPauseWithoutElapsedTime(t *testing.T) {
	timer, _, rec := newTestTimer(t, Options{})

	timer.Start()

	assert.True(t, timer.Pause())
	assert.Empty(t, timer.Sessions())
	assert.Equal(t, 0, rec.count(EventSessionRecorded))
}

func TestPauseWhenNotRunning(t *testing.T) {
	timer, _, rec := newTestTimer(t, Options{})

	assert.False(t, timer.Pause())
	assert.Equal(t, Idle, timer.State())
	assert.Empty(t, rec.events)
}

func TestResume(t *testing.T) {
	timer, clock, rec := newTestTimer(t, Options{})

	timer.Start()
	advance(timer, clock, 30)
	timer.Pause()

	// time spent paused is not counted
	clock.Advance(10 * time.Minute)

	assert.True(t, timer.Start())
	assert.Equal(t, Running, timer.State())
	assert.Equal(t, 71970, timer.Remaining())

	advance(timer, clock, 90)
	timer.Pause()

	sessions := timer.Sessions()

	assert.Len(t, sessions, 2)
	assert.Equal(t, 30, sessions[0].Duration)
	assert.Equal(t, 90, sessions[1].Duration)
	assert.Equal(t, "09:10", sessions[1].StartTime)
	assert.Equal(t, session.Progress(0.2), sessions[1].Progress)
	assert.Equal(t, 71880, timer.Remaining())

	var resumed int

	for _, e := range rec.events {
		if e.Type == EventStateChange && e.Resumed {
			resumed++
		}
	}

	assert.Equal(t, 1, resumed)
}

func TestTickIgnoredWhenNotRunning(t *testing.T) {
	timer, clock, _ := newTestTimer(t, Options{})

	advance(timer, clock, 5)
	assert.Equal(t, 72000, timer.Remaining())

	timer.Start()
	advance(timer, clock, 5)
	timer.Pause()
	advance(timer, clock, 5)

	assert.Equal(t, 71995, timer.Remaining())
}

func TestRemainingNeverIncreases(t *testing.T) {
	timer, clock, _ := newTestTimer(t, Options{Total: 50})

	ops := []func(){
		func() { timer.Start() },
		func() { advance(timer, clock, 7) },
		func() { timer.Pause() },
		func() { timer.Pause() },
		func() { advance(timer, clock, 3) },
		func() { timer.Start() },
		func() { timer.Start() },
		func() { advance(timer, clock, 30) },
		func() { timer.Pause() },
		func() { timer.Start() },
		func() { advance(timer, clock, 40) },
		func() { timer.Start() },
		func() { advance(timer, clock, 5) },
	}

	prev := timer.Remaining()

	for i, op := range ops {
		op()

		if timer.Remaining() > prev {
			t.Fatalf("step %d: remaining increased from %d to %d", i, prev, timer.Remaining())
		}

		if timer.Remaining() < 0 {
			t.Fatalf("step %d: remaining is negative: %d", i, timer.Remaining())
		}

		prev = timer.Remaining()
	}

	assert.Equal(t, 0, timer.Remaining())
	assert.Equal(t, Completed, timer.State())
}

func TestReset(t *testing.T) {
	setups := map[string]func(*Timer, *fakeClock){
		"idle": func(*Timer, *fakeClock) {},
		"running": func(timer *Timer, clock *fakeClock) {
			timer.Start()
			advance(timer, clock, 20)
		},
		"paused": func(timer *Timer, clock *fakeClock) {
			timer.Start()
			advance(timer, clock, 20)
			timer.Pause()
		},
		"completed": func(timer *Timer, clock *fakeClock) {
			timer.Start()
			advance(timer, clock, 4000)
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			timer, clock, rec := newTestTimer(t, Options{Total: 4000, WarningAt: 100})

			setup(timer, clock)
			timer.Reset()

			assert.Equal(t, Idle, timer.State())
			assert.Equal(t, 4000, timer.Remaining())
			assert.Empty(t, timer.Sessions())
			assert.False(t, timer.Warned())
			assert.True(t, timer.SessionStart().IsZero())
			assert.Equal(t, 1, rec.count(EventReset))

			// ticks after a reset have no effect until the next start
			advance(timer, clock, 3)
			assert.Equal(t, 4000, timer.Remaining())
		})
	}
}

func TestWarningFiresOnce(t *testing.T) {
	timer, clock, rec := newTestTimer(t, Options{Total: 3700})

	timer.Start()
	advance(timer, clock, 99)

	assert.Equal(t, 3601, timer.Remaining())
	assert.False(t, timer.Warned())
	assert.Equal(t, 0, rec.count(EventWarning))

	advance(timer, clock, 1)

	assert.Equal(t, 3600, timer.Remaining())
	assert.True(t, timer.Warned())
	assert.Equal(t, 1, rec.count(EventWarning))

	timer.Pause()
	timer.Start()
	advance(timer, clock, 200)

	assert.Equal(t, 1, rec.count(EventWarning))

	// a reset re-arms the warning
	timer.Reset()
	timer.Start()
	advance(timer, clock, 100)

	assert.Equal(t, 2, rec.count(EventWarning))
}

func TestWarningNotRearmedByRestore(t *testing.T) {
	timer, clock, rec := newTestTimer(t, Options{Total: 3700})

	timer.Restore(models.Snapshot{
		RemainingSeconds:    3650,
		OneHourWarningShown: true,
	})

	timer.Start()
	advance(timer, clock, 100)

	assert.Equal(t, 0, rec.count(EventWarning))
}

func TestFullCountdown(t *testing.T) {
	timer, clock, rec := newTestTimer(t, Options{})

	timer.Start()
	advance(timer, clock, 72000)

	assert.Equal(t, 0, timer.Remaining())
	assert.Equal(t, Completed, timer.State())
	assert.Equal(t, 1, rec.count(EventCompleted))
	assert.Equal(t, 1, rec.count(EventWarning))

	sessions := timer.Sessions()

	assert.Len(t, sessions, 1)
	assert.Equal(t, session.Progress(100), sessions[0].Progress)
	assert.Equal(t, 72000, sessions[0].Duration)

	// completed timers can't be started or paused
	assert.False(t, timer.Start())
	assert.False(t, timer.Pause())

	advance(timer, clock, 10)

	assert.Equal(t, 0, timer.Remaining())
	assert.Equal(t, 1, rec.count(EventCompleted))
	assert.Len(t, timer.Sessions(), 1)
}

func TestCompletionWithoutElapsedTime(t *testing.T) {
	timer, _, rec := newTestTimer(t, Options{Total: 3})

	timer.Start()

	// ticks arrive without the wall clock moving
	timer.Tick()
	timer.Tick()
	timer.Tick()

	assert.Equal(t, Completed, timer.State())
	assert.Empty(t, timer.Sessions())
	assert.Equal(t, 1, rec.count(EventCompleted))
}

func TestSnapshotRestore(t *testing.T) {
	timer, clock, _ := newTestTimer(t, Options{Total: 4000, WarningAt: 3990})

	timer.Start()
	advance(timer, clock, 15)
	timer.Pause()
	timer.Start()
	advance(timer, clock, 5)
	timer.Pause()

	snap := timer.Snapshot()

	other, _, _ := newTestTimer(t, Options{Total: 4000})
	other.Restore(snap)

	if diff := cmp.Diff(snap, other.Snapshot()); diff != "" {
		t.Errorf("restore mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, Paused, other.State())
	assert.True(t, other.Warned())

	// restoring in place is idempotent
	timer.Restore(timer.Snapshot())

	if diff := cmp.Diff(snap, timer.Snapshot()); diff != "" {
		t.Errorf("in-place restore mismatch (-want +got):\n%s", diff)
	}
}

func TestRestoreNeverRuns(t *testing.T) {
	testCases := []struct {
		Name  string
		Snap  models.Snapshot
		State State
		Want  int
	}{
		{Name: "untouched", Snap: models.Snapshot{RemainingSeconds: 100}, State: Idle, Want: 100},
		{Name: "in progress", Snap: models.Snapshot{RemainingSeconds: 60}, State: Paused, Want: 60},
		{Name: "finished", Snap: models.Snapshot{RemainingSeconds: 0}, State: Completed, Want: 0},
		{Name: "too large", Snap: models.Snapshot{RemainingSeconds: 101}, State: Idle, Want: 100},
		{Name: "negative", Snap: models.Snapshot{RemainingSeconds: -1}, State: Idle, Want: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			timer, clock, _ := newTestTimer(t, Options{Total: 100})

			timer.Start()
			advance(timer, clock, 2)

			timer.Restore(tc.Snap)

			assert.Equal(t, tc.State, timer.State())
			assert.Equal(t, tc.Want, timer.Remaining())
			assert.True(t, timer.SessionStart().IsZero())
		})
	}
}

func TestRestoreMalformed(t *testing.T) {
	for _, input := range []string{"", "{", "[]", `{"remainingSeconds":"x","sessions":5}`} {
		timer, clock, _ := newTestTimer(t, Options{})

		timer.Start()
		advance(timer, clock, 3)
		timer.Pause()

		timer.Restore(models.DecodeSnapshot([]byte(input), timer.Total()))

		assert.Equal(t, 72000, timer.Remaining(), input)
		assert.Empty(t, timer.Sessions(), input)
		assert.False(t, timer.Warned(), input)
		assert.Equal(t, Idle, timer.State(), input)
	}
}

func TestRestoreDropsEmptySessions(t *testing.T) {
	timer, _, _ := newTestTimer(t, Options{})

	timer.Restore(models.Snapshot{
		RemainingSeconds: 100,
		Sessions: []session.Record{
			{Date: "2026/10/1", StartTime: "10:00", Duration: 0},
			{Date: "2026/10/1", StartTime: "11:00", Duration: 60},
			{Date: "2026/10/1", StartTime: "12:00", Duration: -3},
		},
	})

	assert.Len(t, timer.Sessions(), 1)
}

func TestSessionsIsACopy(t *testing.T) {
	timer, clock, _ := newTestTimer(t, Options{})

	timer.Start()
	advance(timer, clock, 5)
	timer.Pause()

	s := timer.Sessions()
	s[0].Duration = 999

	assert.Equal(t, 5, timer.Sessions()[0].Duration)
}

func TestOpenAndPersist(t *testing.T) {
	store := &memStore{}
	timer, clock, _ := newTestTimer(t, Options{Store: store, AutosaveEvery: 5})

	assert.NoError(t, timer.Open())

	timer.Start()
	advance(timer, clock, 12)

	// saves happen at 71995 and 71990
	assert.Equal(t, 2, store.writes)

	assert.NoError(t, timer.Close())
	assert.Equal(t, 3, store.writes)
	assert.Equal(t, Paused, timer.State())

	// closing twice does not write again
	assert.NoError(t, timer.Close())
	assert.Equal(t, 3, store.writes)

	restored, _, _ := newTestTimer(t, Options{Store: store})

	assert.NoError(t, restored.Open())
	assert.Equal(t, 71988, restored.Remaining())
	assert.Equal(t, Paused, restored.State())
	assert.Len(t, restored.Sessions(), 1)
	assert.Equal(t, 12, restored.Sessions()[0].Duration)
}

func TestOpenEmptyStore(t *testing.T) {
	timer, _, _ := newTestTimer(t, Options{Store: &memStore{}})

	assert.NoError(t, timer.Open())
	assert.Equal(t, Idle, timer.State())
	assert.Equal(t, 72000, timer.Remaining())
}

func TestOpenReadFailure(t *testing.T) {
	errDisk := errors.New("disk on fire")
	timer, _, _ := newTestTimer(t, Options{
		Store: &memStore{readErr: errDisk, data: []byte(`{"remainingSeconds":5}`)},
	})

	err := timer.Open()

	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, err, errReadState)
	assert.Equal(t, 72000, timer.Remaining())
	assert.Equal(t, Idle, timer.State())
}

func TestPersistFailureIsNotFatal(t *testing.T) {
	errDisk := errors.New("disk full")
	store := &memStore{writeErr: errDisk}
	timer, clock, rec := newTestTimer(t, Options{Store: store, AutosaveEvery: 5})

	timer.Start()
	advance(timer, clock, 10)

	assert.Equal(t, 71990, timer.Remaining())
	assert.Equal(t, Running, timer.State())
	assert.Equal(t, 2, rec.count(EventPersistError))

	err := timer.Persist()

	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, err, errWriteState)
}

func TestPersistWithoutStore(t *testing.T) {
	timer, clock, rec := newTestTimer(t, Options{AutosaveEvery: 1})

	timer.Start()
	advance(timer, clock, 3)

	assert.NoError(t, timer.Persist())
	assert.NoError(t, timer.Close())
	assert.Equal(t, 0, rec.count(EventPersistError))
}

func TestCompletionPersists(t *testing.T) {
	store := &memStore{}
	timer, clock, _ := newTestTimer(t, Options{Total: 3, Store: store})

	timer.Start()
	advance(timer, clock, 3)

	snap := models.DecodeSnapshot(store.data, 3)

	assert.Equal(t, 0, snap.RemainingSeconds)
	assert.Len(t, snap.Sessions, 1)
	assert.Equal(t, session.Progress(100), snap.Sessions[0].Progress)
}

func TestNotifierFunc(t *testing.T) {
	var got []EventType

	timer := New(Options{
		Total:  2,
		Clock:  &fakeClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)},
		Logger: discard,
		Notifier: NotifierFunc(func(e Event) {
			got = append(got, e.Type)
		}),
	})

	timer.Start()
	timer.Tick()

	assert.Equal(t, []EventType{EventStateChange, EventTick}, got)
}
