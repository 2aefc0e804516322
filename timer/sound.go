package timer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate beep.SampleRate = 44100

// Tone is a single sine tone followed by a short gap.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Gap      time.Duration
}

var (
	warningTones = []Tone{
		{Freq: 800, Duration: 200 * time.Millisecond, Gap: 100 * time.Millisecond},
		{Freq: 600, Duration: 200 * time.Millisecond, Gap: 100 * time.Millisecond},
		{Freq: 800, Duration: 300 * time.Millisecond},
	}

	// C major arpeggio
	completionTones = []Tone{
		{Freq: 523.25, Duration: 150 * time.Millisecond, Gap: 50 * time.Millisecond},
		{Freq: 659.25, Duration: 150 * time.Millisecond, Gap: 50 * time.Millisecond},
		{Freq: 783.99, Duration: 150 * time.Millisecond, Gap: 50 * time.Millisecond},
		{Freq: 1046.5, Duration: 400 * time.Millisecond},
	}
)

// Player plays a sequence of tones, blocking until playback ends.
type Player interface {
	Play(tones []Tone)
}

// Speaker plays tones through the default audio device. The device is
// opened on first use; if that fails playback is disabled.
type Speaker struct {
	log  *slog.Logger
	err  error
	once sync.Once
	mu   sync.Mutex
}

// NewSpeaker returns a Speaker that reports failures to log.
func NewSpeaker(log *slog.Logger) *Speaker {
	return &Speaker{log: log}
}

func (s *Speaker) init() error {
	s.once.Do(func() {
		bufferSize := 10

		err := speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
		if err != nil {
			s.err = errSpeakerInit.Wrap(err)
			s.log.Warn("sound disabled", slog.Any("error", s.err))
		}
	})

	return s.err
}

// Play synthesises the tones and plays them in order.
func (s *Speaker) Play(tones []Tone) {
	if err := s.init(); err != nil {
		return
	}

	stream, err := sequence(tones)
	if err != nil {
		s.log.Warn("unable to synthesise tones", slog.Any("error", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done
}

// sequence builds a single streamer out of the tones.
func sequence(tones []Tone) (beep.Streamer, error) {
	streams := make([]beep.Streamer, 0, len(tones)*2)

	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.Freq)
		if err != nil {
			return nil, err
		}

		streams = append(streams, &effects.Gain{
			Streamer: beep.Take(sampleRate.N(t.Duration), sine),
			Gain:     -0.7,
		})

		if t.Gap > 0 {
			streams = append(streams, beep.Silence(sampleRate.N(t.Gap)))
		}
	}

	return beep.Seq(streams...), nil
}
