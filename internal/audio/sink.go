// Package audio plays the engine's sound cues through the system speaker.
// Every cue is synthesized; there are no sample files. When no audio
// device is available the sink logs one warning and stays silent.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/deadzone/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferTime = 50 * time.Millisecond
	maxVoices  = 16
)

// Options configures a sink.
type Options struct {
	Volume float64 // 0..1, defaults to 0.6
	Muted  bool
	Logger *log.Logger
}

// Sink is a core.SoundSink backed by the beep speaker.
type Sink struct {
	mu     sync.Mutex
	opts   Options
	log    *log.Logger
	mixer  *beep.Mixer
	ready  bool
	warned bool

	// Overridable for tests.
	initSpeaker func(beep.SampleRate, int) error
	play        func(beep.Streamer)
	lock        func()
	unlock      func()
}

// New creates a sink. Call Open before the first Play.
func New(opts Options) *Sink {
	if opts.Volume <= 0 {
		opts.Volume = 0.6
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Sink{
		opts:        opts,
		log:         opts.Logger,
		mixer:       &beep.Mixer{},
		initSpeaker: speaker.Init,
		play:        func(s beep.Streamer) { speaker.Play(s) },
		lock:        speaker.Lock,
		unlock:      speaker.Unlock,
	}
}

// Open initializes the speaker. Failure is not fatal: the error is logged
// once and every later Play is dropped.
func (s *Sink) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready || s.opts.Muted {
		return nil
	}
	if err := s.initSpeaker(sampleRate, sampleRate.N(bufferTime)); err != nil {
		if !s.warned {
			s.log.Warn("audio unavailable, continuing without sound", "err", err)
			s.warned = true
		}
		return err
	}
	s.play(s.mixer)
	s.ready = true
	return nil
}

// Ready reports whether cues reach the speaker.
func (s *Sink) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Play implements core.SoundSink. Unknown cues and cues beyond the voice
// limit are dropped.
func (s *Sink) Play(snd core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready || s.opts.Muted {
		return
	}
	st := Cue(snd, sampleRate, s.opts.Volume)
	if st == nil {
		return
	}
	s.lock()
	if s.mixer.Len() < maxVoices {
		s.mixer.Add(st)
	}
	s.unlock()
}

// SetMuted silences or restores playback.
func (s *Sink) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Muted = muted
}

// Close drops every playing cue and stops routing new ones.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	s.lock()
	s.mixer.Clear()
	s.unlock()
	s.ready = false
}

var _ core.SoundSink = (*Sink)(nil)
