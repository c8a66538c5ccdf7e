package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/deadzone/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is one synthesized note: a frequency that slides from From to To
// over Dur, shaped by a linear attack and release.
type tone struct {
	Wave    Wave
	From    float64
	To      float64
	Dur     time.Duration
	Attack  time.Duration
	Release time.Duration
	Gain    float64
}

// cue is a sequence of tones played back to back.
type cue []tone

var cues = map[core.Sound]cue{
	core.SoundPistol:       {{WaveSquare, 900, 300, 60 * time.Millisecond, time.Millisecond, 50 * time.Millisecond, 0.5}},
	core.SoundRifle:        {{WaveSaw, 700, 250, 50 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.45}},
	core.SoundShotgun:      {{WaveNoise, 0, 0, 140 * time.Millisecond, time.Millisecond, 120 * time.Millisecond, 0.6}},
	core.SoundShoot:        {{WaveSine, 1400, 2200, 90 * time.Millisecond, 5 * time.Millisecond, 60 * time.Millisecond, 0.4}},
	core.SoundReload:       {{WaveSquare, 400, 400, 30 * time.Millisecond, time.Millisecond, 20 * time.Millisecond, 0.3}, {WaveSquare, 600, 600, 30 * time.Millisecond, time.Millisecond, 20 * time.Millisecond, 0.3}},
	core.SoundSwitch:       {{WaveSquare, 500, 700, 40 * time.Millisecond, time.Millisecond, 30 * time.Millisecond, 0.25}},
	core.SoundKnife:        {{WaveNoise, 0, 0, 70 * time.Millisecond, 10 * time.Millisecond, 50 * time.Millisecond, 0.35}},
	core.SoundZombieHit:    {{WaveSaw, 180, 120, 60 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}},
	core.SoundZombieDeath:  {{WaveSaw, 220, 60, 250 * time.Millisecond, 5 * time.Millisecond, 150 * time.Millisecond, 0.4}},
	core.SoundZombieAttack: {{WaveSaw, 90, 140, 150 * time.Millisecond, 20 * time.Millisecond, 80 * time.Millisecond, 0.4}},
	core.SoundPlayerHit:    {{WaveSquare, 160, 80, 120 * time.Millisecond, time.Millisecond, 80 * time.Millisecond, 0.5}},
	core.SoundPurchase:     {{WaveSquare, 988, 988, 70 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}, {WaveSquare, 1319, 1319, 120 * time.Millisecond, time.Millisecond, 90 * time.Millisecond, 0.3}},
	core.SoundDenied:       {{WaveSaw, 110, 100, 180 * time.Millisecond, 5 * time.Millisecond, 60 * time.Millisecond, 0.35}},
	core.SoundDoor:         {{WaveNoise, 0, 0, 300 * time.Millisecond, 50 * time.Millisecond, 200 * time.Millisecond, 0.3}},
	core.SoundDoorLocked:   {{WaveSquare, 120, 120, 80 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}, {WaveSquare, 120, 120, 80 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}},
	core.SoundPower:        {{WaveSine, 60, 440, 600 * time.Millisecond, 50 * time.Millisecond, 200 * time.Millisecond, 0.4}},
	core.SoundMysteryBox:   {{WaveSine, 523, 523, 100 * time.Millisecond, 5 * time.Millisecond, 50 * time.Millisecond, 0.3}, {WaveSine, 659, 659, 100 * time.Millisecond, 5 * time.Millisecond, 50 * time.Millisecond, 0.3}, {WaveSine, 784, 784, 200 * time.Millisecond, 5 * time.Millisecond, 150 * time.Millisecond, 0.3}},
	core.SoundBoxMove:      {{WaveSine, 784, 262, 500 * time.Millisecond, 10 * time.Millisecond, 300 * time.Millisecond, 0.35}},
	core.SoundPerk:         {{WaveSine, 440, 880, 250 * time.Millisecond, 10 * time.Millisecond, 150 * time.Millisecond, 0.35}},
	core.SoundAmmo:         {{WaveSquare, 300, 300, 40 * time.Millisecond, time.Millisecond, 20 * time.Millisecond, 0.3}, {WaveSquare, 450, 450, 40 * time.Millisecond, time.Millisecond, 20 * time.Millisecond, 0.3}, {WaveSquare, 600, 600, 60 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}},
	core.SoundInstaKill:    {{WaveSaw, 200, 100, 400 * time.Millisecond, 10 * time.Millisecond, 300 * time.Millisecond, 0.45}},
	core.SoundDoublePoints: {{WaveSquare, 660, 660, 80 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}, {WaveSquare, 1320, 1320, 160 * time.Millisecond, time.Millisecond, 120 * time.Millisecond, 0.3}},
	core.SoundMaxAmmo:      {{WaveSine, 330, 660, 300 * time.Millisecond, 10 * time.Millisecond, 200 * time.Millisecond, 0.4}},
	core.SoundNuke:         {{WaveNoise, 0, 0, 900 * time.Millisecond, 10 * time.Millisecond, 800 * time.Millisecond, 0.6}},
	core.SoundThrow:        {{WaveNoise, 0, 0, 120 * time.Millisecond, 40 * time.Millisecond, 70 * time.Millisecond, 0.2}},
	core.SoundFrag:         {{WaveNoise, 0, 0, 500 * time.Millisecond, 2 * time.Millisecond, 450 * time.Millisecond, 0.7}},
	core.SoundStun:         {{WaveSine, 2000, 2000, 400 * time.Millisecond, time.Millisecond, 300 * time.Millisecond, 0.35}},
	core.SoundMolotov:      {{WaveNoise, 0, 0, 700 * time.Millisecond, 100 * time.Millisecond, 400 * time.Millisecond, 0.45}},
	core.SoundDisco:        {{WaveSquare, 523, 523, 90 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}, {WaveSquare, 659, 659, 90 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}, {WaveSquare, 784, 784, 90 * time.Millisecond, time.Millisecond, 40 * time.Millisecond, 0.3}, {WaveSquare, 1047, 1047, 180 * time.Millisecond, time.Millisecond, 120 * time.Millisecond, 0.3}},
	core.SoundRoundStart:   {{WaveSaw, 110, 110, 400 * time.Millisecond, 50 * time.Millisecond, 200 * time.Millisecond, 0.4}, {WaveSaw, 82, 82, 600 * time.Millisecond, 50 * time.Millisecond, 400 * time.Millisecond, 0.4}},
	core.SoundRoundWon:     {{WaveSine, 523, 523, 120 * time.Millisecond, 5 * time.Millisecond, 60 * time.Millisecond, 0.35}, {WaveSine, 784, 784, 240 * time.Millisecond, 5 * time.Millisecond, 180 * time.Millisecond, 0.35}},
	core.SoundGameOver:     {{WaveSaw, 220, 55, 1200 * time.Millisecond, 20 * time.Millisecond, 900 * time.Millisecond, 0.45}},
}

// Known reports whether a cue exists for s.
func Known(s core.Sound) bool {
	_, ok := cues[s]
	return ok
}

// Cue builds a fresh streamer for s at the given rate and volume, or nil
// when s has no cue.
func Cue(s core.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	c, ok := cues[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(c))
	for i, t := range c {
		osc := NewOscillator(t.Wave, t.From, t.To, t.Dur, rate, uint64(i)+1)
		parts[i] = withVolume(NewEnvelope(osc, t.Dur, t.Attack, t.Release, rate), t.Gain)
	}
	return withVolume(beep.Seq(parts...), volume)
}

// oscillator produces a finite wave whose frequency slides linearly.
type oscillator struct {
	wave     Wave
	from, to float64
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	noise    uint64
}

// NewOscillator returns a streamer of exactly dur worth of samples.
func NewOscillator(w Wave, from, to float64, dur time.Duration, rate beep.SampleRate, seed uint64) beep.Streamer {
	return &oscillator{wave: w, from: from, to: to, rate: rate, total: rate.N(dur), noise: seed}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.noise = o.noise*6364136223846793005 + 1442695040888963407
			v = float64(o.noise>>11)/float64(1<<53)*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		progress := float64(o.pos) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope shapes s, which is expected to last dur.
func NewEnvelope(s beep.Streamer, dur, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, total: rate.N(dur), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, math.Max(0, float64(left)/float64(e.release)))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales by a linear gain; zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
