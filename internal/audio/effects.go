// Package audio synthesizes the game's sound cues and plays them through
// the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every cue is generated at.
const SampleRate = beep.SampleRate(44100)

// Sound identifies a cue.
type Sound int

const (
	SoundEat Sound = iota
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Cue durations
const (
	eatNoteDuration  = 60 * time.Millisecond
	eatAttack        = 5 * time.Millisecond
	eatRelease       = 40 * time.Millisecond
	gameOverDuration = 450 * time.Millisecond
	gameOverAttack   = 10 * time.Millisecond
	gameOverRelease  = 300 * time.Millisecond
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator. Frequency may glide linearly from
// freq to endFreq over the tone.
type tone struct {
	freq, endFreq float64
	wave          Wave
	rate          beep.SampleRate
	length        int
	pos           int
	phase         float64
	rng           *rand.Rand
}

// NewTone returns a streamer that plays wave at freq for d.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, d, wave, rate)
}

// NewGlide returns a streamer whose pitch moves from freq to endFreq over d.
func NewGlide(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		endFreq: endFreq,
		wave:    wave,
		rate:    rate,
		length:  rate.N(d),
		rng:     rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2*t.phase - 1
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.length)
		f := t.freq + (t.endFreq-t.freq)*progress
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope shapes s, which should last d, with a linear attack and release.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := range n {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewEatSound is a short rising two-note chime.
func NewEatSound(rate beep.SampleRate) beep.Streamer {
	low := NewEnvelope(NewTone(659.25, eatNoteDuration, WaveSquare, rate), eatNoteDuration, eatAttack, eatRelease, rate)
	high := NewEnvelope(NewTone(987.77, eatNoteDuration, WaveSquare, rate), eatNoteDuration, eatAttack, eatRelease, rate)
	return withVolume(beep.Seq(low, high), 0.25)
}

// NewGameOverSound is a falling saw with a burst of noise.
func NewGameOverSound(rate beep.SampleRate) beep.Streamer {
	fall := NewEnvelope(NewGlide(440, 110, gameOverDuration, WaveSaw, rate), gameOverDuration, gameOverAttack, gameOverRelease, rate)
	crash := NewEnvelope(NewTone(0, gameOverDuration, WaveNoise, rate), gameOverDuration, gameOverAttack, gameOverRelease, rate)
	return withVolume(beep.Mix(withVolume(fall, 0.7), withVolume(crash, 0.2)), 0.4)
}

// NewSound builds the streamer for a cue, or nil for an unknown one.
func NewSound(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundEat:
		return NewEatSound(rate)
	case SoundGameOver:
		return NewGameOverSound(rate)
	default:
		return nil
	}
}
