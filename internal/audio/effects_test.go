package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and the
// largest absolute value seen.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)

	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, NewTone(440, 100*time.Millisecond, wave, rate))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, expected %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %v exceeds 1", wave, peak)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	s := NewEnvelope(NewTone(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("middle sample = %v, expected full level", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release not fading: %v then %v", buf[90][0], buf[99][0])
	}
}

func TestEatSound(t *testing.T) {
	n, peak := drain(t, NewEatSound(SampleRate))
	if expected := 2 * SampleRate.N(eatNoteDuration); n != expected {
		t.Errorf("eat sound = %d samples, expected %d", n, expected)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("eat sound peak = %v, expected audible and unclipped", peak)
	}
}

func TestGameOverSound(t *testing.T) {
	n, peak := drain(t, NewGameOverSound(SampleRate))
	if n < SampleRate.N(gameOverDuration) {
		t.Errorf("game over sound = %d samples, expected at least %d", n, SampleRate.N(gameOverDuration))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("game over sound peak = %v, expected audible and unclipped", peak)
	}
}

func TestNewSound(t *testing.T) {
	if NewSound(SoundEat, SampleRate) == nil || NewSound(SoundGameOver, SampleRate) == nil {
		t.Error("known sounds should build a streamer")
	}
	if NewSound(Sound(42), SampleRate) != nil {
		t.Error("unknown sound should return nil")
	}
}

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager()
	if sm.Enabled() {
		t.Error("new manager should not be enabled")
	}
	// No speaker: these must be no-ops.
	sm.PlayEat()
	sm.PlayGameOver()
	sm.Cleanup()
}
