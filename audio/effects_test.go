package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if v := buf[j][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
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

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: sample out of range: %f", wave, peak)
		}
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("expected silent first sample, got %f", buf[0][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("expected full sustain, got %f", buf[500][0])
	}
	if buf[999][0] > 0.02 {
		t.Errorf("expected release near zero, got %f", buf[999][0])
	}
}

func TestEnvelopeClipsOversizedPhases(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 50*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 50*time.Millisecond, time.Second, time.Second, rate)
	n, peak := drain(t, env)
	if n != 50 {
		t.Errorf("expected 50 samples, got %d", n)
	}
	if peak > 1.0 {
		t.Errorf("gain overshoot: %f", peak)
	}
}

func TestNewCue(t *testing.T) {
	cfg := DefaultConfig()
	for c := Cue(0); c < cueCount; c++ {
		s := NewCue(c, &cfg)
		if s == nil {
			t.Fatalf("cue %s: nil streamer", c)
		}
		n, peak := drain(t, s)
		if n == 0 || peak == 0 {
			t.Errorf("cue %s: expected audible samples, got n=%d peak=%f", c, n, peak)
		}
	}
	if NewCue(cueCount, &cfg) != nil {
		t.Error("expected nil streamer for unknown cue")
	}
}

func TestCueVolume(t *testing.T) {
	cfg := Config{MasterVolume: 0.5, CueVolumes: map[Cue]float64{CueReject: 0.5}}
	if v := cfg.cueVolume(CueReject); v != 0.25 {
		t.Errorf("expected 0.25, got %f", v)
	}
	if v := cfg.cueVolume(CueReach); v != 0.5 {
		t.Errorf("expected 0.5, got %f", v)
	}
}
