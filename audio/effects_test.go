package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			v := buf[j][0]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite sample at %d", total+j)
			}
			peak = math.Max(peak, math.Abs(v))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

// TestOscillatorSine verifies sine wave generation stays in range and ends on time
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(t, osc)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 1.0 || peak < 0.9 {
		t.Errorf("Expected sine peak near 1.0, got %f", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave only produces the two rails
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestSweepGlidesDown verifies the instantaneous frequency follows the endpoints
func TestSweepGlidesDown(t *testing.T) {
	rate := beep.SampleRate(44100)
	o := NewSweep(400, 100, time.Second, WaveSine, rate).(*oscillator)

	if f := o.freqAt(0); f != 400 {
		t.Errorf("start frequency = %f", f)
	}
	if f := o.freqAt(o.duration - 1); math.Abs(f-100) > 1e-9 {
		t.Errorf("end frequency = %f", f)
	}
	if f := o.freqAt(o.duration / 2); f <= 100 || f >= 400 {
		t.Errorf("midpoint frequency %f outside the sweep", f)
	}
}

// TestEnvelopeShape verifies attack starts silent and release fades out
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, time.Second, WaveSquare, rate) // phase never advances: constant 1.0
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)

	if n != 100 {
		t.Fatalf("Expected envelope to cut stream at 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[85][0] {
		t.Errorf("Expected release to decay: %f >= %f", buf[99][0], buf[85][0])
	}
}

// TestBounceSounds verifies both effects are finite, bounded and of the configured length
func TestBounceSounds(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		kind     SoundType
		duration time.Duration
	}{
		{SoundFloorBounce, 220 * time.Millisecond},
		{SoundWallBounce, 140 * time.Millisecond},
	}

	for _, tt := range tests {
		s := GetSoundEffect(tt.kind, cfg)
		if s == nil {
			t.Fatalf("no effect for %s", tt.kind)
		}
		n, peak := drain(t, s)
		// mixing may pad the final chunk with silence
		if want := rate.N(tt.duration); n < want || n > want+512 {
			t.Errorf("%s: %d samples, want about %d", tt.kind, n, want)
		}
		if peak == 0 || peak > 1.0 {
			t.Errorf("%s: peak %f outside (0, 1]", tt.kind, peak)
		}
	}

	if GetSoundEffect(SoundType(99), cfg) != nil {
		t.Error("unknown sound type should have no effect")
	}
}

// TestZeroVolumeIsSilent verifies muted effects still stream but produce no signal
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateFloorBounceSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}
