package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/boing/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a wave whose frequency glides exponentially from start to end
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: start,
		endFreq:   end,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

// freqAt returns the instantaneous frequency, geometric between the endpoints
func (o *oscillator) freqAt(pos int) float64 {
	if o.duration <= 1 || o.startFreq <= 0 || o.endFreq <= 0 || o.startFreq == o.endFreq {
		return o.startFreq
	}
	t := float64(pos) / float64(o.duration-1)
	return o.startFreq * math.Pow(o.endFreq/o.startFreq, t)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 1)
		o.phase += o.freqAt(o.position) / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateFloorBounceSound generates the low falling "boing" of a floor relaunch
func CreateFloorBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewSweep(constants.FloorBounceStartHz, constants.FloorBounceEndHz, constants.FloorBounceDuration, WaveSine, rate)
	shaped := NewEnvelope(body, constants.FloorBounceDuration, constants.FloorBounceAttack, constants.FloorBounceRelease, rate)

	// Octave overtone for a hollow drum character
	over := NewSweep(constants.FloorBounceStartHz*2, constants.FloorBounceEndHz*2, constants.FloorBounceDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.FloorBounceDuration, constants.FloorBounceAttack, constants.FloorBounceRelease/2, rate)

	mixed := beep.Mix(
		newVolume(shaped, 0.8),
		newVolume(overShaped, 0.2),
	)

	vol := cfg.EffectVolumes[SoundFloorBounce] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateWallBounceSound generates a shorter, brighter knock with a noise click
func CreateWallBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewSweep(constants.WallBounceStartHz, constants.WallBounceEndHz, constants.WallBounceDuration, WaveSine, rate)
	toneShaped := NewEnvelope(tone, constants.WallBounceDuration, constants.WallBounceAttack, constants.WallBounceRelease, rate)

	click := NewOscillator(0, constants.WallBounceClick, WaveNoise, rate)
	clickShaped := NewEnvelope(click, constants.WallBounceClick, 0, constants.WallBounceClick, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.85),
		newVolume(clickShaped, 0.15),
	)

	vol := cfg.EffectVolumes[SoundWallBounce] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundFloorBounce:
		return CreateFloorBounceSound(cfg)
	case SoundWallBounce:
		return CreateWallBounceSound(cfg)
	default:
		return nil
	}
}
