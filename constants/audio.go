package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Floor Bounce Sound Timing
const (
	FloorBounceDuration = 220 * time.Millisecond
	FloorBounceAttack   = 4 * time.Millisecond
	FloorBounceRelease  = 160 * time.Millisecond
	FloorBounceStartHz  = 180.0
	FloorBounceEndHz    = 70.0
)

// Wall Bounce Sound Timing
const (
	WallBounceDuration = 140 * time.Millisecond
	WallBounceAttack   = 2 * time.Millisecond
	WallBounceRelease  = 100 * time.Millisecond
	WallBounceStartHz  = 320.0
	WallBounceEndHz    = 150.0
	WallBounceClick    = 12 * time.Millisecond
)
