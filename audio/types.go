package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundFloorBounce SoundType = iota // Ball relaunched off the floor
	SoundWallBounce                   // Ball reflected off a side wall
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFloorBounce:
		return "floor"
	case SoundWallBounce:
		return "wall"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio output unavailable")
	ErrUnknownSound     = errors.New("unknown sound type")
)
