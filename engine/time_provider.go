package engine

import "time"

// Clock is the wall-clock source the orchestrator measures frame deltas with
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the system clock, readings carry the monotonic component
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (TimeProvider) Now() time.Time {
	return time.Now()
}
