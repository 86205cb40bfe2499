package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is the mutable simulation state of one sphere
type Body struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	// SpinAngle is in degrees, always within [0, 360)
	SpinAngle float64
	// SpinDir is +1 or -1
	SpinDir int
}

// NewBody creates a body with zero spin turning in the positive direction
func NewBody(pos, vel mgl64.Vec3) Body {
	return Body{
		Pos:     pos,
		Vel:     vel,
		SpinDir: 1,
	}
}

// flipSpin reverses spin direction, normalizing a zero direction to -1
func (b *Body) flipSpin() {
	if b.SpinDir >= 0 {
		b.SpinDir = -1
	} else {
		b.SpinDir = 1
	}
}

// WrapDegrees maps any angle into [0, 360)
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -tiny + 360 rounds to 360 in float64
	if a >= 360 {
		a = 0
	}
	return a
}
