package physics

import (
	"math"

	"github.com/lixenwraith/boing/constants"
)

// Impact is a bitmask of boundary contacts detected during one step
type Impact uint8

const (
	ImpactNone Impact = 0

	// ImpactFloor is set on floor contact, the ball is relaunched
	ImpactFloor Impact = 1 << 0
	// ImpactWall is set on X wall contact, spin direction flips
	ImpactWall Impact = 1 << 1
	// ImpactDepth is set on Z wall contact, cosmetic only
	ImpactDepth Impact = 1 << 2
)

// Has reports whether all bits of flag are set
func (i Impact) Has(flag Impact) bool {
	return flag != 0 && i&flag == flag
}

// Advance integrates body by dt seconds inside bounds using explicit Euler
// dt above MaxStepSeconds is clamped, dt <= 0 is a no-op
//
// Floor contact relaunches at a fixed speed rather than reflecting, X walls mirror vx
// and flip spin, Z walls mirror vz only
func Advance(b *Body, bounds Bounds, dt float64) Impact {
	if dt <= 0 || math.IsNaN(dt) {
		return ImpactNone
	}
	if dt > constants.MaxStepSeconds {
		dt = constants.MaxStepSeconds
	}

	r := constants.BallRadius

	b.SpinAngle = WrapDegrees(b.SpinAngle + float64(b.SpinDir)*constants.SpinSpeed*dt)

	// Position uses the velocity from the start of the step
	vel := b.Vel
	b.Vel[1] += constants.Gravity * dt
	b.Pos = b.Pos.Add(vel.Mul(dt))

	impact := ImpactNone

	if floor := bounds.FloorY + r; b.Pos[1] < floor {
		b.Pos[1] = floor
		b.Vel[1] = constants.RelaunchSpeed
		impact |= ImpactFloor
	}

	// Degenerate viewports narrower than the ball collapse the axis to the origin
	wallX := math.Max(bounds.WallX-r, 0)
	if b.Pos[0] > wallX {
		b.Pos[0] = wallX
		b.Vel[0] = -math.Abs(b.Vel[0])
		b.flipSpin()
		impact |= ImpactWall
	} else if b.Pos[0] < -wallX {
		b.Pos[0] = -wallX
		b.Vel[0] = math.Abs(b.Vel[0])
		b.flipSpin()
		impact |= ImpactWall
	}

	wallZ := math.Max(bounds.WallZ-r, 0)
	if b.Pos[2] > wallZ {
		b.Pos[2] = wallZ
		b.Vel[2] = -math.Abs(b.Vel[2])
		impact |= ImpactDepth
	} else if b.Pos[2] < -wallZ {
		b.Pos[2] = -wallZ
		b.Vel[2] = math.Abs(b.Vel[2])
		impact |= ImpactDepth
	}

	return impact
}
