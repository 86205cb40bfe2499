package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/boing/constants"
)

// Bounds is the visible box the ball is constrained to, derived from viewport geometry
// Walls are symmetric around the origin on X and Z, the floor sits at FloorY
type Bounds struct {
	WallX  float64
	WallZ  float64
	FloorY float64
}

// SolveBounds computes the box half-extents for a w×h pixel viewport
// Non-positive dimensions are clamped to 1 so the aspect ratio stays finite
func SolveBounds(w, h int) Bounds {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	halfHeight := math.Tan(mgl64.DegToRad(constants.FieldOfViewDeg)/2) * constants.CameraDistance
	halfWidth := halfHeight * float64(w) / float64(h)

	return Bounds{
		WallX:  halfWidth,
		WallZ:  halfWidth,
		FloorY: -halfHeight,
	}
}

// Contains reports whether a sphere of radius r centered at pos lies inside the box
// The box is open upward
func (b Bounds) Contains(pos mgl64.Vec3, r float64) bool {
	wallX := math.Max(b.WallX-r, 0)
	wallZ := math.Max(b.WallZ-r, 0)
	return pos[0] >= -wallX && pos[0] <= wallX &&
		pos[1] >= b.FloorY+r &&
		pos[2] >= -wallZ && pos[2] <= wallZ
}
