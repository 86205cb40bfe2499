package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/boing/constants"
	"github.com/lixenwraith/boing/display"
	"github.com/lixenwraith/boing/physics"
)

// Mode is the multi-display topology policy
// Integer values match the persisted MultiMonitorMode setting
type Mode int

const (
	ModeSingle     Mode = iota // one surface on the primary display, shared body
	ModeExtended               // one surface per display, each with its own body
	ModeReplicated             // one surface per display, all showing the shared body
	ModeUnified                // one surface spanning all displays, own body
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeExtended:
		return "extended"
	case ModeReplicated:
		return "replicated"
	case ModeUnified:
		return "unified"
	default:
		return "invalid"
	}
}

// ModeFromSetting maps a stored integer to a mode, out of range values yield Single
func ModeFromSetting(v int) Mode {
	if v < 0 || v >= int(modeCount) {
		return ModeSingle
	}
	return Mode(v)
}

// placement decides which regions a mode creates surfaces on
type placement uint8

const (
	placePrimary placement = iota
	placePerDisplay
	placeBounding
)

// seedFunc builds the initial body for a surface or the shared context
// index is the number of surfaces created before this one
type seedFunc func(b physics.Bounds, index int) physics.Body

// policy is one row of the mode table, consulted by creation and by every tick
type policy struct {
	placement placement
	// shared surfaces render the SimContext body, others own a body each
	shared bool
	seed   seedFunc
}

var policies = [modeCount]policy{
	ModeSingle:     {placement: placePrimary, shared: true, seed: seedCentered},
	ModeExtended:   {placement: placePerDisplay, shared: false, seed: seedExtended},
	ModeReplicated: {placement: placePerDisplay, shared: true, seed: seedReplicated},
	ModeUnified:    {placement: placeBounding, shared: false, seed: seedFloorLaunch},
}

func policyFor(m Mode) policy {
	if m < 0 || m >= modeCount {
		return policies[ModeSingle]
	}
	return policies[m]
}

// regions selects the surface regions from the enumerated displays
func (p policy) regions(displays []display.Rect) []display.Rect {
	if len(displays) == 0 {
		return nil
	}
	switch p.placement {
	case placePrimary:
		return displays[:1]
	case placeBounding:
		return []display.Rect{display.Bounding(displays)}
	default:
		return displays
	}
}

// seedCentered drops the ball from half the box height with no vertical speed
func seedCentered(b physics.Bounds, _ int) physics.Body {
	y := b.FloorY + constants.BallRadius + math.Abs(b.FloorY)*0.5
	return physics.NewBody(mgl64.Vec3{0, y, 0}, mgl64.Vec3{constants.SeedVX, 0, 0})
}

// seedReplicated starts the shared body mid-air already moving up
func seedReplicated(_ physics.Bounds, _ int) physics.Body {
	return physics.NewBody(
		mgl64.Vec3{constants.SeedX, 0, 0},
		mgl64.Vec3{constants.SeedVX, constants.SeedVY, 0},
	)
}

// seedFloorLaunch starts the body on the floor as if just relaunched
func seedFloorLaunch(b physics.Bounds, _ int) physics.Body {
	return physics.NewBody(
		mgl64.Vec3{constants.SeedX, b.FloorY + constants.BallRadius, 0},
		mgl64.Vec3{constants.SeedVX, constants.SeedVY, 0},
	)
}

// seedExtended offsets each surface's floor launch so displays drift apart
func seedExtended(b physics.Bounds, index int) physics.Body {
	body := seedFloorLaunch(b, index)
	i := float64(index)
	body.Pos[0] += constants.ExtendedOffsetX * i
	body.Pos[1] += constants.ExtendedOffsetY * i
	body.Vel[0] += constants.ExtendedOffsetVX * i
	return body
}
