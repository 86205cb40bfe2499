package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/boing/constants"
	"github.com/lixenwraith/boing/display"
	"github.com/lixenwraith/boing/physics"
)

// Stored integers map onto modes, anything else falls back to single
func TestModeFromSetting(t *testing.T) {
	tests := []struct {
		in   int
		want Mode
	}{
		{0, ModeSingle},
		{1, ModeExtended},
		{2, ModeReplicated},
		{3, ModeUnified},
		{4, ModeSingle},
		{-1, ModeSingle},
	}
	for _, tt := range tests {
		if got := ModeFromSetting(tt.in); got != tt.want {
			t.Errorf("ModeFromSetting(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	names := map[Mode]string{
		ModeSingle:     "single",
		ModeExtended:   "extended",
		ModeReplicated: "replicated",
		ModeUnified:    "unified",
		Mode(9):        "invalid",
	}
	for m, want := range names {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}

// Each placement picks its regions from the enumerated displays
func TestPolicyRegions(t *testing.T) {
	displays := []display.Rect{{X: 0, Y: 0, W: 40, H: 20}, {X: 40, Y: 0, W: 40, H: 20}}

	if got := policyFor(ModeSingle).regions(displays); len(got) != 1 || got[0] != displays[0] {
		t.Errorf("single regions = %v, want primary only", got)
	}
	if got := policyFor(ModeExtended).regions(displays); len(got) != 2 {
		t.Errorf("extended regions = %v, want one per display", got)
	}
	if got := policyFor(ModeReplicated).regions(displays); len(got) != 2 {
		t.Errorf("replicated regions = %v, want one per display", got)
	}
	want := display.Rect{X: 0, Y: 0, W: 80, H: 20}
	if got := policyFor(ModeUnified).regions(displays); len(got) != 1 || got[0] != want {
		t.Errorf("unified regions = %v, want [%v]", got, want)
	}
	if got := policyFor(ModeExtended).regions(nil); got != nil {
		t.Errorf("regions(nil) = %v, want nil", got)
	}
}

// Only single and replicated render the shared body
func TestPolicySharing(t *testing.T) {
	shared := map[Mode]bool{
		ModeSingle:     true,
		ModeExtended:   false,
		ModeReplicated: true,
		ModeUnified:    false,
	}
	for m, want := range shared {
		if got := policyFor(m).shared; got != want {
			t.Errorf("%v shared = %v, want %v", m, got, want)
		}
	}
}

// Every seed starts inside a typical box
func TestSeedsInsideBounds(t *testing.T) {
	b := physics.SolveBounds(160, 80)
	seeds := map[string]seedFunc{
		"centered":    seedCentered,
		"replicated":  seedReplicated,
		"floorLaunch": seedFloorLaunch,
		"extended":    seedExtended,
	}
	for name, seed := range seeds {
		body := seed(b, 0)
		if !b.Contains(body.Pos, constants.BallRadius) {
			t.Errorf("%s seed at %v outside %+v", name, body.Pos, b)
		}
		if body.SpinDir != 1 {
			t.Errorf("%s seed spin dir = %d, want 1", name, body.SpinDir)
		}
	}
}

// Floor launch seeds sit on the floor moving up at the relaunch speed
func TestSeedFloorLaunch(t *testing.T) {
	b := physics.SolveBounds(160, 80)
	body := seedFloorLaunch(b, 0)
	if body.Pos[1] != b.FloorY+constants.BallRadius {
		t.Errorf("seed y = %v, want %v", body.Pos[1], b.FloorY+constants.BallRadius)
	}
	if body.Vel[1] != constants.RelaunchSpeed {
		t.Errorf("seed vy = %v, want %v", body.Vel[1], constants.RelaunchSpeed)
	}
}

// Extended seeds are staggered by creation index
func TestSeedExtendedOffsets(t *testing.T) {
	b := physics.SolveBounds(160, 80)
	first := seedExtended(b, 0)
	second := seedExtended(b, 1)

	if dx := second.Pos[0] - first.Pos[0]; math.Abs(dx-constants.ExtendedOffsetX) > 1e-9 {
		t.Errorf("x offset = %v, want %v", dx, constants.ExtendedOffsetX)
	}
	if dy := second.Pos[1] - first.Pos[1]; math.Abs(dy-constants.ExtendedOffsetY) > 1e-9 {
		t.Errorf("y offset = %v, want %v", dy, constants.ExtendedOffsetY)
	}
	if dvx := second.Vel[0] - first.Vel[0]; math.Abs(dvx-constants.ExtendedOffsetVX) > 1e-9 {
		t.Errorf("vx offset = %v, want %v", dvx, constants.ExtendedOffsetVX)
	}
}
