package audio

import "testing"

func TestSoundTypeString(t *testing.T) {
	if SoundFloorBounce.String() != "floor" || SoundWallBounce.String() != "wall" {
		t.Errorf("unexpected names %s/%s", SoundFloorBounce, SoundWallBounce)
	}
	if SoundType(42).String() != "unknown" {
		t.Error("out of range sound type should be unknown")
	}
}
