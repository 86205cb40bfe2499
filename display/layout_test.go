package display

import (
	"errors"
	"testing"
)

type fakeScreen struct {
	w, h int
}

func (f *fakeScreen) Size() (int, int) { return f.w, f.h }

func TestParseDims(t *testing.T) {
	tests := []struct {
		in      string
		want    Dims
		wantErr bool
	}{
		{"2x1", Dims{2, 1}, false},
		{" 3X2 ", Dims{3, 2}, false},
		{"80x24", Dims{80, 24}, false},
		{"0x1", Dims{}, true},
		{"2", Dims{}, true},
		{"ax1", Dims{}, true},
		{"2x1x1", Dims{}, true},
		{"-1x4", Dims{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDims(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDims) {
				t.Errorf("ParseDims(%q) error = %v, want ErrInvalidDims", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDims(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDims(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestSplitCoversArea verifies tiles partition the area without gaps or overlap
func TestSplitCoversArea(t *testing.T) {
	area := Rect{W: 81, H: 25}
	tiles := Dims{W: 3, H: 2}.Split(area)

	if len(tiles) != 6 {
		t.Fatalf("got %d tiles, want 6", len(tiles))
	}

	total := 0
	for i, a := range tiles {
		total += a.W * a.H
		for j, b := range tiles {
			if i != j && !a.Intersect(b).Empty() {
				t.Errorf("tiles %d and %d overlap: %v %v", i, j, a, b)
			}
		}
	}
	if total != area.W*area.H {
		t.Errorf("tiles cover %d cells, want %d", total, area.W*area.H)
	}
	if Bounding(tiles) != area {
		t.Errorf("Bounding(tiles) = %v, want %v", Bounding(tiles), area)
	}
}

func TestScreenLayoutFollowsResize(t *testing.T) {
	screen := &fakeScreen{w: 100, h: 30}
	layout := NewScreenLayout(screen, Dims{W: 2, H: 1})

	ds := layout.Displays()
	if len(ds) != 2 || ds[0] != (Rect{0, 0, 50, 30}) || ds[1] != (Rect{50, 0, 50, 30}) {
		t.Fatalf("unexpected displays %v", ds)
	}

	screen.w, screen.h = 60, 20
	ds = layout.Displays()
	if ds[1] != (Rect{30, 0, 30, 20}) {
		t.Errorf("after resize second display = %v", ds[1])
	}

	single := NewScreenLayout(screen, Dims{})
	if got := single.Displays(); len(got) != 1 || got[0] != (Rect{0, 0, 60, 20}) {
		t.Errorf("zero grid should yield one full-screen display, got %v", got)
	}
}

func TestBoxCenteredAndClamped(t *testing.T) {
	screen := &fakeScreen{w: 80, h: 24}

	ds := NewBox(screen, Dims{W: 40, H: 10}).Displays()
	if len(ds) != 1 || ds[0] != (Rect{20, 7, 40, 10}) {
		t.Errorf("centered box = %v", ds)
	}

	ds = NewBox(screen, Dims{W: 200, H: 100}).Displays()
	if ds[0] != (Rect{0, 0, 80, 24}) {
		t.Errorf("oversized box should clamp to screen, got %v", ds[0])
	}

	screen.w = 0
	if ds = NewBox(screen, Dims{W: 10, H: 10}).Displays(); len(ds) != 0 {
		t.Errorf("zero-width screen should have no display, got %v", ds)
	}
}

func TestRectUnionIgnoresEmpty(t *testing.T) {
	a := Rect{X: 5, Y: 5, W: 10, H: 10}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("union with empty = %v, want %v", got, a)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Errorf("empty union a = %v, want %v", got, a)
	}
	b := Rect{X: 20, Y: 0, W: 5, H: 5}
	if got := a.Union(b); got != (Rect{X: 5, Y: 0, W: 20, H: 15}) {
		t.Errorf("union = %v", got)
	}
}

// Static hands out copies so callers cannot mutate the list
func TestStaticDisplaysCopy(t *testing.T) {
	s := Static{{W: 10, H: 5}, {X: 10, W: 10, H: 5}}
	out := s.Displays()
	out[0].W = 99
	if s[0].W != 10 {
		t.Error("Displays must return a copy")
	}
}
