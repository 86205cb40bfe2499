package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidDims = errors.New("invalid dimensions")
)

// Enumerator lists the display regions currently available
// The first entry is the primary display
type Enumerator interface {
	Displays() []Rect
}

// Sizer reports the terminal size in cells, satisfied by tcell.Screen
type Sizer interface {
	Size() (int, int)
}

// Dims is a positive width/height pair parsed from "WxH"
type Dims struct {
	W, H int
}

// ParseDims parses "WxH" (case-insensitive separator) into positive dimensions
func ParseDims(s string) (Dims, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return Dims{}, fmt.Errorf("%w: %q", ErrInvalidDims, s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return Dims{}, fmt.Errorf("%w: %q", ErrInvalidDims, s)
	}
	return Dims{W: w, H: h}, nil
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.W, d.H)
}

// Split tiles area into d.W columns by d.H rows, row-major
// Remainder cells are spread so tiles differ by at most one cell
func (d Dims) Split(area Rect) []Rect {
	if d.W <= 0 || d.H <= 0 || area.Empty() {
		return nil
	}
	out := make([]Rect, 0, d.W*d.H)
	for row := 0; row < d.H; row++ {
		y0 := area.Y + area.H*row/d.H
		y1 := area.Y + area.H*(row+1)/d.H
		for col := 0; col < d.W; col++ {
			x0 := area.X + area.W*col/d.W
			x1 := area.X + area.W*(col+1)/d.W
			tile := Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
			if !tile.Empty() {
				out = append(out, tile)
			}
		}
	}
	return out
}

// ScreenLayout treats a grid of terminal tiles as separate monitors
// Tiles are re-derived from the current screen size on every call
type ScreenLayout struct {
	screen Sizer
	grid   Dims
}

// NewScreenLayout creates a layout splitting screen into grid tiles
// A non-positive grid collapses to a single display
func NewScreenLayout(screen Sizer, grid Dims) *ScreenLayout {
	if grid.W <= 0 || grid.H <= 0 {
		grid = Dims{W: 1, H: 1}
	}
	return &ScreenLayout{screen: screen, grid: grid}
}

// Displays returns the tiles for the current screen size
func (l *ScreenLayout) Displays() []Rect {
	w, h := l.screen.Size()
	return l.grid.Split(Rect{W: w, H: h})
}

// Box is a single display of fixed size centered on the screen, clamped to fit
type Box struct {
	screen Sizer
	size   Dims
}

// NewBox creates a centered preview box enumerator
func NewBox(screen Sizer, size Dims) *Box {
	return &Box{screen: screen, size: size}
}

func (b *Box) Displays() []Rect {
	sw, sh := b.screen.Size()
	w := min(b.size.W, sw)
	h := min(b.size.H, sh)
	r := Rect{X: (sw - w) / 2, Y: (sh - h) / 2, W: w, H: h}
	if r.Empty() {
		return nil
	}
	return []Rect{r}
}

// Static is a fixed display list
type Static []Rect

func (s Static) Displays() []Rect {
	out := make([]Rect, len(s))
	copy(out, s)
	return out
}
