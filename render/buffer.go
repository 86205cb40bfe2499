package render

import "math"

// FrameBuffer is a color plus depth target addressed in pixels
// A pixel is half a terminal cell, so the buffer is twice as tall as its region
type FrameBuffer struct {
	color  []RGB
	depth  []float64
	width  int
	height int
}

// NewFrameBuffer creates a buffer with the specified dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	b := &FrameBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *FrameBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.color) < size {
		b.color = make([]RGB, size)
		b.depth = make([]float64, size)
	} else {
		b.color = b.color[:size]
		b.depth = b.depth[:size]
	}
	b.width = width
	b.height = height
	b.Clear(RGBBlack)
}

// Clear fills color with bg and resets depth to infinity using exponential copy
func (b *FrameBuffer) Clear(bg RGB) {
	if len(b.color) == 0 {
		return
	}
	b.color[0] = bg
	b.depth[0] = math.Inf(1)
	for filled := 1; filled < len(b.color); filled *= 2 {
		copy(b.color[filled:], b.color[:filled])
	}
	for filled := 1; filled < len(b.depth); filled *= 2 {
		copy(b.depth[filled:], b.depth[:filled])
	}
}

func (b *FrameBuffer) Width() int  { return b.width }
func (b *FrameBuffer) Height() int { return b.height }

// inBounds returns true if in buffer bounds
func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the color at x, y, black outside the buffer
func (b *FrameBuffer) At(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGBBlack
	}
	return b.color[y*b.width+x]
}

// Depth returns the stored depth at x, y, +Inf outside the buffer or where nothing was drawn
func (b *FrameBuffer) Depth(x, y int) float64 {
	if !b.inBounds(x, y) {
		return math.Inf(1)
	}
	return b.depth[y*b.width+x]
}

// Plot writes an opaque pixel if z passes the depth test
// The test is strict so coplanar fragments of one primitive never double-blend
func (b *FrameBuffer) Plot(x, y int, z float64, c RGB) bool {
	return b.Blend(x, y, z, c, 1.0)
}

// Blend mixes c over the stored color by alpha if z passes the strict depth test
// Passing fragments write depth even when translucent
func (b *FrameBuffer) Blend(x, y int, z float64, c RGB, alpha float64) bool {
	if !b.inBounds(x, y) || z < -1 || z > 1 {
		return false
	}
	idx := y*b.width + x
	if !(z < b.depth[idx]) {
		return false
	}
	b.depth[idx] = z
	b.color[idx] = Blend(b.color[idx], c, alpha)
	return true
}
