package constants

import "time"

// Frame Loop Timing Constants
const (
	// FrameYield is the pause at the end of every tick, caps CPU and terminal write rate (~60 FPS)
	FrameYield = 16 * time.Millisecond

	// MaxFrameDelta bounds the raw wall-clock delta fed into a tick
	// Long stalls (suspend, terminal drag) would otherwise tunnel the ball through walls
	MaxFrameDelta = 50 * time.Millisecond

	// TimeScale slows the simulation relative to wall-clock time
	TimeScale = 0.5
)

// Surface Limits
const (
	// MinSurfaceCols and MinSurfaceRows are the smallest region a rendering context accepts
	MinSurfaceCols = 4
	MinSurfaceRows = 2

	// PixelRowsPerCell is the vertical pixel density of a cell (upper/lower half blocks)
	PixelRowsPerCell = 2
)
