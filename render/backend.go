package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boing/constants"
	"github.com/lixenwraith/boing/display"
)

var (
	ErrContextCreate   = errors.New("context creation failed")
	ErrRegionTooSmall  = errors.New("region too small")
	ErrRegionOffscreen = errors.New("region outside screen")
	ErrContextLimit    = errors.New("context limit reached")
	ErrContextReleased = errors.New("context released")
	ErrNotCurrent      = errors.New("context not current")
	ErrNotReady        = errors.New("context resources not ready")
)

// Backend creates rendering contexts bound to screen regions and flushes presented frames
type Backend interface {
	CreateContext(region display.Rect) (*Context, error)
	Clear()
	Show()
}

// TcellBackend renders contexts onto a tcell screen
type TcellBackend struct {
	screen tcell.Screen
	mode   ColorMode

	// maxContexts caps live contexts, 0 means unlimited
	maxContexts int
	live        int
	current     *Context
}

// NewTcellBackend creates a backend presenting to screen
// mode is resolved once, auto detects from the environment
func NewTcellBackend(screen tcell.Screen, mode ColorMode) *TcellBackend {
	return &TcellBackend{
		screen: screen,
		mode:   mode.Resolve(),
	}
}

// SetMaxContexts limits how many contexts can be live at once
func (b *TcellBackend) SetMaxContexts(n int) {
	b.maxContexts = max(n, 0)
}

// LiveContexts returns the number of unreleased contexts
func (b *TcellBackend) LiveContexts() int {
	return b.live
}

// Mode returns the resolved color mode
func (b *TcellBackend) Mode() ColorMode {
	return b.mode
}

// CreateContext binds a new context to region
// Errors wrap ErrContextCreate together with the specific cause
func (b *TcellBackend) CreateContext(region display.Rect) (*Context, error) {
	if region.W < constants.MinSurfaceCols || region.H < constants.MinSurfaceRows {
		return nil, fmt.Errorf("%w: %v: %w", ErrContextCreate, region, ErrRegionTooSmall)
	}

	sw, sh := b.screen.Size()
	if region.Intersect(display.Rect{W: sw, H: sh}).Empty() {
		return nil, fmt.Errorf("%w: %v: %w", ErrContextCreate, region, ErrRegionOffscreen)
	}

	if b.maxContexts > 0 && b.live >= b.maxContexts {
		return nil, fmt.Errorf("%w: %w (%d)", ErrContextCreate, ErrContextLimit, b.maxContexts)
	}

	b.live++
	return &Context{
		backend: b,
		region:  region,
	}, nil
}

// Clear blanks the whole screen, contexts repaint their regions on the next present
func (b *TcellBackend) Clear() {
	b.screen.Clear()
}

// Show flushes all presented contexts to the terminal
func (b *TcellBackend) Show() {
	b.screen.Show()
}
