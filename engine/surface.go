package engine

import (
	"github.com/lixenwraith/boing/display"
	"github.com/lixenwraith/boing/physics"
	"github.com/lixenwraith/boing/render"
)

// SimContext is the simulation state shared by Single and Replicated surfaces
// Its Bounds always come from the first live surface
type SimContext struct {
	Body   physics.Body
	Bounds physics.Bounds
}

// binding is which body a surface renders, fixed at creation
type binding uint8

const (
	bindShared binding = iota
	bindOwned
)

// Surface is one rendering target with its own context, bounds and body binding
type Surface struct {
	// index is the creation order within the current topology
	index int
	// slot is the position in the enumerated region list, used for relocation
	slot int

	ctx     *render.Context
	bounds  physics.Bounds
	binding binding
	own     physics.Body
	shared  *SimContext

	// failing suppresses repeated logging of the same render error
	failing bool
}

// Region returns the screen region the surface draws into
func (s *Surface) Region() display.Rect {
	return s.ctx.Region()
}

// Bounds returns the box derived from this surface's own size
func (s *Surface) Bounds() physics.Bounds {
	return s.bounds
}

// Body returns the body authoritative for this surface
func (s *Surface) Body() *physics.Body {
	if s.binding == bindShared {
		return &s.shared.Body
	}
	return &s.own
}

// authoritativeBounds are the bounds the rendered body is integrated in
func (s *Surface) authoritativeBounds() physics.Bounds {
	if s.binding == bindShared {
		return s.shared.Bounds
	}
	return s.bounds
}

// refreshBounds re-derives bounds from the current pixel size
func (s *Surface) refreshBounds() {
	w, h := s.ctx.PixelSize()
	s.bounds = physics.SolveBounds(w, h)
}

// render draws the authoritative body into the surface and presents it
func (s *Surface) render(opts render.SceneOptions) error {
	if err := s.ctx.MakeCurrent(); err != nil {
		return err
	}
	s.ctx.EnsureResources(opts.Geometry)

	body := s.Body()
	scene := render.Scene{
		Ball:         body.Pos,
		Spin:         body.SpinAngle,
		GridFloorY:   s.bounds.FloorY,
		ShadowFloorY: s.authoritativeBounds().FloorY,
	}
	if err := s.ctx.DrawScene(scene, opts); err != nil {
		return err
	}
	return s.ctx.Present()
}

func (s *Surface) release() {
	s.ctx.Release()
}
