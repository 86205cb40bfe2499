package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/boing/display"
	"github.com/lixenwraith/boing/render"
)

var (
	ErrNoSurfaces = errors.New("no rendering surface could be created")
)

// TopologyManager creates and owns the surfaces for the active mode
type TopologyManager struct {
	backend  render.Backend
	displays display.Enumerator
	sim      *SimContext

	mode     Mode
	surfaces []*Surface
}

// NewTopologyManager creates an empty manager, Build creates surfaces
func NewTopologyManager(backend render.Backend, displays display.Enumerator) *TopologyManager {
	return &TopologyManager{
		backend:  backend,
		displays: displays,
		sim:      &SimContext{},
	}
}

// Mode returns the mode of the last successful Build
func (tm *TopologyManager) Mode() Mode {
	return tm.mode
}

// Surfaces returns the live surfaces in creation order
func (tm *TopologyManager) Surfaces() []*Surface {
	out := make([]*Surface, len(tm.surfaces))
	copy(out, tm.surfaces)
	return out
}

// Shared returns the shared simulation context
func (tm *TopologyManager) Shared() *SimContext {
	return tm.sim
}

// Build tears down existing surfaces and creates those required by mode
// Displays whose context cannot be created are skipped and logged
// Returns ErrNoSurfaces when nothing could be created
func (tm *TopologyManager) Build(mode Mode) error {
	tm.Teardown()

	pol := policyFor(mode)
	regions := pol.regions(tm.displays.Displays())

	for slot, region := range regions {
		ctx, err := tm.backend.CreateContext(region)
		if err != nil {
			log.Printf("topology: skipping display %d (%v): %v", slot, region, err)
			continue
		}

		s := &Surface{
			index:  len(tm.surfaces),
			slot:   slot,
			ctx:    ctx,
			shared: tm.sim,
		}
		s.refreshBounds()

		if pol.shared {
			s.binding = bindShared
		} else {
			s.binding = bindOwned
			s.own = pol.seed(s.bounds, s.index)
		}
		tm.surfaces = append(tm.surfaces, s)
	}

	if len(tm.surfaces) == 0 {
		return fmt.Errorf("%w: mode %s over %d region(s)", ErrNoSurfaces, mode, len(regions))
	}

	if pol.shared {
		tm.sim.Bounds = tm.surfaces[0].bounds
		tm.sim.Body = pol.seed(tm.sim.Bounds, 0)
	}

	tm.mode = mode
	log.Printf("topology: %s mode with %d surface(s)", mode, len(tm.surfaces))
	return nil
}

// Teardown releases every surface
func (tm *TopologyManager) Teardown() {
	for _, s := range tm.surfaces {
		s.release()
	}
	tm.surfaces = nil
}

// Relocate re-enumerates displays and moves surfaces to their new regions in place
// Bodies and bindings are kept, bounds follow on the next tick
func (tm *TopologyManager) Relocate() {
	regions := policyFor(tm.mode).regions(tm.displays.Displays())
	for _, s := range tm.surfaces {
		if s.slot >= len(regions) {
			log.Printf("topology: display %d vanished, surface %d keeps %v", s.slot, s.index, s.Region())
			continue
		}
		s.ctx.Relocate(regions[s.slot])
	}
}
