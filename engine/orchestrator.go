package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/boing/audio"
	"github.com/lixenwraith/boing/constants"
	"github.com/lixenwraith/boing/input"
	"github.com/lixenwraith/boing/physics"
	"github.com/lixenwraith/boing/render"
)

// SoundPlayer triggers bounce sounds, implemented by audio.SoundManager
type SoundPlayer interface {
	Play(audio.SoundType)
}

// Reloader re-reads settings for a reload request
type Reloader func() (Mode, FrameOptions)

// Orchestrator drives the per-frame simulate and render cycle over all surfaces
// All work happens on the goroutine calling Run or Tick
type Orchestrator struct {
	topo    *TopologyManager
	backend render.Backend
	clock   Clock
	sound   SoundPlayer
	opts    FrameOptions

	intents  <-chan input.Intent
	reloader Reloader

	last time.Time
	// soundPlayed limits bounce sounds to one per tick
	soundPlayed bool
}

// NewOrchestrator creates an orchestrator over an already built topology
// sound may be nil
func NewOrchestrator(topo *TopologyManager, backend render.Backend, clock Clock, sound SoundPlayer, opts FrameOptions) *Orchestrator {
	return &Orchestrator{
		topo:    topo,
		backend: backend,
		clock:   clock,
		sound:   sound,
		opts:    opts,
		last:    clock.Now(),
	}
}

// SetIntents attaches the input queue drained at the top of every frame
func (o *Orchestrator) SetIntents(ch <-chan input.Intent) {
	o.intents = ch
}

// SetReloader installs the settings source used for reload intents
func (o *Orchestrator) SetReloader(r Reloader) {
	o.reloader = r
}

// Options returns the active frame options
func (o *Orchestrator) Options() FrameOptions {
	return o.opts
}

// Reapply tears down and rebuilds the topology with new settings
func (o *Orchestrator) Reapply(mode Mode, opts FrameOptions) error {
	o.opts = opts
	if err := o.topo.Build(mode); err != nil {
		return err
	}
	o.last = o.clock.Now()
	return nil
}

// Run loops until ctx is done, a quit intent arrives, the input queue closes,
// or a reload leaves no surface
func (o *Orchestrator) Run(ctx context.Context) error {
	ticker := time.NewTicker(constants.FrameYield)
	defer ticker.Stop()

	for {
		quit, err := o.drainIntents()
		if quit || err != nil {
			return err
		}

		o.Tick()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// drainIntents handles queued input without blocking
func (o *Orchestrator) drainIntents() (quit bool, err error) {
	for {
		select {
		case it, ok := <-o.intents:
			if !ok {
				return true, nil
			}
			switch it.Type {
			case input.IntentQuit:
				return true, nil
			case input.IntentResize:
				// Regions may shrink or move, stale cells outside them must not linger
				o.backend.Clear()
				o.topo.Relocate()
			case input.IntentReload:
				if o.reloader == nil {
					continue
				}
				mode, opts := o.reloader()
				if err := o.Reapply(mode, opts); err != nil {
					return true, err
				}
			}
		default:
			return false, nil
		}
	}
}

// Tick advances simulation by the elapsed wall-clock time and renders every surface
func (o *Orchestrator) Tick() {
	now := o.clock.Now()
	raw := now.Sub(o.last)
	o.last = now
	raw = min(max(raw, 0), constants.MaxFrameDelta)
	dt := raw.Seconds() * constants.TimeScale

	surfaces := o.topo.surfaces
	if len(surfaces) == 0 {
		return
	}
	pol := policyFor(o.topo.mode)

	o.soundPlayed = false
	if pol.shared {
		first := surfaces[0]
		first.refreshBounds()
		o.topo.sim.Bounds = first.bounds
		o.emit(physics.Advance(&o.topo.sim.Body, o.topo.sim.Bounds, dt))
	}

	for _, s := range surfaces {
		s.refreshBounds()
		if !pol.shared {
			o.emit(physics.Advance(&s.own, s.bounds, dt))
		}

		if err := s.render(o.opts.Scene); err != nil {
			if !s.failing {
				log.Printf("orchestrator: surface %d render failed: %v", s.index, err)
				s.failing = true
			}
			continue
		}
		s.failing = false
	}

	o.backend.Show()
}

// emit plays the sound for one body's contacts unless this tick already played one
// Bodies are advanced in surface order, so the first contact wins. Within one step
// a floor contact beats a wall contact and depth wall contacts are silent
func (o *Orchestrator) emit(impact physics.Impact) {
	if o.soundPlayed || !o.opts.Sound || o.sound == nil {
		return
	}
	switch {
	case impact.Has(physics.ImpactFloor):
		o.sound.Play(audio.SoundFloorBounce)
	case impact.Has(physics.ImpactWall):
		o.sound.Play(audio.SoundWallBounce)
	default:
		return
	}
	o.soundPlayed = true
}
