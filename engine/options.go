package engine

import (
	"github.com/lixenwraith/boing/config"
	"github.com/lixenwraith/boing/render"
)

// FrameOptions are the settings the orchestrator applies every tick
type FrameOptions struct {
	Scene render.SceneOptions
	Sound bool
}

// OptionsFromSettings maps persisted settings onto frame options
func OptionsFromSettings(s config.Settings) FrameOptions {
	return FrameOptions{
		Scene: render.SceneOptions{
			Background:  render.RGBFromPacked(s.BackgroundColor),
			Grid:        s.Grid,
			FloorShadow: s.FloorShadow,
			WallShadow:  s.WallShadow,
			Lighting:    s.BallLighting,
			Geometry:    render.Geometry(s.GeometryMode),
		},
		Sound: s.Sound,
	}
}
