package render

import (
	"fmt"
	"log"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/boing/constants"
	"github.com/lixenwraith/boing/display"
)

// Scene is the per-frame state a context draws
type Scene struct {
	Ball mgl64.Vec3
	// Spin is the ball spin angle in degrees
	Spin float64

	// GridFloorY is this surface's own floor, ShadowFloorY is the floor of the body's authoritative bounds
	GridFloorY   float64
	ShadowFloorY float64
}

// SceneOptions are the settings-driven toggles for drawing
type SceneOptions struct {
	Background  RGB
	Grid        bool
	FloorShadow bool
	WallShadow  bool
	Lighting    bool
	Geometry    Geometry
}

// Context is a rendering target bound to one screen region
// It exclusively owns its framebuffer, projection, texture and mesh
type Context struct {
	backend *TcellBackend
	region  display.Rect

	fb         *FrameBuffer
	projection mgl64.Mat4
	projW      int
	projH      int

	texture *Texture
	mesh    *Mesh

	// lost is set when resources were dropped after first creation
	lost     bool
	released bool
}

// Region returns the screen region the context presents to
func (c *Context) Region() display.Rect {
	return c.region
}

// PixelSize returns the framebuffer size for the current region
func (c *Context) PixelSize() (int, int) {
	return c.region.W, c.region.H * constants.PixelRowsPerCell
}

// Relocate rebinds the context to a new region, resources follow on the next EnsureResources
func (c *Context) Relocate(region display.Rect) {
	c.region = region
}

// MakeCurrent selects this context as the draw target of its backend
func (c *Context) MakeCurrent() error {
	if c.released {
		return ErrContextReleased
	}
	c.backend.current = c
	return nil
}

func (c *Context) isCurrent() bool {
	return !c.released && c.backend.current == c
}

// EnsureResources lazily (re)creates everything the context draws with
// It is idempotent and safe to call at the top of every frame
func (c *Context) EnsureResources(g Geometry) {
	w, h := c.PixelSize()

	if c.fb == nil {
		c.fb = NewFrameBuffer(w, h)
	} else if c.fb.Width() != w || c.fb.Height() != h {
		c.fb.Resize(w, h)
	}

	if c.projW != w || c.projH != h {
		aspect := float64(max(w, 1)) / float64(max(h, 1))
		c.projection = mgl64.Perspective(mgl64.DegToRad(constants.FieldOfViewDeg), aspect, constants.NearPlane, constants.FarPlane)
		c.projW, c.projH = w, h
	}

	if !c.texture.Valid() {
		c.texture = NewCheckerTexture(constants.TextureSize, constants.CheckerColumns, constants.CheckerRows, CheckerRed, CheckerWhite)
		if c.lost {
			log.Printf("render: regenerated texture for %v", c.region)
		}
	}

	if c.mesh == nil || c.mesh.Geometry != g {
		c.mesh = NewSphereMesh(g)
		if c.lost {
			log.Printf("render: regenerated %s mesh for %v", g, c.region)
		}
	}

	c.lost = false
}

// LoseResources drops texture and mesh, as a device reset would
func (c *Context) LoseResources() {
	c.texture = nil
	c.mesh = nil
	c.lost = true
}

// FrameBuffer exposes the draw target, nil before the first EnsureResources
func (c *Context) FrameBuffer() *FrameBuffer {
	return c.fb
}

func (c *Context) view() mgl64.Mat4 {
	return mgl64.Translate3D(0, 0, -constants.CameraDistance)
}

func eyePosition() mgl64.Vec3 {
	return mgl64.Vec3{0, 0, constants.CameraDistance}
}

// BallOrientation is the fixed tilt and yaw followed by spin about the polar axis
func BallOrientation(spinDeg float64) mgl64.Quat {
	tilt := mgl64.QuatRotate(mgl64.DegToRad(constants.BallTiltDeg), mgl64.Vec3{1, 0, 0})
	yaw := mgl64.QuatRotate(mgl64.DegToRad(constants.BallYawDeg), mgl64.Vec3{0, 1, 0})
	spin := mgl64.QuatRotate(mgl64.DegToRad(spinDeg), mgl64.Vec3{0, 0, 1})
	return tilt.Mul(yaw).Mul(spin)
}

func lightDirection() mgl64.Vec3 {
	return mgl64.Vec3{constants.LightDirX, constants.LightDirY, constants.LightDirZ}.Normalize()
}

// lightIntensity is the fixed-function ambient plus Lambert diffuse term
func lightIntensity(n, light mgl64.Vec3) float64 {
	return constants.AmbientTerm + constants.DiffuseTerm*math.Max(0, n.Normalize().Dot(light))
}

// DrawScene clears and draws grid, shadows and ball
// EnsureResources must have been called for the current region
func (c *Context) DrawScene(s Scene, opts SceneOptions) error {
	if !c.isCurrent() {
		return ErrNotCurrent
	}
	if c.fb == nil || c.mesh == nil || !c.texture.Valid() {
		return fmt.Errorf("%w: resources missing", ErrNotReady)
	}

	c.fb.Clear(opts.Background)

	r := &rasterizer{
		fb:       c.fb,
		viewProj: c.projection.Mul4(c.view()),
		eye:      eyePosition(),
	}

	if opts.Grid {
		drawGrid(r, s.GridFloorY)
	}

	radius := constants.BallRadius
	if opts.FloorShadow {
		center := mgl64.Vec3{s.Ball.X(), s.ShadowFloorY + constants.ShadowLift, s.Ball.Z()}
		r.mesh(c.mesh, meshDraw{
			model:  mgl64.Translate3D(center.Elem()).Mul4(mgl64.Scale3D(radius, radius*constants.ShadowSquash, radius)),
			center: center,
			flat:   RGBBlack,
			alpha:  constants.FloorShadowAlpha,
		})
	}
	if opts.WallShadow {
		center := mgl64.Vec3{s.Ball.X(), s.Ball.Y(), constants.BackWallZ}
		r.mesh(c.mesh, meshDraw{
			model:  mgl64.Translate3D(center.Elem()).Mul4(mgl64.Scale3D(radius, radius, radius*constants.ShadowSquash)),
			center: center,
			flat:   RGBBlack,
			alpha:  constants.WallShadowAlpha,
		})
	}

	orient := BallOrientation(s.Spin)
	ball := meshDraw{
		model:   mgl64.Translate3D(s.Ball.Elem()).Mul4(orient.Mat4()).Mul4(mgl64.Scale3D(radius, radius, radius)),
		center:  s.Ball,
		texture: c.texture,
		alpha:   1.0,
		light:   lightDirection(),
	}
	if opts.Lighting {
		ball.normalRot = &orient
	}
	r.mesh(c.mesh, ball)

	return nil
}

// drawGrid draws the floor grid and back wall grid
func drawGrid(r *rasterizer, floorY float64) {
	ext := constants.GridExtent
	wall := constants.BackWallZ
	for i := 0; i <= constants.GridLines; i++ {
		t := -ext + float64(i)*constants.GridStep
		r.line(mgl64.Vec3{t, floorY, -ext}, mgl64.Vec3{t, floorY, ext}, GridBlue)
		r.line(mgl64.Vec3{-ext, floorY, t}, mgl64.Vec3{ext, floorY, t}, GridBlue)

		r.line(mgl64.Vec3{t, floorY, wall}, mgl64.Vec3{t, floorY + constants.WallHeight, wall}, GridBlue)
		y := floorY + float64(i)*constants.GridStep
		r.line(mgl64.Vec3{-ext, y, wall}, mgl64.Vec3{ext, y, wall}, GridBlue)
	}
}

// Present writes the framebuffer to the screen as upper half blocks, two pixels per cell
// Cells outside the screen are clipped
func (c *Context) Present() error {
	if !c.isCurrent() {
		return ErrNotCurrent
	}
	if c.fb == nil {
		return ErrNotReady
	}

	screen := c.backend.screen
	sw, sh := screen.Size()
	mode := c.backend.mode

	cells := c.fb.Height() / constants.PixelRowsPerCell
	for y := 0; y < cells; y++ {
		sy := c.region.Y + y
		if sy < 0 || sy >= sh {
			continue
		}
		for x := 0; x < c.fb.Width(); x++ {
			sx := c.region.X + x
			if sx < 0 || sx >= sw {
				continue
			}
			top := c.fb.At(x, y*2)
			bottom := c.fb.At(x, y*2+1)
			style := tcell.StyleDefault.Foreground(top.Tcell(mode)).Background(bottom.Tcell(mode))
			screen.SetContent(sx, sy, '▀', nil, style)
		}
	}
	return nil
}

// Release returns the context slot to the backend, further use fails
func (c *Context) Release() {
	if c.released {
		return
	}
	c.released = true
	if c.backend.current == c {
		c.backend.current = nil
	}
	c.backend.live--
	c.fb = nil
	c.texture = nil
	c.mesh = nil
}
