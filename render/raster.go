package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// clipEpsilon rejects primitives touching or behind the eye plane
const clipEpsilon = 1e-6

// screenVertex is a projected vertex in pixel space
// z is NDC depth, invW drives perspective-correct attribute interpolation
type screenVertex struct {
	x, y, z float64
	invW    float64
}

// rasterizer draws primitives into a framebuffer with a fixed view-projection
type rasterizer struct {
	fb       *FrameBuffer
	viewProj mgl64.Mat4
	eye      mgl64.Vec3
}

// project maps a world position to screen space, false when behind the near plane
func (r *rasterizer) project(world mgl64.Vec3) (screenVertex, bool) {
	clip := r.viewProj.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= clipEpsilon {
		return screenVertex{}, false
	}
	invW := 1.0 / w
	ndcX := clip.X() * invW
	ndcY := clip.Y() * invW
	return screenVertex{
		x:    (ndcX + 1) * 0.5 * float64(r.fb.width),
		y:    (1 - ndcY) * 0.5 * float64(r.fb.height),
		z:    clip.Z() * invW,
		invW: invW,
	}, true
}

// line draws a one-pixel depth-tested segment between two world points
func (r *rasterizer) line(a, b mgl64.Vec3, c RGB) {
	sa, okA := r.project(a)
	sb, okB := r.project(b)
	if !okA || !okB {
		return
	}

	dx := sb.x - sa.x
	dy := sb.y - sa.y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		r.fb.Plot(int(math.Floor(sa.x)), int(math.Floor(sa.y)), sa.z, c)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := sa.x + dx*t
		y := sa.y + dy*t
		z := sa.z + (sb.z-sa.z)*t
		r.fb.Plot(int(math.Floor(x)), int(math.Floor(y)), z, c)
	}
}

// shadeFunc returns the fragment color for perspective-correct barycentrics
type shadeFunc func(b [3]float64) RGB

// triangle fills a projected triangle, either winding is accepted
func (r *rasterizer) triangle(v [3]screenVertex, shade shadeFunc, alpha float64) {
	area := edge(v[0], v[1], v[2].x, v[2].y)
	if area == 0 || math.IsNaN(area) {
		return
	}

	minX := max(0, int(math.Floor(min(v[0].x, v[1].x, v[2].x))))
	maxX := min(r.fb.width-1, int(math.Ceil(max(v[0].x, v[1].x, v[2].x))))
	minY := max(0, int(math.Floor(min(v[0].y, v[1].y, v[2].y))))
	maxY := min(r.fb.height-1, int(math.Ceil(max(v[0].y, v[1].y, v[2].y))))

	invArea := 1.0 / area
	for py := minY; py <= maxY; py++ {
		cy := float64(py) + 0.5
		for px := minX; px <= maxX; px++ {
			cx := float64(px) + 0.5

			w0 := edge(v[1], v[2], cx, cy) * invArea
			w1 := edge(v[2], v[0], cx, cy) * invArea
			w2 := edge(v[0], v[1], cx, cy) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v[0].z + w1*v[1].z + w2*v[2].z

			p0 := w0 * v[0].invW
			p1 := w1 * v[1].invW
			p2 := w2 * v[2].invW
			sum := p0 + p1 + p2
			if sum <= 0 {
				continue
			}
			bary := [3]float64{p0 / sum, p1 / sum, p2 / sum}

			r.fb.Blend(px, py, z, shade(bary), alpha)
		}
	}
}

// edge is the signed parallelogram area of (a, b, p)
func edge(a, b screenVertex, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// meshDraw describes one instanced draw of the sphere mesh
type meshDraw struct {
	model  mgl64.Mat4
	center mgl64.Vec3
	// normalRot rotates unit-sphere normals into world space, nil for unlit draws
	normalRot *mgl64.Quat

	texture *Texture
	flat    RGB
	alpha   float64
	light   mgl64.Vec3
}

// mesh draws m with back faces culled against the draw center
// Faces whose outward direction points away from the eye are skipped
func (r *rasterizer) mesh(m *Mesh, d meshDraw) {
	if m == nil {
		return
	}

	world := make([]mgl64.Vec3, len(m.Vertices))
	screen := make([]screenVertex, len(m.Vertices))
	visible := make([]bool, len(m.Vertices))
	for i, vert := range m.Vertices {
		world[i] = mgl64.TransformCoordinate(vert.Pos, d.model)
		screen[i], visible[i] = r.project(world[i])
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		if !visible[i0] || !visible[i1] || !visible[i2] {
			continue
		}

		centroid := world[i0].Add(world[i1]).Add(world[i2]).Mul(1.0 / 3.0)
		outward := centroid.Sub(d.center)
		if outward.Dot(r.eye.Sub(centroid)) <= 0 {
			continue
		}

		tri := [3]screenVertex{screen[i0], screen[i1], screen[i2]}
		verts := [3]Vertex{m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]}
		r.triangle(tri, d.shader(verts), d.alpha)
	}
}

// shader builds the fragment function for one triangle
func (d meshDraw) shader(v [3]Vertex) shadeFunc {
	if d.texture == nil {
		return func([3]float64) RGB { return d.flat }
	}

	var lit [3]float64
	if d.normalRot != nil {
		for i := range v {
			n := d.normalRot.Rotate(v[i].Pos)
			lit[i] = lightIntensity(n, d.light)
		}
	}

	return func(b [3]float64) RGB {
		u := b[0]*v[0].UV[0] + b[1]*v[1].UV[0] + b[2]*v[2].UV[0]
		w := b[0]*v[0].UV[1] + b[1]*v[1].UV[1] + b[2]*v[2].UV[1]
		c := d.texture.Sample(u, w)
		if d.normalRot == nil {
			return c
		}
		return Scale(c, b[0]*lit[0]+b[1]*lit[1]+b[2]*lit[2])
	}
}
