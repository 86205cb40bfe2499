package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/boing/constants"
)

// Geometry selects sphere tessellation density
// Values match the persisted GeometryMode setting
type Geometry int

const (
	GeometryFine   Geometry = 0
	GeometryCoarse Geometry = 1
)

// Segments returns slices (around the polar axis) and stacks (pole to pole)
// Unknown values fall back to coarse
func (g Geometry) Segments() (slices, stacks int) {
	if g == GeometryFine {
		return constants.FineSlices, constants.FineStacks
	}
	return constants.CoarseSlices, constants.CoarseStacks
}

func (g Geometry) String() string {
	if g == GeometryFine {
		return "fine"
	}
	return "coarse"
}

// Vertex is a unit-sphere point, its position doubles as its normal
type Vertex struct {
	Pos mgl64.Vec3
	UV  mgl64.Vec2
}

// Mesh is an indexed triangle list
type Mesh struct {
	Geometry Geometry
	Vertices []Vertex
	Indices  []int
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// NewSphereMesh tessellates a unit sphere around the Z axis
// The seam column is duplicated so u runs 0..1, degenerate pole triangles are omitted
func NewSphereMesh(g Geometry) *Mesh {
	slices, stacks := g.Segments()

	m := &Mesh{
		Geometry: g,
		Vertices: make([]Vertex, 0, (slices+1)*(stacks+1)),
		Indices:  make([]int, 0, slices*(stacks-1)*6),
	}

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		sinPhi, cosPhi := math.Sincos(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			sinTheta, cosTheta := math.Sincos(theta)
			m.Vertices = append(m.Vertices, Vertex{
				Pos: mgl64.Vec3{sinPhi * cosTheta, sinPhi * sinTheta, cosPhi},
				UV:  mgl64.Vec2{float64(j) / float64(slices), float64(i) / float64(stacks)},
			})
		}
	}

	row := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*row + j
			b := (i+1)*row + j
			c := (i+1)*row + j + 1
			d := i*row + j + 1
			if i != stacks-1 {
				m.Indices = append(m.Indices, a, b, c)
			}
			if i != 0 {
				m.Indices = append(m.Indices, a, c, d)
			}
		}
	}

	return m
}
