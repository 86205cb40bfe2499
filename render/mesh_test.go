package render

import (
	"math"
	"testing"
)

func TestSphereMeshCounts(t *testing.T) {
	tests := []struct {
		g             Geometry
		slices, stack int
	}{
		{GeometryCoarse, 16, 8},
		{GeometryFine, 64, 32},
		{Geometry(7), 16, 8},
	}

	for _, tt := range tests {
		m := NewSphereMesh(tt.g)
		wantVerts := (tt.slices + 1) * (tt.stack + 1)
		wantTris := tt.slices * (2*tt.stack - 2)
		if len(m.Vertices) != wantVerts {
			t.Errorf("%v: %d vertices, want %d", tt.g, len(m.Vertices), wantVerts)
		}
		if m.TriangleCount() != wantTris {
			t.Errorf("%v: %d triangles, want %d", tt.g, m.TriangleCount(), wantTris)
		}
	}
}

// TestSphereMeshUnitAndNonDegenerate verifies vertices lie on the unit sphere and no triangle collapses
func TestSphereMeshUnitAndNonDegenerate(t *testing.T) {
	m := NewSphereMesh(GeometryCoarse)

	for i, v := range m.Vertices {
		if math.Abs(v.Pos.Len()-1) > 1e-9 {
			t.Fatalf("vertex %d length %f", i, v.Pos.Len())
		}
		if v.UV[0] < 0 || v.UV[0] > 1 || v.UV[1] < 0 || v.UV[1] > 1 {
			t.Fatalf("vertex %d uv %v out of range", i, v.UV)
		}
	}

	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Vertices[m.Indices[tri*3]].Pos
		b := m.Vertices[m.Indices[tri*3+1]].Pos
		c := m.Vertices[m.Indices[tri*3+2]].Pos
		if b.Sub(a).Cross(c.Sub(a)).Len() < 1e-9 {
			t.Fatalf("triangle %d is degenerate", tri)
		}
	}
}

func TestCheckerTexture(t *testing.T) {
	tex := NewCheckerTexture(128, 16, 8, CheckerRed, CheckerWhite)
	if !tex.Valid() || tex.Size() != 128 {
		t.Fatalf("texture invalid, size %d", tex.Size())
	}

	// squares are 8 texels wide and 16 tall
	tests := []struct {
		u, v float64
		want RGB
	}{
		{0.01, 0.01, CheckerRed},
		{0.07, 0.01, CheckerWhite},
		{0.01, 0.13, CheckerWhite},
		{0.07, 0.13, CheckerRed},
		{1.01, 0.01, CheckerRed},
		{-0.99, 0.01, CheckerRed},
	}
	for _, tt := range tests {
		if got := tex.Sample(tt.u, tt.v); got != tt.want {
			t.Errorf("Sample(%f, %f) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}

	var missing *Texture
	if missing.Valid() || missing.Sample(0.5, 0.5) != RGBBlack {
		t.Error("nil texture should be invalid and sample black")
	}
	if NewCheckerTexture(0, 16, 8, CheckerRed, CheckerWhite).Valid() {
		t.Error("zero-size texture should be invalid")
	}
}
