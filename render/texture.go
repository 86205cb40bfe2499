package render

import "math"

// Texture is a square RGB image sampled with nearest filtering and repeat wrapping
type Texture struct {
	size   int
	texels []RGB
}

// NewCheckerTexture builds a size×size texture of cols×rows alternating squares
func NewCheckerTexture(size, cols, rows int, a, b RGB) *Texture {
	if size <= 0 || cols <= 0 || rows <= 0 {
		return &Texture{}
	}
	cellW := max(size/cols, 1)
	cellH := max(size/rows, 1)

	t := &Texture{
		size:   size,
		texels: make([]RGB, size*size),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cellW+y/cellH)%2 != 0 {
				c = b
			}
			t.texels[y*size+x] = c
		}
	}
	return t
}

// Valid reports whether the texture holds image data
func (t *Texture) Valid() bool {
	return t != nil && t.size > 0 && len(t.texels) == t.size*t.size
}

func (t *Texture) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Sample returns the texel nearest to u, v
// Coordinates outside [0, 1) wrap
func (t *Texture) Sample(u, v float64) RGB {
	if !t.Valid() {
		return RGBBlack
	}
	x := wrapTexel(u, t.size)
	y := wrapTexel(v, t.size)
	return t.texels[y*t.size+x]
}

func wrapTexel(f float64, size int) int {
	f -= math.Floor(f)
	i := int(f * float64(size))
	if i >= size {
		i = size - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
