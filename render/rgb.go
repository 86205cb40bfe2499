package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBSilver = RGB{192, 192, 192}

	CheckerRed   = RGB{220, 30, 30}
	CheckerWhite = RGB{240, 240, 240}
	GridBlue     = RGBFromFloat(0.3, 0.6, 1.0)
)

// RGBFromFloat converts normalized channels to RGB, clamping to [0, 1]
func RGBFromFloat(r, g, b float64) RGB {
	return fromColorful(colorful.Color{R: r, G: g, B: b})
}

// RGBFromPacked converts 0xRRGGBB to RGB, higher bits are ignored
func RGBFromPacked(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ParseHex parses "#rrggbb" or "#rgb"
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	return fromColorful(c), nil
}

// Packed returns the color as 0xRRGGBB
func (c RGB) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex returns the color as "#rrggbb"
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend linearly mixes src over c by alpha
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return fromColorful(c.colorful().BlendRgb(src.colorful(), alpha))
}

// Scale multiplies every channel by k with clamping, used for lighting
func Scale(c RGB, k float64) RGB {
	if k >= 1.0 {
		return c
	}
	if k <= 0.0 {
		return RGBBlack
	}
	return RGB{
		R: clamp(float64(c.R)*k + 0.5),
		G: clamp(float64(c.G)*k + 0.5),
		B: clamp(float64(c.B)*k + 0.5),
	}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}
