package render

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects how framebuffer colors are sent to the terminal
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // detect from environment
	ColorModeTrueColor                  // 24-bit RGB
	ColorMode256                        // xterm-256 palette
)

// ParseColorMode maps a setting string to a mode, unknown strings yield auto
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truecolor", "24bit", "rgb":
		return ColorModeTrueColor
	case "256", "xterm-256":
		return ColorMode256
	default:
		return ColorModeAuto
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	default:
		return "auto"
	}
}

// Resolve replaces auto with the detected mode
func (m ColorMode) Resolve() ColorMode {
	if m == ColorModeAuto {
		return DetectColorMode()
	}
	return m
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

func cubeIndex(v uint8) int {
	best := 0
	bestDist := absInt(int(v) - cubeValues[0])
	for j := 1; j < len(cubeValues); j++ {
		if d := absInt(int(v) - cubeValues[j]); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest xterm-256 palette index
// Near-gray colors are matched against the grayscale ramp 232-255 as well as the cube
func RGBTo256(c RGB) uint8 {
	ri, gi, bi := cubeIndex(c.R), cubeIndex(c.G), cubeIndex(c.B)
	cube := uint8(16 + 36*ri + 6*gi + bi)

	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(absInt(int(c.R)-gray), absInt(int(c.G)-gray), absInt(int(c.B)-gray))
	if maxDiff >= 10 || gray < 4 || gray > 243 {
		return cube
	}

	grayIdx := min(232+(gray-8)/10, 255)
	if gray < 8 {
		grayIdx = 232
	}
	level := 8 + (grayIdx-232)*10
	grayDist := absInt(int(c.R)-level) + absInt(int(c.G)-level) + absInt(int(c.B)-level)
	cubeDist := absInt(int(c.R)-cubeValues[ri]) + absInt(int(c.G)-cubeValues[gi]) + absInt(int(c.B)-cubeValues[bi])
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// Tcell converts c to a tcell color for the given resolved mode
func (c RGB) Tcell(mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
