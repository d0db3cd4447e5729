package flakegl

import "image/color"

// Color is an RGB color with channels in 0..1. Shapes are always drawn
// fully opaque.
type Color struct {
	R, G, B float32
}

var (
	Blue  = Color{R: 0, G: 0, B: 0.8}
	White = Color{R: 1, G: 1, B: 1}
)

func (c Color) Valid() bool {
	in := func(v float32) bool { return v >= 0 && v <= 1 }
	return in(c.R) && in(c.G) && in(c.B)
}

// RGBA converts c to an 8-bit opaque color.
func (c Color) RGBA() color.RGBA {
	ch := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 0xFF
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: 0xFF}
}

// Vec3 returns c as the vec3 the Kage Color uniform expects.
func (c Color) Vec3() []float32 { return []float32{c.R, c.G, c.B} }
