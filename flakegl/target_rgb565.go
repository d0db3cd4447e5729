package flakegl

import (
	"image"
	"image/color"
	"math"
)

// RGB565Target is the software rasterizer. It renders into an RGB565 buffer
// (little endian, rrrrrggggggbbbbb) with a caller-provided layout.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGB565Target allocates a tightly packed w×h target.
func NewRGB565Target(w, h int) *RGB565Target {
	return &RGB565Target{
		Buf:    make([]byte, w*h*2),
		Stride: w * 2,
		W:      w,
		H:      h,
	}
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c color.RGBA) {
	if !t.ok() {
		return
	}
	p := RGB565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c color.RGBA) {
	if !t.ok() {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := RGB565From888(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// At returns the color stored at (x, y), expanded back to 8 bits per channel.
func (t *RGB565Target) At(x, y int) color.RGBA {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return color.RGBA{}
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return color.RGBA{}
	}
	r, g, b := RGB888From565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Image copies the target into an RGBA image.
func (t *RGB565Target) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.W, t.H))
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			img.SetRGBA(x, y, t.At(x, y))
		}
	}
	return img
}

func (t *RGB565Target) FillTriangles(xy []float32, c Color) {
	if !t.ok() {
		return
	}
	rgba := c.RGBA()
	for i := 0; i+5 < len(xy); i += 6 {
		t.fillTriangle(xy[i], xy[i+1], xy[i+2], xy[i+3], xy[i+4], xy[i+5], rgba)
	}
}

// fillTriangle samples pixel centers against the three edge functions. Both
// windings are accepted since the mesh mixes them.
func (t *RGB565Target) fillTriangle(x0, y0, x1, y1, x2, y2 float32, c color.RGBA) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 || !finite(area) {
		return
	}

	minX := clampInt(int(math.Floor(float64(min3(x0, x1, x2)))), 0, t.W-1)
	maxX := clampInt(int(math.Ceil(float64(max3(x0, x1, x2)))), 0, t.W-1)
	minY := clampInt(int(math.Floor(float64(min3(y0, y1, y2)))), 0, t.H-1)
	maxY := clampInt(int(math.Ceil(float64(max3(y0, y1, y2)))), 0, t.H-1)

	p := RGB565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		row := y * t.Stride
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edgeFn(x1, y1, x2, y2, px, py)
			w1 := edgeFn(x2, y2, x0, y0, px, py)
			w2 := edgeFn(x0, y0, x1, y1, px, py)
			if area > 0 {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else if w0 > 0 || w1 > 0 || w2 > 0 {
				continue
			}
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y float32) float32 {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func min3(a, b, c float32) float32 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RGB565From888 packs 8-bit channels into RGB565.
func RGB565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// RGB888From565 expands an RGB565 pixel to 8-bit channels.
func RGB888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}
