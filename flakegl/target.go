package flakegl

import "image/color"

// Surface is a drawable target.
//
// FillTriangles receives screen-space pixel coordinates as x,y pairs, three
// vertices per triangle, and fills each triangle independently with c. c is
// passed unquantized so GPU surfaces can upload it as the Color uniform.
// Implementations should clip out-of-bounds coordinates.
type Surface interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillTriangles(xy []float32, c Color)
	SetPixel(x, y int, c color.RGBA)
}
