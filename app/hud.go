package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"snowflake/flakegl"
)

var hudColor = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}

// surfaceDisplay lets tinyfont draw on any flakegl.Surface.
type surfaceDisplay struct {
	s flakegl.Surface
}

var _ drivers.Displayer = surfaceDisplay{}

func (d surfaceDisplay) Size() (x, y int16) {
	w, h := d.s.Size()
	return int16(w), int16(h)
}

func (d surfaceDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.s.SetPixel(int(x), int(y), c)
}

func (d surfaceDisplay) Display() error { return nil }

type hud struct {
	font       tinyfont.Fonter
	lineHeight int16
}

func newHUD() *hud {
	return &hud{font: &tinyfont.TomThumb, lineHeight: 7}
}

func (h *hud) draw(s flakegl.Surface, lines ...string) {
	d := surfaceDisplay{s: s}
	for i, line := range lines {
		tinyfont.WriteLine(d, h.font, 2, h.lineHeight*int16(i+1), line, hudColor)
	}
}

func (a *App) hudLines() []string {
	x, y := a.scene.Translation()
	state := "still"
	if a.anim.Running() {
		state = "wobble"
	}
	return []string{
		fmt.Sprintf("%s d%d %dtri", a.program.Name, a.depth, a.mesh.Triangles()),
		fmt.Sprintf("a=%.0f x=%.1f y=%.1f", a.scene.Angle(), x, y),
		fmt.Sprintf("%s t=%.2f", state, a.time),
	}
}
