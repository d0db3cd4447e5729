package flakegl

// Shape is one draw of the shared vertex buffer.
type Shape struct {
	Transform Mat3
	Color     Color
}

// Renderer runs a Program over a VertexBuffer and hands the resulting
// screen-space triangles to a Surface.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Program    Program
	ClearColor Color

	scratch []float32
}

func NewRenderer(p Program) *Renderer {
	return &Renderer{
		Program:    p,
		ClearColor: White,
	}
}

// Render clears s and draws shapes in order, so later shapes end up on top.
func (r *Renderer) Render(s Surface, vb *VertexBuffer, shapes []Shape, time float64) {
	if r == nil || s == nil {
		return
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	s.Clear(r.ClearColor.RGBA())
	if vb == nil {
		return
	}
	for _, sh := range shapes {
		r.Draw(s, vb, Uniforms{TransformMat: sh.Transform, Color: sh.Color, Time: time})
	}
}

// Draw renders every triangle of vb with one set of uniforms.
func (r *Renderer) Draw(s Surface, vb *VertexBuffer, u Uniforms) {
	w, h := s.Size()
	m := r.Program.VertexMatrix(u)

	n := vb.Count() * 2
	if cap(r.scratch) < n {
		r.scratch = make([]float32, n)
	}
	out := r.scratch[:n]
	for i := 0; i < vb.Count(); i++ {
		x, y := vb.Vertex(i)
		cx, cy := m.Apply(float64(x), float64(y))
		out[i*2], out[i*2+1] = ndcToScreen(cx, cy, w, h)
	}
	s.FillTriangles(out, u.Color)
}

// ndcToScreen maps clip space [-1,1]² onto a w×h viewport with y down.
func ndcToScreen(x, y float64, w, h int) (float32, float32) {
	sx := (x*0.5 + 0.5) * float64(w)
	sy := (1 - (y*0.5 + 0.5)) * float64(h)
	return float32(sx), float32(sy)
}
