//go:build cgo

package hal

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"snowflake/flakegl"
)

// maxBatchVertices keeps indices within uint16 and batches whole triangles.
const maxBatchVertices = 65535

// gpuSurface rasterizes on the GPU through ebiten, shading every triangle
// with the program's Kage fragment source.
type gpuSurface struct {
	img    *ebiten.Image
	shader *ebiten.Shader

	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesShaderOptions
}

func newGPUSurface(p flakegl.Program) (*gpuSurface, error) {
	sh, err := ebiten.NewShader(p.FragmentSource)
	if err != nil {
		return nil, &flakegl.CompileError{Program: p.Name, Log: err.Error(), Err: err}
	}
	return &gpuSurface{
		shader: sh,
		op: ebiten.DrawTrianglesShaderOptions{
			Uniforms: map[string]any{},
		},
	}, nil
}

func (s *gpuSurface) release() {
	if s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
}

func (s *gpuSurface) Size() (w, h int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *gpuSurface) Clear(c color.RGBA) {
	if s.img == nil {
		return
	}
	s.img.Fill(c)
}

func (s *gpuSurface) SetPixel(x, y int, c color.RGBA) {
	if s.img == nil {
		return
	}
	s.img.Set(x, y, c)
}

func (s *gpuSurface) FillTriangles(xy []float32, c flakegl.Color) {
	if s.img == nil || s.shader == nil {
		return
	}
	s.op.Uniforms["Color"] = c.Vec3()

	n := len(xy) / 2
	n -= n % 3
	for start := 0; start < n; start += maxBatchVertices {
		end := start + maxBatchVertices
		if end > n {
			end = n
		}
		s.drawBatch(xy[start*2 : end*2])
	}
}

func (s *gpuSurface) drawBatch(xy []float32) {
	n := len(xy) / 2
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for i := 0; i < n; i++ {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   xy[i*2],
			DstY:   xy[i*2+1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
		s.indices = append(s.indices, uint16(i))
	}
	s.img.DrawTrianglesShader(s.vertices, s.indices, s.shader, &s.op)
}
