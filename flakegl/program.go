package flakegl

import (
	_ "embed"
	"fmt"
	"math"
	"strings"
)

//go:embed shaders/flat.kage
var flatFragment []byte

// WobbleAmplitudeDeg is the peak rotation of the animated program.
const WobbleAmplitudeDeg = 80.0

// Uniforms are the per-draw inputs of a Program.
type Uniforms struct {
	TransformMat Mat3
	Color        Color
	// Time is the oscillator phase in seconds.
	Time float64
}

// Program pairs a CPU vertex stage with the Kage source of its fragment
// stage. The fragment stage outputs the Color uniform at full opacity.
type Program struct {
	Name string

	// FragmentSource is Kage source; it reads the Color uniform.
	FragmentSource []byte

	vertex func(u Uniforms) Mat3
}

// VertexMatrix returns the matrix the vertex stage applies to every vertex
// of a draw with uniforms u.
func (p Program) VertexMatrix(u Uniforms) Mat3 {
	if p.vertex == nil {
		return u.TransformMat
	}
	return p.vertex(u)
}

var (
	// ProgramWobble rotates the transformed shape by sin(Time)·80° after
	// TransformMat. With Time 0 it is identical to ProgramStatic.
	ProgramWobble = Program{
		Name:           "wobble",
		FragmentSource: flatFragment,
		vertex: func(u Uniforms) Mat3 {
			return Mul(WobbleRotation(u.Time), u.TransformMat)
		},
	}

	// ProgramStatic applies TransformMat and ignores Time.
	ProgramStatic = Program{
		Name:           "static",
		FragmentSource: flatFragment,
		vertex: func(u Uniforms) Mat3 {
			return u.TransformMat
		},
	}
)

// WobbleRotation is the time-driven rotation of ProgramWobble. Its layout is
// the transpose of Rotate, so positive phases turn counter-clockwise.
func WobbleRotation(t float64) Mat3 {
	angle := math.Sin(t) * WobbleAmplitudeDeg * math.Pi / 180
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Programs lists the selectable programs.
func Programs() []Program {
	return []Program{ProgramWobble, ProgramStatic}
}

// ProgramByName looks up a program by its Name, case-insensitively.
func ProgramByName(name string) (Program, error) {
	for _, p := range Programs() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("flakegl: unknown program %q", name)
}

// CompileError reports a fragment program the GPU backend rejected.
type CompileError struct {
	Program string
	Log     string
	Err     error
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("flakegl: could not compile program %s", e.Program)
	}
	return fmt.Sprintf("flakegl: could not compile program %s:\n%s", e.Program, e.Log)
}

func (e *CompileError) Unwrap() error { return e.Err }
