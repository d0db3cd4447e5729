package flakegl

import (
	"errors"
	"fmt"
	"math"
)

// ErrMatrixSize is returned for matrix data that is not exactly 3x3.
var ErrMatrixSize = errors.New("flakegl: matrix must have 9 elements")

// Mat3 is a row-major 3x3 matrix:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// m[2] and m[5] hold the x and y translation.
type Mat3 [9]float64

func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func Translate(tx, ty float64) Mat3 {
	return Mat3{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	}
}

func Scale(sx, sy float64) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Rotate returns the rotation matrix for rad radians. Positive angles turn
// clockwise in a y-up space, matching the keyboard rotation of the demo.
func Rotate(rad float64) Mat3 {
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// RotateDeg is Rotate with the angle in degrees.
func RotateDeg(deg float64) Mat3 {
	return Rotate(deg * math.Pi / 180)
}

// Mul returns a·b.
func Mul(a, b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i*3+k] * b[k*3+j]
			}
			out[i*3+j] = sum
		}
	}
	return out
}

// MulAll multiplies left to right: MulAll(a, b, c) = a·b·c.
func MulAll(ms ...Mat3) Mat3 {
	out := Identity()
	for _, m := range ms {
		out = Mul(out, m)
	}
	return out
}

// Apply transforms the point (x, y, 1) and returns the first two components.
func (m Mat3) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Mat3FromSlice converts untyped matrix data, rejecting anything that is not
// exactly 9 elements.
func Mat3FromSlice(s []float64) (Mat3, error) {
	var m Mat3
	if len(s) != len(m) {
		return m, fmt.Errorf("%w: got %d", ErrMatrixSize, len(s))
	}
	copy(m[:], s)
	return m, nil
}
