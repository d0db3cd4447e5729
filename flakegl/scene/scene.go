// Package scene holds the state of the two snowflakes and recomposes their
// transforms whenever the user moves or rotates them.
//
// Both shapes share the same pipeline: move the mesh centroid to the origin
// (T1), scale (S), rotate (R), move back (T2), then apply the user
// translation (U):
//
//	composed = U · T2 · R · S · T1
//
// The composed matrices are cached and only rebuilt on mutation, so a draw
// always sees the matrices of the latest key press.
package scene

import (
	"snowflake/flakegl"
)

// Params are the fixed inputs of a scene.
type Params struct {
	// CenterY is the y coordinate of the mesh centroid.
	CenterY float64

	OuterScale float64
	InnerScale float64

	OuterColor flakegl.Color
	InnerColor flakegl.Color

	// TranslateStep is the offset applied per arrow key press.
	TranslateStep float64
	// RotateStep is the angle in degrees applied per rotate key press.
	RotateStep float64
}

// DefaultParams: blue outer flake, white inner flake at 0.65, 0.1 and 1° steps.
func DefaultParams(centerY float64) Params {
	return Params{
		CenterY:       centerY,
		OuterScale:    1,
		InnerScale:    0.65,
		OuterColor:    flakegl.Blue,
		InnerColor:    flakegl.White,
		TranslateStep: 0.1,
		RotateStep:    1,
	}
}

// Action is a user command.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionRotateCW
	ActionRotateCCW
	ActionReset
	ActionAnimate
	ActionStopAnimation
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionRotateCW:
		return "rotate+"
	case ActionRotateCCW:
		return "rotate-"
	case ActionReset:
		return "reset"
	case ActionAnimate:
		return "animate"
	case ActionStopAnimation:
		return "stop"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// State is the mutable scene. The zero value is not usable; call New.
type State struct {
	p Params

	t1, t2 flakegl.Mat3
	s1, s2 flakegl.Mat3

	user  flakegl.Mat3
	angle float64

	outer, inner flakegl.Mat3
}

func New(p Params) *State {
	s := &State{
		p:    p,
		t1:   flakegl.Translate(0, -p.CenterY),
		t2:   flakegl.Translate(0, p.CenterY),
		s1:   flakegl.Scale(p.OuterScale, p.OuterScale),
		s2:   flakegl.Scale(p.InnerScale, p.InnerScale),
		user: flakegl.Identity(),
	}
	s.recompose()
	return s
}

// Compose returns U · T2 · R(angleDeg) · S · T1.
func Compose(u flakegl.Mat3, angleDeg float64, t1, t2, s flakegl.Mat3) flakegl.Mat3 {
	return flakegl.MulAll(u, t2, flakegl.RotateDeg(angleDeg), s, t1)
}

func (s *State) recompose() {
	s.outer = Compose(s.user, s.angle, s.t1, s.t2, s.s1)
	s.inner = Compose(s.user, s.angle, s.t1, s.t2, s.s2)
}

// Apply performs a transform action and reports whether the composed
// matrices changed. Animation and quit actions are not scene mutations and
// return false.
func (s *State) Apply(a Action) bool {
	switch a {
	case ActionLeft:
		s.Translate(-s.p.TranslateStep, 0)
	case ActionRight:
		s.Translate(s.p.TranslateStep, 0)
	case ActionUp:
		s.Translate(0, s.p.TranslateStep)
	case ActionDown:
		s.Translate(0, -s.p.TranslateStep)
	case ActionRotateCW:
		s.Rotate(s.p.RotateStep)
	case ActionRotateCCW:
		s.Rotate(-s.p.RotateStep)
	case ActionReset:
		s.Reset()
	default:
		return false
	}
	return true
}

// Translate moves both shapes by (dx, dy) in clip space.
func (s *State) Translate(dx, dy float64) {
	s.user[2] += dx
	s.user[5] += dy
	s.recompose()
}

// Rotate adds deg degrees to the rotation angle. The angle is unbounded.
func (s *State) Rotate(deg float64) {
	s.angle += deg
	s.recompose()
}

// Reset restores the startup pose.
func (s *State) Reset() {
	s.user = flakegl.Identity()
	s.angle = 0
	s.recompose()
}

func (s *State) Angle() float64 { return s.angle }

// Translation returns the user translation offsets.
func (s *State) Translation() (x, y float64) { return s.user[2], s.user[5] }

// UserTranslation returns the user translation matrix.
func (s *State) UserTranslation() flakegl.Mat3 { return s.user }

// Rotation returns the rotation matrix for the current angle.
func (s *State) Rotation() flakegl.Mat3 { return flakegl.RotateDeg(s.angle) }

// Composed returns the cached matrices of the outer and inner shape.
func (s *State) Composed() (outer, inner flakegl.Mat3) { return s.outer, s.inner }

// Shapes returns the draw list: outer first, so the inner shape is on top.
func (s *State) Shapes() []flakegl.Shape {
	return []flakegl.Shape{
		{Transform: s.outer, Color: s.p.OuterColor},
		{Transform: s.inner, Color: s.p.InnerColor},
	}
}
