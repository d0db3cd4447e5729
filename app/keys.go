package app

import (
	"snowflake/flakegl/scene"
	"snowflake/hal"
)

// ActionFor maps a key event to a scene action. Only presses act; '=' is
// accepted for '+' so rotating does not need shift on most layouts.
func ActionFor(ev hal.KeyEvent) scene.Action {
	if !ev.Press {
		return scene.ActionNone
	}
	switch ev.Code {
	case hal.KeyLeft:
		return scene.ActionLeft
	case hal.KeyRight:
		return scene.ActionRight
	case hal.KeyUp:
		return scene.ActionUp
	case hal.KeyDown:
		return scene.ActionDown
	case hal.KeyEscape:
		return scene.ActionQuit
	}
	switch ev.Rune {
	case '+', '=':
		return scene.ActionRotateCW
	case '-':
		return scene.ActionRotateCCW
	case '1':
		return scene.ActionReset
	case '2':
		return scene.ActionAnimate
	case '3':
		return scene.ActionStopAnimation
	}
	return scene.ActionNone
}
