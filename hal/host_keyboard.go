//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var arrowKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyArrowDown, KeyDown},
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

func (k *hostKeyboard) poll() {
	for _, a := range arrowKeys {
		if repeating(inpututil.KeyPressDuration(a.key)) {
			k.push(KeyEvent{Code: a.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(a.key) {
			k.push(KeyEvent{Code: a.code, Press: false})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.push(KeyEvent{Code: KeyEscape, Press: true})
	}

	// Characters already carry the platform's key repeat.
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}
}
