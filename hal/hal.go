package hal

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"snowflake/flakegl"
)

// ErrNoGraphics means no drawable surface could be created.
var ErrNoGraphics = errors.New("graphics context is not available")

// ErrQuit is returned by App.Step to end the run loop without an error.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// KeyEvent is a keyboard event. Character keys carry a Rune and KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time is a monotonic clock. Now is measured from an arbitrary epoch fixed
// when the HAL was created.
type Time interface {
	Now() time.Duration
}

// HAL provides the only contact point between the demo and the outside world.
type HAL interface {
	Logger() *log.Logger
	Display() Display
	Input() Input
	Time() Time
}

// App is driven by a runner: Step once per tick, Draw once per frame.
type App interface {
	Step() error
	Draw(s flakegl.Surface)
}
