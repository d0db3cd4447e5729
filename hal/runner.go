package hal

import (
	"github.com/charmbracelet/log"

	"snowflake/flakegl"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	// Scale multiplies the logical size to get the initial window size.
	Scale int
	TPS   int
	Title string

	// Program supplies the fragment source compiled for the GPU.
	Program flakegl.Program
	Logger  *log.Logger
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 320
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Title == "" {
		c.Title = "Snowflake"
	}
	if c.Program.Name == "" {
		c.Program = flakegl.ProgramWobble
	}
	return c
}

// Held arrow keys repeat like browser key-down events: first repeat after
// repeatDelay ticks, then every repeatInterval ticks.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// repeating reports whether a key held for d ticks emits a press this tick.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
