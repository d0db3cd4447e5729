// Package config loads the demo settings from an optional TOML file.
//
// Every field has a default; a file only needs to name the values it changes:
//
//	depth = 5
//	program = "static"
//
//	[colors]
//	outer = [0.1, 0.3, 0.9]
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"snowflake/flakegl"
	"snowflake/koch"
)

// MaxDepth bounds the mesh depth. The mesh has 1+3·(2^(d+1)-3) triangles.
const MaxDepth = 10

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`
	TPS    int    `toml:"tps"`
	Title  string `toml:"title"`
}

type Colors struct {
	Outer [3]float64 `toml:"outer"`
	Inner [3]float64 `toml:"inner"`
	Clear [3]float64 `toml:"clear"`
}

type Controls struct {
	TranslateStep float64 `toml:"translate_step"`
	RotateStep    float64 `toml:"rotate_step"`
}

type Config struct {
	Depth      int     `toml:"depth"`
	Program    string  `toml:"program"`
	InnerScale float64 `toml:"inner_scale"`
	HUD        bool    `toml:"hud"`
	// Animate starts the wobble without waiting for the animate key.
	Animate bool `toml:"animate"`

	Window   Window   `toml:"window"`
	Colors   Colors   `toml:"colors"`
	Controls Controls `toml:"controls"`
}

func Default() Config {
	return Config{
		Depth:      koch.DefaultDepth,
		Program:    flakegl.ProgramWobble.Name,
		InnerScale: 0.65,
		HUD:        true,
		Window: Window{
			Width:  320,
			Height: 320,
			Scale:  2,
			TPS:    60,
			Title:  "Snowflake",
		},
		Colors: Colors{
			Outer: [3]float64{0, 0, 0.8},
			Inner: [3]float64{1, 1, 1},
			Clear: [3]float64{1, 1, 1},
		},
		Controls: Controls{
			TranslateStep: 0.1,
			RotateStep:    1,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := finish(cfg, md); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, err
	}
	if err := finish(cfg, md); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// finish rejects keys that matched no field, then validates.
func finish(cfg Config, md toml.MetaData) error {
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

var ErrInvalid = errors.New("invalid config")

func (c Config) Validate() error {
	if c.Depth < 0 || c.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d out of range 0..%d", ErrInvalid, c.Depth, MaxDepth)
	}
	if _, err := flakegl.ProgramByName(c.Program); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !positive(c.InnerScale) {
		return fmt.Errorf("%w: inner_scale %v must be a positive number", ErrInvalid, c.InnerScale)
	}
	if !positive(c.Controls.TranslateStep) {
		return fmt.Errorf("%w: translate_step %v must be a positive number", ErrInvalid, c.Controls.TranslateStep)
	}
	if !positive(c.Controls.RotateStep) {
		return fmt.Errorf("%w: rotate_step %v must be a positive number", ErrInvalid, c.Controls.RotateStep)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale must be positive", ErrInvalid)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive", ErrInvalid)
	}
	for name, col := range map[string][3]float64{"outer": c.Colors.Outer, "inner": c.Colors.Inner, "clear": c.Colors.Clear} {
		if !color(col).Valid() {
			return fmt.Errorf("%w: color %s %v outside 0..1", ErrInvalid, name, col)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func color(c [3]float64) flakegl.Color {
	return flakegl.Color{R: float32(c[0]), G: float32(c[1]), B: float32(c[2])}
}

func (c Config) OuterColor() flakegl.Color { return color(c.Colors.Outer) }
func (c Config) InnerColor() flakegl.Color { return color(c.Colors.Inner) }
func (c Config) ClearColor() flakegl.Color { return color(c.Colors.Clear) }
