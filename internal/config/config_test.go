package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snowflake/flakegl"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Depth != 4 {
		t.Fatalf("depth=%d, want 4", cfg.Depth)
	}
	if cfg.Program != "wobble" {
		t.Fatalf("program=%q, want wobble", cfg.Program)
	}
	if cfg.OuterColor() != flakegl.Blue {
		t.Fatalf("outer=%v, want %v", cfg.OuterColor(), flakegl.Blue)
	}
	if cfg.InnerColor() != flakegl.White || cfg.ClearColor() != flakegl.White {
		t.Fatalf("inner=%v clear=%v, want white", cfg.InnerColor(), cfg.ClearColor())
	}
	if cfg.Controls.TranslateStep != 0.1 || cfg.Controls.RotateStep != 1 {
		t.Fatalf("controls=%+v", cfg.Controls)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snowflake.toml")
	text := `
depth = 3
program = "static"
hud = false

[window]
width = 200

[colors]
outer = [0.1, 0.2, 0.3]

[controls]
rotate_step = 5.0
`
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Depth != 3 || cfg.Program != "static" || cfg.HUD {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.Window.Width != 200 || cfg.Window.Height != 320 {
		t.Fatalf("window=%+v, want 200x320", cfg.Window)
	}
	if cfg.Colors.Outer != [3]float64{0.1, 0.2, 0.3} || cfg.Colors.Inner != [3]float64{1, 1, 1} {
		t.Fatalf("colors=%+v", cfg.Colors)
	}
	if cfg.Controls.RotateStep != 5 || cfg.Controls.TranslateStep != 0.1 {
		t.Fatalf("controls=%+v", cfg.Controls)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("lighting = true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "lighting") {
		t.Fatalf("err=%v, want unknown key error", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name string
		text string
	}{
		{name: "negative depth", text: "depth = -1"},
		{name: "huge depth", text: "depth = 99"},
		{name: "unknown program", text: `program = "phong"`},
		{name: "zero scale", text: "inner_scale = 0.0"},
		{name: "zero tps", text: "[window]\ntps = 0"},
		{name: "color range", text: "[colors]\ninner = [1.0, 2.0, 0.0]"},
		{name: "nan color", text: "[colors]\nouter = [nan, 0.0, 0.0]"},
		{name: "nan scale", text: "inner_scale = nan"},
		{name: "inf scale", text: "inner_scale = inf"},
		{name: "nan translate step", text: "[controls]\ntranslate_step = nan"},
		{name: "zero translate step", text: "[controls]\ntranslate_step = 0.0"},
		{name: "negative translate step", text: "[controls]\ntranslate_step = -0.1"},
		{name: "inf rotate step", text: "[controls]\nrotate_step = -inf"},
		{name: "nan rotate step", text: "[controls]\nrotate_step = nan"},
		{name: "unknown key", text: "bogus_key = 3"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err=%v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse("depth = = 3"); err == nil {
		t.Fatalf("expected syntax error")
	}
}
