package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"snowflake/internal/config"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snowflake.toml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (options, config.Config, error) {
	t.Helper()
	var (
		gotOpts options
		gotCfg  config.Config
	)
	cmd := newRootCmdWith(func(_ context.Context, o options, cfg config.Config) error {
		gotOpts, gotCfg = o, cfg
		return nil
	})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return gotOpts, gotCfg, err
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, "depth = 2\nprogram = \"static\"\nhud = false\n")

	_, cfg, err := execute(t, "--config", path, "--depth", "6", "--program", "wobble")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if cfg.Depth != 6 || cfg.Program != "wobble" {
		t.Fatalf("depth=%d program=%q, want 6 wobble", cfg.Depth, cfg.Program)
	}
	// --hud defaults to true but was not given, so the file wins.
	if cfg.HUD {
		t.Fatalf("hud=true, want the file's false")
	}
}

func TestUnsetFlagsKeepConfigFile(t *testing.T) {
	path := writeConfig(t, "depth = 2\nprogram = \"static\"\nanimate = true\n")

	o, cfg, err := execute(t, "--config", path, "--headless", "--ticks", "3")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if cfg.Depth != 2 || cfg.Program != "static" || !cfg.Animate {
		t.Fatalf("cfg=%+v, want file values", cfg)
	}
	if !o.headless || o.ticks != 3 {
		t.Fatalf("options=%+v", o)
	}
}

func TestFlagsWithoutConfigFile(t *testing.T) {
	_, cfg, err := execute(t, "--depth", "3", "--animate")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	def := config.Default()
	if cfg.Depth != 3 || !cfg.Animate || cfg.Program != def.Program {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestFlagOverrideIsValidated(t *testing.T) {
	_, _, err := execute(t, "--depth", "99")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
	_, _, err = execute(t, "--program", "phong")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}
