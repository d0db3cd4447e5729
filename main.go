package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"snowflake/app"
	"snowflake/flakegl"
	"snowflake/hal"
	"snowflake/internal/buildinfo"
	"snowflake/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, hal.ErrNoGraphics) {
			fmt.Fprintln(os.Stderr, "snowflake: no graphics available; try --headless")
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	headless   bool
	realtime   bool
	hz         int
	ticks      uint64
	snapshot   string
	verbose    bool

	depth   int
	program string
	animate bool
	hud     bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(run)
}

// newRootCmdWith builds the command with runFn as the action taken once the
// config is resolved.
func newRootCmdWith(runFn func(context.Context, options, config.Config) error) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           "snowflake",
		Short:         "Koch snowflake demo with keyboard transforms and a time wobble",
		Long:          "Renders two Koch snowflakes. Arrow keys move them, +/- rotate, 1 resets, 2 starts the wobble, 3 stops it, Escape quits.",
		Version:       buildinfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, o)
			if err != nil {
				return err
			}
			return runFn(cmd.Context(), o, cfg)
		},
	}
	cmd.SetVersionTemplate(buildinfo.String("snowflake"))

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	f.BoolVar(&o.headless, "headless", false, "render with the software rasterizer, no window")
	f.BoolVar(&o.realtime, "realtime", false, "pace headless ticks with the wall clock")
	f.IntVar(&o.hz, "hz", 60, "tick rate in headless mode")
	f.Uint64Var(&o.ticks, "ticks", 0, "stop after N ticks in headless mode (0 = run until interrupted)")
	f.StringVar(&o.snapshot, "snapshot", "", "write the last headless frame to this PNG file")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	f.IntVarP(&o.depth, "depth", "d", 0, fmt.Sprintf("recursion depth 0..%d", config.MaxDepth))
	f.StringVar(&o.program, "program", "", "vertex program: wobble or static")
	f.BoolVar(&o.animate, "animate", false, "start the wobble immediately")
	f.BoolVar(&o.hud, "hud", true, "draw the status overlay")
	return cmd
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, o options) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("depth") {
		cfg.Depth = o.depth
	}
	if f.Changed("program") {
		cfg.Program = o.program
	}
	if f.Changed("animate") {
		cfg.Animate = o.animate
	}
	if f.Changed("hud") {
		cfg.HUD = o.hud
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, o options, cfg config.Config) error {
	logger := hal.NewLogger(os.Stderr, o.verbose)
	logger.Debug("starting", "version", buildinfo.Short(), "headless", o.headless)

	program, err := flakegl.ProgramByName(cfg.Program)
	if err != nil {
		return err
	}
	newApp := func(h hal.HAL) (hal.App, error) {
		a, err := app.New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	if o.headless {
		return hal.RunHeadless(ctx, hal.HeadlessConfig{
			Width:    cfg.Window.Width,
			Height:   cfg.Window.Height,
			Hz:       o.hz,
			Ticks:    o.ticks,
			Realtime: o.realtime || o.ticks == 0,
			Snapshot: o.snapshot,
			Logger:   logger,
		}, newApp)
	}

	var compileErr *flakegl.CompileError
	err = hal.RunWindow(hal.WindowConfig{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Scale:   cfg.Window.Scale,
		TPS:     cfg.Window.TPS,
		Title:   cfg.Window.Title,
		Program: program,
		Logger:  logger,
	}, newApp)
	if errors.As(err, &compileErr) {
		logger.Error("fragment program failed to compile", "program", compileErr.Program, "log", compileErr.Log)
	}
	return err
}
