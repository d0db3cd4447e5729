package hal

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	// Ticks stops the run after that many ticks; 0 runs until the context
	// is cancelled or the app quits.
	Ticks uint64
	// Realtime paces ticks with a wall-clock ticker. Otherwise ticks run
	// back to back. The HAL clock advances by 1/Hz per tick either way.
	Realtime bool
	// Snapshot, if set, is a PNG path written with the last frame.
	Snapshot string
	// Script feeds key events at given ticks.
	Script []ScriptedKey
	Logger *log.Logger
}

// ScriptedKey is a key event delivered before the app steps on Tick.
type ScriptedKey struct {
	Tick  uint64
	Event KeyEvent
}

// RunHeadless drives the app without opening a window, rendering every
// tick into the RGB565 framebuffer with the software rasterizer.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) (App, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	period := time.Second / time.Duration(cfg.Hz)
	if period <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(HostConfig{Width: cfg.Width, Height: cfg.Height, Logger: cfg.Logger})
	h.t.step(0)
	target, err := FramebufferTarget(h.fb)
	if err != nil {
		return err
	}
	app, err := newApp(h)
	if err != nil {
		return err
	}

	var ticks <-chan time.Time
	if cfg.Realtime {
		t := time.NewTicker(period)
		defer t.Stop()
		ticks = t.C
	}

	var tick uint64
	runErr := func() error {
		for cfg.Ticks == 0 || tick < cfg.Ticks {
			if ticks != nil {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticks:
				}
			} else if err := ctx.Err(); err != nil {
				return err
			}

			h.t.step(period)
			for _, s := range cfg.Script {
				if s.Tick == tick {
					h.kbd.push(s.Event)
				}
			}
			if err := app.Step(); err != nil {
				return err
			}
			app.Draw(target)
			if err := h.fb.Present(); err != nil {
				return err
			}
			tick++
		}
		return nil
	}()
	h.logger.Debug("headless run finished", "ticks", tick, "frames", h.fb.frames())

	if errors.Is(runErr, ErrQuit) || errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	if cfg.Snapshot != "" && tick > 0 {
		if err := writeSnapshot(cfg.Snapshot, h.fb); err != nil {
			return errors.Join(runErr, err)
		}
		h.logger.Info("wrote snapshot", "path", cfg.Snapshot)
	}
	return runErr
}

func writeSnapshot(path string, fb Framebuffer) error {
	target, err := FramebufferTarget(fb)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, target.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
