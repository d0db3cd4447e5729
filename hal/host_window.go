//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"snowflake/internal/buildinfo"
)

// RunWindow opens a desktop window, draws the app on the GPU and forwards
// keyboard input. It blocks until the window closes or the app quits.
func RunWindow(cfg WindowConfig, newApp func(HAL) (App, error)) error {
	cfg = cfg.withDefaults()
	h := newHost(HostConfig{Width: cfg.Width, Height: cfg.Height, Logger: cfg.Logger})

	surf, err := newGPUSurface(cfg.Program)
	if err != nil {
		return err
	}
	defer surf.release()
	h.logger.Debug("compiled fragment program", "program", cfg.Program.Name)

	app, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, app: app, surf: surf, w: cfg.Width, hgt: cfg.Height}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	app  App
	surf *gpuSurface

	w, hgt int
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if err := g.app.Step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.surf.img = screen
	g.app.Draw(g.surf)
	g.surf.img = nil
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.hgt
}
