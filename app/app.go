// Package app runs the snowflake demo on a HAL: it builds the mesh once,
// turns key events into scene actions and renders both snowflakes each frame.
package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"snowflake/flakegl"
	"snowflake/flakegl/scene"
	"snowflake/hal"
	"snowflake/internal/config"
	"snowflake/koch"
)

type App struct {
	h   hal.HAL
	log *log.Logger

	depth   int
	mesh    koch.Mesh
	vb      *flakegl.VertexBuffer
	program flakegl.Program

	scene    *scene.State
	anim     *scene.Animation
	renderer *flakegl.Renderer
	hud      *hud

	time float64
}

// New prepares the demo. It fails with hal.ErrNoGraphics when the HAL has no
// framebuffer, before anything else is set up.
func New(h hal.HAL, cfg config.Config) (*App, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, hal.ErrNoGraphics
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	program, err := flakegl.ProgramByName(cfg.Program)
	if err != nil {
		return nil, err
	}

	mesh := koch.Generate(cfg.Depth)
	vb, err := flakegl.NewVertexBuffer(mesh.Float32())
	if err != nil {
		return nil, fmt.Errorf("upload mesh: %w", err)
	}

	p := scene.DefaultParams(koch.CenterY())
	p.InnerScale = cfg.InnerScale
	p.OuterColor = cfg.OuterColor()
	p.InnerColor = cfg.InnerColor()
	p.TranslateStep = cfg.Controls.TranslateStep
	p.RotateStep = cfg.Controls.RotateStep

	r := flakegl.NewRenderer(program)
	r.ClearColor = cfg.ClearColor()

	a := &App{
		h:        h,
		log:      h.Logger(),
		depth:    cfg.Depth,
		mesh:     mesh,
		vb:       vb,
		program:  program,
		scene:    scene.New(p),
		anim:     scene.NewAnimation(h.Time().Now()),
		renderer: r,
	}
	if a.log == nil {
		a.log = log.Default()
	}
	if cfg.HUD {
		a.hud = newHUD()
	}
	if cfg.Animate {
		a.anim.Start()
	}

	a.log.Info("mesh ready",
		"depth", cfg.Depth,
		"triangles", mesh.Triangles(),
		"vertices", vb.Count(),
		"program", program.Name,
	)
	return a, nil
}

// Step handles pending key events and samples the animation clock.
func (a *App) Step() error {
	if in := a.h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			if err := a.drainKeys(kbd.Events()); err != nil {
				return err
			}
		}
	}
	a.time = a.anim.Sample(a.h.Time().Now())
	return nil
}

func (a *App) drainKeys(ch <-chan hal.KeyEvent) error {
	for {
		select {
		case ev := <-ch:
			if err := a.Handle(ActionFor(ev)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// Handle applies one action. ActionQuit returns hal.ErrQuit.
func (a *App) Handle(act scene.Action) error {
	switch act {
	case scene.ActionNone:
		return nil
	case scene.ActionQuit:
		a.log.Info("quit requested")
		return hal.ErrQuit
	case scene.ActionAnimate:
		if !a.anim.Running() {
			a.anim.Start()
			a.log.Info("animation started", "program", a.program.Name)
		}
		return nil
	case scene.ActionStopAnimation:
		if a.anim.Running() {
			a.anim.Stop()
			a.log.Info("animation stopped", "phase", a.anim.Phase())
		}
		return nil
	}

	a.scene.Apply(act)
	x, y := a.scene.Translation()
	a.log.Debug("pose", "action", act, "angle", a.scene.Angle(), "x", x, "y", y)
	return nil
}

// Draw clears s and renders the outer then the inner snowflake.
func (a *App) Draw(s flakegl.Surface) {
	a.renderer.Render(s, a.vb, a.scene.Shapes(), a.time)
	if a.hud != nil {
		a.hud.draw(s, a.hudLines()...)
	}
}

func (a *App) Scene() *scene.State { return a.scene }

func (a *App) Animation() *scene.Animation { return a.anim }

// Time returns the phase passed to the program on the last Step.
func (a *App) Time() float64 { return a.time }
