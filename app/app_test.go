package app

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"snowflake/flakegl"
	"snowflake/flakegl/scene"
	"snowflake/hal"
	"snowflake/internal/config"
)

type testHAL struct {
	hal.HAL
	keys chan hal.KeyEvent
	now  time.Duration
}

func newTestHAL() *testHAL {
	return &testHAL{
		HAL:  hal.New(hal.HostConfig{Width: 200, Height: 200, Logger: hal.NewLogger(io.Discard, false)}),
		keys: make(chan hal.KeyEvent, 16),
	}
}

func (h *testHAL) Input() hal.Input               { return h }
func (h *testHAL) Keyboard() hal.Keyboard         { return h }
func (h *testHAL) Events() <-chan hal.KeyEvent    { return h.keys }
func (h *testHAL) Time() hal.Time                 { return h }
func (h *testHAL) Now() time.Duration             { return h.now }
func (h *testHAL) press(code hal.KeyCode, r rune) { h.keys <- hal.KeyEvent{Code: code, Press: true, Rune: r} }

type noDisplayHAL struct{ hal.HAL }

func (noDisplayHAL) Display() hal.Display { return nil }

func newTestApp(t *testing.T, h hal.HAL, mutate func(*config.Config)) *App {
	t.Helper()
	cfg := config.Default()
	cfg.HUD = false
	if mutate != nil {
		mutate(&cfg)
	}
	a, err := New(h, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestNewWithoutDisplay(t *testing.T) {
	_, err := New(noDisplayHAL{newTestHAL()}, config.Default())
	if !errors.Is(err, hal.ErrNoGraphics) {
		t.Fatalf("err=%v, want ErrNoGraphics", err)
	}
	if _, err := New(nil, config.Default()); !errors.Is(err, hal.ErrNoGraphics) {
		t.Fatalf("nil HAL: err=%v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Program = "plasma"
	if _, err := New(newTestHAL(), cfg); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}

func TestRenderStartupFrame(t *testing.T) {
	a := newTestApp(t, newTestHAL(), nil)
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	tg := flakegl.NewRGB565Target(200, 200)
	a.Draw(tg)

	// Between the inner and the outer snowflake near the bottom edge.
	if c := tg.At(135, 145); c.B < 0xC0 || c.R > 0x10 || c.G > 0x10 {
		t.Fatalf("pixel (135,145)=%v, want blue", c)
	}
	// Inner snowflake covers the center.
	if c := tg.At(100, 100); c.R != 0xFF || c.G != 0xFF || c.B != 0xFF {
		t.Fatalf("center=%v, want white", c)
	}
	if c := tg.At(2, 2); c.R != 0xFF || c.B != 0xFF {
		t.Fatalf("corner=%v, want clear color", c)
	}
}

func TestHUDDrawsText(t *testing.T) {
	a := newTestApp(t, newTestHAL(), func(c *config.Config) { c.HUD = true })
	tg := flakegl.NewRGB565Target(200, 200)
	a.Draw(tg)

	dark := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if tg.At(x, y).R < 0x80 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatal("no HUD pixels in the top-left corner")
	}
}

func TestKeysMoveScene(t *testing.T) {
	h := newTestHAL()
	a := newTestApp(t, h, nil)

	h.press(hal.KeyLeft, 0)
	h.press(hal.KeyLeft, 0)
	h.press(hal.KeyUnknown, '+')
	h.press(hal.KeyUnknown, '=')
	h.press(hal.KeyUnknown, '-')
	h.keys <- hal.KeyEvent{Code: hal.KeyRight, Press: false}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	x, y := a.Scene().Translation()
	if math.Abs(x+0.2) > 1e-9 || y != 0 {
		t.Fatalf("translation=(%v,%v), want (-0.2,0)", x, y)
	}
	if got := a.Scene().Angle(); got != 1 {
		t.Fatalf("angle=%v, want 1", got)
	}
}

func TestResetRestoresStartupMatrices(t *testing.T) {
	h := newTestHAL()
	a := newTestApp(t, h, nil)
	outer0, inner0 := a.Scene().Composed()

	for _, k := range []hal.KeyCode{hal.KeyUp, hal.KeyRight, hal.KeyRight, hal.KeyDown, hal.KeyUp} {
		h.press(k, 0)
	}
	for i := 0; i < 7; i++ {
		h.press(hal.KeyUnknown, '+')
	}
	h.press(hal.KeyUnknown, '1')
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	outer, inner := a.Scene().Composed()
	if outer != outer0 || inner != inner0 {
		t.Fatalf("after reset outer=%v inner=%v, want %v %v", outer, inner, outer0, inner0)
	}
	if a.Scene().UserTranslation() != flakegl.Identity() || a.Scene().Angle() != 0 {
		t.Fatal("reset did not clear the user pose")
	}
}

func TestAnimationKeys(t *testing.T) {
	h := newTestHAL()
	h.now = 5 * time.Second
	a := newTestApp(t, h, nil)

	h.now += time.Second
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.Time() != 0 {
		t.Fatalf("time before start=%v, want 0", a.Time())
	}

	h.press(hal.KeyUnknown, '2')
	h.now += time.Second
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.Time() != 2 {
		t.Fatalf("time=%v, want 2", a.Time())
	}

	h.press(hal.KeyUnknown, '2')
	h.press(hal.KeyUnknown, '3')
	h.now += time.Second
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	frozen := a.Time()
	h.now += 10 * time.Second
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.Time() != frozen || a.Animation().Running() {
		t.Fatalf("time=%v running=%v, want frozen at %v", a.Time(), a.Animation().Running(), frozen)
	}
}

func TestAnimateFromConfig(t *testing.T) {
	h := newTestHAL()
	a := newTestApp(t, h, func(c *config.Config) { c.Animate = true })
	h.now = 1500 * time.Millisecond
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.Time() != 1.5 {
		t.Fatalf("time=%v, want 1.5", a.Time())
	}
}

func TestEscapeQuits(t *testing.T) {
	h := newTestHAL()
	a := newTestApp(t, h, nil)
	h.press(hal.KeyEscape, 0)
	if err := a.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("err=%v, want ErrQuit", err)
	}
}

func TestActionFor(t *testing.T) {
	cases := []struct {
		ev   hal.KeyEvent
		want scene.Action
	}{
		{hal.KeyEvent{Code: hal.KeyLeft, Press: true}, scene.ActionLeft},
		{hal.KeyEvent{Code: hal.KeyRight, Press: true}, scene.ActionRight},
		{hal.KeyEvent{Code: hal.KeyUp, Press: true}, scene.ActionUp},
		{hal.KeyEvent{Code: hal.KeyDown, Press: true}, scene.ActionDown},
		{hal.KeyEvent{Code: hal.KeyLeft}, scene.ActionNone},
		{hal.KeyEvent{Press: true, Rune: '+'}, scene.ActionRotateCW},
		{hal.KeyEvent{Press: true, Rune: '='}, scene.ActionRotateCW},
		{hal.KeyEvent{Press: true, Rune: '-'}, scene.ActionRotateCCW},
		{hal.KeyEvent{Press: true, Rune: '1'}, scene.ActionReset},
		{hal.KeyEvent{Press: true, Rune: '2'}, scene.ActionAnimate},
		{hal.KeyEvent{Press: true, Rune: '3'}, scene.ActionStopAnimation},
		{hal.KeyEvent{Press: true, Rune: 'x'}, scene.ActionNone},
		{hal.KeyEvent{Code: hal.KeyEscape, Press: true}, scene.ActionQuit},
	}
	for _, tc := range cases {
		if got := ActionFor(tc.ev); got != tc.want {
			t.Errorf("ActionFor(%+v)=%v, want %v", tc.ev, got, tc.want)
		}
	}
}

func TestRunHeadlessWithScript(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	var a *App
	err := hal.RunHeadless(ctx, hal.HeadlessConfig{
		Width: 64, Height: 64, Hz: 4,
		Logger: hal.NewLogger(io.Discard, false),
		Script: []hal.ScriptedKey{
			{Tick: 0, Event: hal.KeyEvent{Press: true, Rune: '2'}},
			{Tick: 1, Event: hal.KeyEvent{Code: hal.KeyDown, Press: true}},
			{Tick: 4, Event: hal.KeyEvent{Code: hal.KeyEscape, Press: true}},
		},
	}, func(h hal.HAL) (hal.App, error) {
		var err error
		a, err = New(h, config.Default())
		return a, err
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if _, y := a.Scene().Translation(); math.Abs(y+0.1) > 1e-9 {
		t.Fatalf("y=%v, want -0.1", y)
	}
	// The clock reads 1s on the last full step before Escape.
	if a.Time() != 1 {
		t.Fatalf("time=%v, want 1", a.Time())
	}
}
