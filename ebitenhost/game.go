package ebitenhost

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/phanxgames/sapling"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int // logical screen width in pixels
	Height int // logical screen height in pixels
	Scale  int // window pixels per logical pixel, default 2
	// ShowFPS draws an FPS/TPS readout in the top-left corner of the window.
	// It is drawn over the panel and never enters the dirty region.
	ShowFPS bool
	// ScreenshotDir receives PNGs queued through Scene.Screenshot. Defaults
	// to "screenshots".
	ScreenshotDir string
}

// game adapts a sapling Driver to ebiten.Game.
type game struct {
	scene  *sapling.Scene
	driver sapling.Driver
	cfg    RunConfig
	log    zerolog.Logger

	canvas *Canvas
	panel  *ebiten.Image
	queue  sapling.EventQueue
	input  poller
	shots  shooter

	fps     *ebiten.Image
	fpsTick float64
	last    time.Time
}

// Run opens a window and drives d every tick until the window closes.
func Run(scene *sapling.Scene, d sapling.Driver, cfg RunConfig) error {
	g := newGame(scene, d, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width*g.cfg.Scale, g.cfg.Height*g.cfg.Scale)
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(g)
}

func newGame(scene *sapling.Scene, d sapling.Driver, cfg RunConfig) *game {
	screen := scene.Screen()
	if cfg.Width <= 0 {
		cfg.Width = screen.W
	}
	if cfg.Height <= 0 {
		cfg.Height = screen.H
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.Title == "" {
		cfg.Title = "sapling"
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := &game{
		scene:  scene,
		driver: d,
		cfg:    cfg,
		log:    scene.Logger().With().Str("host", "ebiten").Logger(),
		canvas: NewCanvas(cfg.Width, cfg.Height, nil),
		panel:  ebiten.NewImage(cfg.Width, cfg.Height),
	}
	g.shots = shooter{dir: cfg.ScreenshotDir, log: g.log}
	if cfg.ShowFPS {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		g.fps = ebiten.NewImage(100, 32)
	}
	return g
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	now := time.Now()
	dt := float32(1.0 / float64(ebiten.TPS()))
	if !g.last.IsZero() {
		dt = float32(now.Sub(g.last).Seconds())
	}
	g.last = now

	g.input.poll(&g.queue)
	g.driver.Update(dt, g.queue.Next()...)

	if g.fps != nil {
		g.updateFPS(float64(dt))
	}
	return nil
}

// Draw implements ebiten.Game. The back buffer is repainted only inside the
// scene's dirty region, and only that region is copied to the panel.
func (g *game) Draw(screen *ebiten.Image) {
	if g.driver.Draw(g.canvas) {
		g.flush(g.scene.Stats().Painted)
	}
	g.shots.capture(g.panel, g.scene.TakeScreenshots())

	screen.DrawImage(g.panel, nil)
	if g.fps != nil {
		screen.DrawImage(g.fps, nil)
	}
}

// flush copies the painted region of the back buffer to the panel.
func (g *game) flush(r sapling.Rect) {
	if r.IsEmpty() {
		return
	}
	ir := image.Rect(r.X, r.Y, r.Right(), r.Bottom())
	src := g.canvas.Image().SubImage(ir).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendCopy}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	g.panel.DrawImage(src, op)
}

// Layout implements ebiten.Game.
func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// updateFPS refreshes the readout every ~0.5 seconds.
func (g *game) updateFPS(dt float64) {
	g.fpsTick += dt
	if g.fpsTick < 0.5 {
		return
	}
	g.fpsTick = 0

	g.fps.Clear()
	g.fps.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.fps, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
