// Package ebitenhost hosts the adapter inside an ebiten game loop, on the
// desktop or in a browser tab when built for js/wasm.
//
// ebiten reports the window's outside size through Layout on every frame.
// That size is both the viewport and the container. The first Update after a
// Layout is the ready signal; every later change of the outside size becomes
// one viewport-changed signal on the next Update.
package ebitenhost

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"canvashost/internal/adapter"
	"canvashost/internal/logger"
	"canvashost/internal/module"
	"canvashost/internal/surface"
)

// --- Window ---

const (
	DefaultWidth  = 960
	DefaultHeight = 720
	DefaultTitle  = "canvashost"
)

// ColBg fills the window area not covered by the surface.
var ColBg = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}

type Options struct {
	Width  int
	Height int
	Title  string
}

// --- Host document ---

// window is the host document: a single surface inside the ebiten window.
type window struct {
	id      string
	canvas  *surface.Canvas
	outside surface.Dimensions
}

func (w *window) Surface(id string) (surface.Surface, error) {
	if id != w.id || w.canvas == nil {
		return nil, fmt.Errorf("%w: %q", surface.ErrSurfaceNotFound, id)
	}
	return w.canvas, nil
}

func (w *window) Viewport() surface.Dimensions        { return w.outside }
func (w *window) Container(string) surface.Dimensions { return w.outside }

// --- Game ---

// Game implements ebiten.Game.
type Game struct {
	Tick int

	win     *window
	adapter *adapter.Adapter
	ticker  module.Ticker
	log     *slog.Logger

	laidOut bool
	ready   bool
	resized bool

	img *ebiten.Image
}

// NewGame creates a game presenting canvas under cfg.SurfaceID. If
// cfg.Module implements module.Ticker it is ticked once per frame.
func NewGame(canvas *surface.Canvas, cfg adapter.Config) *Game {
	win := &window{id: cfg.SurfaceID, canvas: canvas}
	l := cfg.Logger
	if l == nil {
		l = logger.L()
	}
	g := &Game{
		win:     win,
		adapter: adapter.New(win, cfg),
		log:     l,
	}
	if t, ok := cfg.Module.(module.Ticker); ok {
		g.ticker = t
	}
	return g
}

// Adapter returns the adapter driven by the game.
func (g *Game) Adapter() *adapter.Adapter {
	return g.adapter
}

// Update dispatches pending lifecycle signals and advances the module's loop.
// An uncontained adapter error stops the game.
func (g *Game) Update() error {
	g.Tick++

	switch {
	case !g.laidOut:
		return nil
	case !g.ready:
		g.ready = true
		g.resized = false
		if err := g.adapter.OnReady(); err != nil {
			return err
		}
	case g.resized:
		g.resized = false
		// A ready cycle that failed to size the surface is retried on the
		// next layout change instead of being dropped as premature.
		signal := g.adapter.OnViewportChanged
		if g.adapter.State() == adapter.StateUninitialized {
			signal = g.adapter.OnReady
		}
		if err := signal(); err != nil {
			return err
		}
	}

	if g.ticker != nil {
		if err := g.ticker.Tick(); err != nil {
			g.log.Warn("frame callback failed", "tick", g.Tick, "err", err)
		}
	}
	return nil
}

// Draw copies the surface into the top-left corner of the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	c := g.win.canvas
	if c == nil {
		return
	}
	if c.Empty() {
		return
	}
	w, h := c.Width(), c.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
	}
	g.img.WritePixels(c.Pixels())
	screen.DrawImage(g.img, &ebiten.DrawImageOptions{})
}

// Layout records the outside size as the current viewport. The screen is
// laid out 1:1 with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	d := surface.Dimensions{Width: outsideWidth, Height: outsideHeight}
	if d != g.win.outside {
		g.win.outside = d
		if g.ready {
			g.resized = true
		}
	}
	g.laidOut = true
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the game ends.
func Run(g *Game, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
