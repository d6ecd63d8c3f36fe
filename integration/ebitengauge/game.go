//go:build !tinygo

// Package ebitengauge shows a gauge in a desktop window using Ebitengine.
//
// The gauge is rendered on the CPU by a driver.Loop and the finished frame is
// uploaded to an ebiten.Image only when it changed:
//
//	g := ebitengauge.New(gauge.NewRotationGauge(), slot)
//	go sensor.Pump(ctx, src, slot, 0)
//	err := ebitengauge.Run("Rotation", 480, g)
package ebitengauge

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/canvas"
	"github.com/gogpu/gg-gauge/driver"
)

// TPS is the update rate, matching driver.DefaultInterval.
const TPS = 50

// Game implements ebiten.Game for one gauge.
type Game struct {
	loop driver.Loop

	frame   *canvas.Pixmap
	pending bool
	img     *ebiten.Image
}

// New returns a Game that renders inst from the samples stored in slot.
func New(inst gauge.Instrument, slot *gauge.Slot) *Game {
	g := &Game{}
	g.loop = driver.Loop{
		Gauge: inst,
		Slot:  slot,
		Sink:  driver.SinkFunc(g.capture),
	}
	return g
}

// SetBackground sets the color behind the gauge.
func (g *Game) SetBackground(c canvas.RGBA) {
	g.loop.Background = c
}

// SetOverlay sets a function drawn over every frame, such as a readout.
func (g *Game) SetOverlay(o driver.Overlay) {
	g.loop.Overlay = o
}

// Frame returns the last rendered frame, or nil before the first one.
func (g *Game) Frame() *canvas.Pixmap {
	return g.frame
}

// Frames returns how many frames have been rendered.
func (g *Game) Frames() int {
	return g.loop.Frames()
}

func (g *Game) capture(_ context.Context, _ int, pm *canvas.Pixmap) error {
	if g.frame == nil || g.frame.Width() != pm.Width() || g.frame.Height() != pm.Height() {
		g.frame = canvas.NewPixmap(pm.Width(), pm.Height())
	}
	g.frame.CopyFrom(pm)
	g.pending = true
	return nil
}

// Update consumes the latest sample and re-renders when the gauge changed.
func (g *Game) Update() error {
	_, err := g.loop.Tick(context.Background())
	return err
}

// Draw centers the last frame on screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil || g.frame.Empty() {
		return
	}
	w, h := g.frame.Width(), g.frame.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.pending = true
	}
	if g.pending {
		// Pixmap bytes are premultiplied RGBA, as WritePixels expects.
		g.img.WritePixels(g.frame.Data())
		g.pending = false
	}

	op := &ebiten.DrawImageOptions{}
	off := centerOffset(screen.Bounds(), w, h)
	op.GeoM.Translate(float64(off.X), float64(off.Y))
	screen.DrawImage(g.img, op)
}

// Layout uses the window size as the screen size and offers it to the gauge.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.loop.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func centerOffset(screen image.Rectangle, w, h int) image.Point {
	return image.Pt((screen.Dx()-w)/2, (screen.Dy()-h)/2)
}

// Run opens a resizable window of size×size pixels and blocks until it closes.
func Run(title string, size int, g *Game) error {
	if size <= 0 {
		size = gauge.DefaultPreferredSize
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS)
	gauge.Logger().Info("ebitengauge: window opened", "title", title, "size", size)
	return ebiten.RunGame(g)
}
