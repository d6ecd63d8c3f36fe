package gauge

import (
	"math"

	"github.com/gogpu/gg-gauge/canvas"
)

// pointRadius is the radius of the plotted dot in normalized gauge space.
const pointRadius = 0.025

// AccelerationGauge plots a two-axis acceleration vector as a dot over a
// cached bezel. Input beyond the full-scale range is clamped so the dot stays
// on the rim.
//
// X is mirrored: a positive x moves the dot left, a positive y moves it down.
type AccelerationGauge struct {
	geom      Geometry
	scale     ScaleFactors
	fullScale float64
	palette   Palette
	preferred int

	bezel *Layer

	width, height int

	x, y  float64
	dirty bool
}

var _ Instrument = (*AccelerationGauge)(nil)

// NewAccelerationGauge creates a point gauge with the dot at the center.
func NewAccelerationGauge(opts ...Option) *AccelerationGauge {
	o := newOptions(opts)
	geom := AccelerationGeometry()
	cx, cy := geom.Center()
	return &AccelerationGauge{
		geom:      geom,
		scale:     NewScaleFactors(geom, o.fullScale),
		fullScale: o.fullScale,
		palette:   o.palette,
		preferred: o.preferredSize,
		bezel:     NewLayer("acceleration.bezel"),
		x:         cx,
		y:         cy,
		dirty:     true,
	}
}

// Geometry returns the gauge layout.
func (g *AccelerationGauge) Geometry() Geometry { return g.geom }

// FullScale returns the clamping magnitude.
func (g *AccelerationGauge) FullScale() float64 { return g.fullScale }

// Palette returns the gauge colors.
func (g *AccelerationGauge) Palette() Palette { return g.palette }

// UpdatePoint clamps rawX and rawY to ±FullScale, maps them into normalized
// gauge space and marks the gauge dirty. NaN components are treated as 0.
func (g *AccelerationGauge) UpdatePoint(rawX, rawY float64) {
	x := g.clamp(rawX)
	y := g.clamp(rawY)
	cx, cy := g.geom.Center()
	g.x = g.scale.X*-x + cx
	g.y = g.scale.Y*y + cy
	g.dirty = true
}

func (g *AccelerationGauge) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-g.fullScale, math.Min(g.fullScale, v))
}

// Point returns the dot position in normalized gauge space.
func (g *AccelerationGauge) Point() (x, y float64) {
	return g.x, g.y
}

// Apply plots the x and y components of s.
func (g *AccelerationGauge) Apply(s Sample) {
	g.UpdatePoint(s.Values[0], s.Values[1])
}

// Dirty reports whether the point moved or the surface changed since the
// last Render.
func (g *AccelerationGauge) Dirty() bool { return g.dirty }

// Measure returns the largest square allowed by c.
func (g *AccelerationGauge) Measure(c Constraints) Size {
	return measureSquare(c, g.preferred)
}

// OnResize regenerates the bezel when the size changed. A zero or negative
// size empties the cache.
func (g *AccelerationGauge) OnResize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w != g.width || h != g.height {
		Logger().Debug("gauge: resize", "gauge", "acceleration", "width", w, "height", h)
		g.dirty = true
	}
	g.width, g.height = w, h
	g.bezel.Ensure(w, h, g.paintBezel)
}

// Rasterizations returns how many times the static bezel has been drawn.
func (g *AccelerationGauge) Rasterizations() int {
	return g.bezel.Passes()
}

func (g *AccelerationGauge) paintBezel(dc *canvas.Context) {
	fillOval(dc, g.geom.Rim(), g.palette.Rim, canvas.BlendSourceOver)
	fillOval(dc, g.geom.Face(), canvas.Transparent, canvas.BlendClear)
	fillOval(dc, g.geom.InnerRim(), g.palette.Rim, canvas.BlendSourceOver)
	fillOval(dc, g.geom.InnerFace(), canvas.Transparent, canvas.BlendClear)
	fillOval(dc, g.geom.Dot(), g.palette.Rim, canvas.BlendSourceOver)
}

// Render draws the cached bezel and the dot. Nothing is drawn before the
// first OnResize or after a resize to an empty surface.
func (g *AccelerationGauge) Render(dc *canvas.Context) {
	if g.width == 0 || g.height == 0 {
		g.dirty = false
		return
	}
	g.bezel.Blit(dc)

	s := float64(g.width)
	dc.Push()
	dc.Scale(s, s)
	dc.SetBlendMode(canvas.BlendSourceOver)
	dc.SetColor(g.palette.Point)
	dc.DrawCircle(g.x, g.y, pointRadius)
	dc.Fill()
	dc.Pop()

	g.dirty = false
}

// fillOval fills the ellipse inscribed in r.
func fillOval(dc *canvas.Context, r Rect, col canvas.RGBA, mode canvas.BlendMode) {
	dc.SetColor(col)
	dc.SetBlendMode(mode)
	dc.DrawOval(r.Left, r.Top, r.Right, r.Bottom)
	dc.Fill()
}
