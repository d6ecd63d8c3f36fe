package gauge

import (
	"math"

	"github.com/gogpu/gg-gauge/canvas"
)

// RotationGauge is an artificial horizon. Pitch shifts a ground band up or
// down inside the face disc and yaw turns the disc about the surface center.
// Rotation values are stored raw; they are periodic and never clamped.
type RotationGauge struct {
	geom      Geometry
	palette   Palette
	preferred int

	bezel   *Layer
	face    *Layer
	mask    *Layer
	scratch *Layer

	width, height int

	rotation [3]float64
	dirty    bool
}

var _ Instrument = (*RotationGauge)(nil)

// NewRotationGauge creates a horizon gauge at zero rotation.
func NewRotationGauge(opts ...Option) *RotationGauge {
	o := newOptions(opts)
	return &RotationGauge{
		geom:      RotationGeometry(),
		palette:   o.palette,
		preferred: o.preferredSize,
		bezel:     NewLayer("rotation.bezel"),
		face:      NewLayer("rotation.face"),
		mask:      NewLayer("rotation.mask"),
		scratch:   NewLayer("rotation.scratch"),
		dirty:     true,
	}
}

// Geometry returns the gauge layout.
func (g *RotationGauge) Geometry() Geometry { return g.geom }

// Palette returns the gauge colors.
func (g *RotationGauge) Palette() Palette { return g.palette }

// UpdateRotation stores (roll, pitch, yaw) in radians and marks the gauge
// dirty.
func (g *RotationGauge) UpdateRotation(r [3]float64) {
	g.rotation = r
	g.dirty = true
}

// Rotation returns the stored (roll, pitch, yaw).
func (g *RotationGauge) Rotation() [3]float64 {
	return g.rotation
}

// Apply stores the three components of s as (roll, pitch, yaw).
func (g *RotationGauge) Apply(s Sample) {
	g.UpdateRotation(s.Values)
}

// Dirty reports whether the rotation or the surface changed since the last
// Render.
func (g *RotationGauge) Dirty() bool { return g.dirty }

// Measure returns the largest square allowed by c.
func (g *RotationGauge) Measure(c Constraints) Size {
	return measureSquare(c, g.preferred)
}

// OnResize regenerates the bezel and face disc when the size changed. A zero
// or negative size empties every layer.
func (g *RotationGauge) OnResize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w != g.width || h != g.height {
		Logger().Debug("gauge: resize", "gauge", "rotation", "width", w, "height", h)
		g.dirty = true
	}
	g.width, g.height = w, h
	g.bezel.Ensure(w, h, g.paintBezel)
	g.face.Ensure(w, h, g.paintFace)
	g.mask.Ensure(w, h, nil)
	g.scratch.Ensure(w, h, nil)
}

// Rasterizations returns how many times the static bezel has been drawn.
func (g *RotationGauge) Rasterizations() int {
	return g.bezel.Passes()
}

// Horizon returns the normalized y of the sky/ground split for the current
// pitch. Zero pitch puts it at the vertical middle of the rim; positive pitch
// moves it up.
func (g *RotationGauge) Horizon() float64 {
	rim := g.geom.Rim()
	halfHeight := (rim.Top - rim.Bottom) / 2
	return rim.Top - halfHeight + g.rotation[1]*halfHeight
}

func (g *RotationGauge) paintBezel(dc *canvas.Context) {
	fillOval(dc, g.geom.Halo(), g.palette.Rim, canvas.BlendSourceOver)
	fillOval(dc, g.geom.Rim(), canvas.Transparent, canvas.BlendClear)
}

func (g *RotationGauge) paintFace(dc *canvas.Context) {
	f := g.geom.SkyFace()
	dc.SetColor(g.palette.Sky)
	dc.DrawArc(f.Left, f.Top, f.Right, f.Bottom, 0, 360, true)
	dc.Fill()
}

// Render draws the cached bezel, then the face disc masked to the ground
// band and turned by yaw. Nothing is drawn before the first OnResize or
// after a resize to an empty surface.
func (g *RotationGauge) Render(dc *canvas.Context) {
	if g.width == 0 || g.height == 0 {
		g.dirty = false
		return
	}
	g.bezel.Blit(dc)
	g.drawFace(dc)
	g.dirty = false
}

func (g *RotationGauge) drawFace(dc *canvas.Context) {
	rim := g.geom.Rim()
	top := g.Horizon()

	// Always true for the fixed layout; kept for configurable geometry.
	if !(rim.Left <= rim.Right && top <= rim.Bottom) {
		return
	}

	w, h := g.width, g.height
	g.face.Ensure(w, h, g.paintFace)
	g.mask.Ensure(w, h, nil)
	g.scratch.Ensure(w, h, nil)

	s := float64(w)
	mdc := g.mask.Context()
	mdc.Clear()
	mdc.Scale(s, s)
	mdc.SetColor(g.palette.Sky)
	mdc.DrawRectangle(rim.Left, top, rim.Right-rim.Left, rim.Bottom-top)
	mdc.Fill()

	sdc := g.scratch.Context()
	sdc.SetBlendMode(canvas.BlendSource)
	sdc.DrawPixmap(g.face.Pixmap(), 0, 0)
	sdc.SetBlendMode(canvas.BlendDestinationIn)
	sdc.DrawPixmap(g.mask.Pixmap(), 0, 0)

	dc.Push()
	if angle := yawAngle(g.rotation[2]); angle != 0 {
		dc.RotateAbout(angle, float64(w)/2, float64(h)/2)
	}
	dc.SetBlendMode(canvas.BlendSourceOver)
	dc.DrawPixmap(g.scratch.Pixmap(), 0, 0)
	dc.Pop()
}

// yawAngle returns the on-screen rotation for yaw, reduced to [-π, π] so
// that whole turns produce identical transforms. Non-finite yaw yields 0.
func yawAngle(yaw float64) float64 {
	if math.IsNaN(yaw) || math.IsInf(yaw, 0) {
		return 0
	}
	a := math.Remainder(-yaw, 2*math.Pi)
	if a == 0 {
		return 0
	}
	return a
}
