package gauge

// StandardGravity is Earth's standard gravitational acceleration in m/s²,
// the default full-scale range of the acceleration gauge.
const StandardGravity = 9.80665

const (
	rimStroke = 0.02
	haloInset = -0.04
)

// Rect is an axis-aligned rectangle in normalized gauge space, where the
// gauge occupies the unit square and Y grows down.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// Inset shrinks r by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{r.Left + d, r.Top + d, r.Right - d, r.Bottom - d}
}

// Valid reports whether Left ≤ Right and Top ≤ Bottom.
func (r Rect) Valid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right &&
		o.Top >= r.Top && o.Bottom <= r.Bottom
}

// Geometry is the fixed normalized layout of a gauge type.
//
// Every rectangle lies within the halo; the face, inner rim, inner face, dot
// and sky rectangles lie within the rim. Geometry is immutable.
type Geometry struct {
	rim       Rect
	halo      Rect
	face      Rect
	innerRim  Rect
	innerFace Rect
	dot       Rect
	skyFace   Rect
	skyBand   Rect
}

// AccelerationGeometry returns the layout of the point-plot gauge: a rim,
// its face, a concentric inner rim and a center dot. The sky rectangles
// equal the face since this gauge has no horizon.
func AccelerationGeometry() Geometry {
	rim := Rect{0.1, 0.1, 0.9, 0.9}
	inner := Rect{0.25, 0.25, 0.75, 0.75}
	face := rim.Inset(rimStroke)
	return Geometry{
		rim:       rim,
		halo:      rim.Inset(haloInset),
		face:      face,
		innerRim:  inner,
		innerFace: inner.Inset(rimStroke),
		dot:       Rect{0.47, 0.47, 0.53, 0.53},
		skyFace:   face,
		skyBand:   face,
	}
}

// RotationGeometry returns the layout of the horizon gauge. The sky band's
// top edge is replaced every frame by the pitch-dependent horizon.
func RotationGeometry() Geometry {
	rim := Rect{0.12, 0.12, 0.88, 0.88}
	face := rim.Inset(rimStroke)
	return Geometry{
		rim:       rim,
		halo:      rim.Inset(haloInset),
		face:      face,
		innerRim:  face,
		innerFace: face,
		dot:       face,
		skyFace:   rim,
		skyBand:   face,
	}
}

func (g Geometry) Rim() Rect       { return g.rim }
func (g Geometry) Halo() Rect      { return g.halo }
func (g Geometry) Face() Rect      { return g.face }
func (g Geometry) InnerRim() Rect  { return g.innerRim }
func (g Geometry) InnerFace() Rect { return g.innerFace }
func (g Geometry) Dot() Rect       { return g.dot }
func (g Geometry) SkyFace() Rect   { return g.skyFace }
func (g Geometry) SkyBand() Rect   { return g.skyBand }

// Center returns the center of the rim.
func (g Geometry) Center() (x, y float64) {
	return g.rim.Center()
}

// ScaleFactors convert physical units into normalized gauge space so that
// ±fullScale spans the rim.
type ScaleFactors struct {
	X, Y float64
}

// NewScaleFactors derives scale factors from the rim of g.
func NewScaleFactors(g Geometry, fullScale float64) ScaleFactors {
	return ScaleFactors{
		X: g.rim.Width() / (2 * fullScale),
		Y: g.rim.Height() / (2 * fullScale),
	}
}
