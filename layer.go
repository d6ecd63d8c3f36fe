package gauge

import "github.com/gogpu/gg-gauge/canvas"

// Layer is an offscreen pixel buffer tagged with the surface size it was
// rasterized for. It is valid only while that size matches the surface;
// every access goes through Ensure, which regenerates on mismatch.
//
// The zero value is an empty layer. A Layer is owned by a single gauge and
// is not safe for concurrent use.
type Layer struct {
	name   string
	pixmap *canvas.Pixmap
	dc     *canvas.Context
	width  int
	height int
	passes int
}

// NewLayer returns an empty layer. The name only appears in log output.
func NewLayer(name string) *Layer {
	return &Layer{name: name}
}

// Ensure makes the layer valid for a w×h surface and reports whether it had
// to be regenerated.
//
// On a size mismatch the old buffer is released, a transparent w×h buffer is
// allocated and paint, if not nil, draws into it through a context already
// scaled by w, so paint works in normalized gauge space. Each call of paint
// counts as one rasterization pass. A non-positive size leaves the layer
// empty.
func (l *Layer) Ensure(w, h int, paint func(dc *canvas.Context)) bool {
	if w <= 0 || h <= 0 {
		if l.pixmap != nil {
			l.Release()
		}
		return false
	}
	if l.Valid(w, h) {
		return false
	}

	l.Release()
	l.pixmap = canvas.NewPixmap(w, h)
	l.dc = canvas.NewContextForPixmap(l.pixmap)
	l.width, l.height = w, h

	if paint != nil {
		l.dc.Push()
		l.dc.Scale(float64(w), float64(w))
		paint(l.dc)
		l.dc.Pop()
		l.passes++
	}
	Logger().Debug("gauge: layer regenerated", "layer", l.name, "width", w, "height", h, "passes", l.passes)
	return true
}

// Valid reports whether the layer holds a buffer rasterized for w×h.
func (l *Layer) Valid(w, h int) bool {
	return l.pixmap != nil && l.width == w && l.height == h
}

// Size returns the size the layer was rasterized for, or 0×0 when empty.
func (l *Layer) Size() (w, h int) {
	return l.width, l.height
}

// Passes returns how many times paint has rasterized into the layer.
func (l *Layer) Passes() int {
	return l.passes
}

// Pixmap returns the cached buffer, or nil when the layer is empty.
func (l *Layer) Pixmap() *canvas.Pixmap {
	return l.pixmap
}

// Context returns a drawing context over the cached buffer with an identity
// transform and source-over blending, or nil when the layer is empty.
// Callers use it for content that is redrawn every frame.
func (l *Layer) Context() *canvas.Context {
	if l.dc == nil {
		return nil
	}
	l.dc.Identity()
	l.dc.SetBlendMode(canvas.BlendSourceOver)
	return l.dc
}

// Blit draws the cached buffer onto dc at the origin with source-over
// blending. It does nothing when the layer is empty.
func (l *Layer) Blit(dc *canvas.Context) {
	if l.pixmap == nil {
		return
	}
	dc.Push()
	dc.SetBlendMode(canvas.BlendSourceOver)
	dc.DrawPixmap(l.pixmap, 0, 0)
	dc.Pop()
}

// Release drops the cached buffer. The pass counter is kept.
func (l *Layer) Release() {
	l.pixmap = nil
	l.dc = nil
	l.width, l.height = 0, 0
}
