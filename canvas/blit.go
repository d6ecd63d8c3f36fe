package canvas

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gg-gauge/internal/blend"
)

// BlendMode defines how source pixels are combined with destination pixels.
type BlendMode = blend.Mode

// Porter-Duff blend modes.
const (
	BlendClear           = blend.Clear
	BlendSource          = blend.Source
	BlendDestination     = blend.Destination
	BlendSourceOver      = blend.SourceOver
	BlendDestinationOver = blend.DestinationOver
	BlendSourceIn        = blend.SourceIn
	BlendDestinationIn   = blend.DestinationIn
	BlendSourceOut       = blend.SourceOut
	BlendDestinationOut  = blend.DestinationOut
	BlendSourceAtop      = blend.SourceAtop
	BlendDestinationAtop = blend.DestinationAtop
	BlendXor             = blend.Xor
	BlendPlus            = blend.Plus
)

// DrawPixmap composites src with its top-left corner at (x, y) in user space,
// using the current transform and blend mode. Only destination pixels inside
// the transformed bounds of src are touched.
//
// Integer translations copy pixels exactly. Any other transform resamples src
// with bilinear filtering.
func (c *Context) DrawPixmap(src *Pixmap, x, y float64) {
	if src.Empty() || c.width == 0 || c.height == 0 {
		return
	}
	m := c.matrix.Multiply(Translate(x, y))

	if m.IsTranslation() && m.C == math.Trunc(m.C) && m.F == math.Trunc(m.F) {
		c.blitAt(src, int(m.C), int(m.F))
		return
	}
	c.blitTransformed(src, m)
}

// blitAt composites src at an integer pixel offset.
func (c *Context) blitAt(src *Pixmap, ox, oy int) {
	dr := image.Rect(ox, oy, ox+src.width, oy+src.height).Intersect(c.pixmap.Bounds())
	if dr.Empty() {
		return
	}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		drow := c.pixmap.row(y)[dr.Min.X*4 : dr.Max.X*4]
		srow := src.row(y - oy)[(dr.Min.X-ox)*4 : (dr.Max.X-ox)*4]
		blend.Span(c.mode, drow, srow)
	}
}

// blitTransformed resamples src through m into a scratch buffer, then
// composites the covered region.
func (c *Context) blitTransformed(src *Pixmap, m Matrix) {
	dr := transformedBounds(m, src.width, src.height).Intersect(c.pixmap.Bounds())
	if dr.Empty() {
		return
	}
	if c.scratch == nil || c.scratch.Rect != c.pixmap.Bounds() {
		c.scratch = image.NewRGBA(c.pixmap.Bounds())
	}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		clear(c.scratch.Pix[y*c.scratch.Stride+dr.Min.X*4 : y*c.scratch.Stride+dr.Max.X*4])
	}

	xdraw.ApproxBiLinear.Transform(c.scratch, m.Aff3(), src.Image(), src.Bounds(), xdraw.Src, nil)

	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		drow := c.pixmap.row(y)[dr.Min.X*4 : dr.Max.X*4]
		srow := c.scratch.Pix[y*c.scratch.Stride+dr.Min.X*4 : y*c.scratch.Stride+dr.Max.X*4]
		blend.Span(c.mode, drow, srow)
	}
}

// transformedBounds returns the integer device-space box covering a w×h
// rectangle mapped through m.
func transformedBounds(m Matrix, w, h int) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}} {
		x, y := m.TransformPoint(p[0], p[1])
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}
