package canvas

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/gg-gauge/internal/blend"
)

// Context is an immediate-mode drawing context over a Pixmap.
// It maintains the current path, paint, and transformation stack.
//
// Context is not safe for concurrent use.
type Context struct {
	width  int
	height int
	pixmap *Pixmap

	// Current state
	color RGBA
	mode  BlendMode

	// Transform and state stack
	matrix Matrix
	stack  []state

	// Path rasterization
	rast     *vector.Rasterizer
	coverage *image.Alpha
	hasPath  bool
	bounds   pathBounds

	// Reused for transformed pixmap blits
	scratch *image.RGBA
}

type state struct {
	matrix Matrix
	color  RGBA
	mode   BlendMode
}

// NewContext creates a drawing context backed by a new transparent pixmap.
func NewContext(width, height int) *Context {
	return NewContextForPixmap(NewPixmap(width, height))
}

// NewContextForPixmap creates a drawing context that draws into pm.
func NewContextForPixmap(pm *Pixmap) *Context {
	return &Context{
		width:  pm.Width(),
		height: pm.Height(),
		pixmap: pm,
		color:  Black,
		mode:   BlendSourceOver,
		matrix: Identity(),
	}
}

// Width returns the width of the drawing surface in pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the drawing surface in pixels.
func (c *Context) Height() int {
	return c.height
}

// Pixmap returns the pixmap being drawn into.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Clear makes every pixel transparent.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills every pixel with col, ignoring the transform.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the paint color for subsequent fills.
func (c *Context) SetColor(col RGBA) {
	c.color = col
}

// SetBlendMode sets the Porter-Duff operator for subsequent fills and
// pixmap draws.
func (c *Context) SetBlendMode(mode BlendMode) {
	c.mode = mode
}

// BlendMode returns the current blend mode.
func (c *Context) BlendMode() BlendMode {
	return c.mode
}

// Push saves the current transform, color, and blend mode.
func (c *Context) Push() {
	c.stack = append(c.stack, state{matrix: c.matrix, color: c.color, mode: c.mode})
}

// Pop restores the last saved state.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix, c.color, c.mode = s.matrix, s.color, s.mode
}

// Identity resets the transformation matrix to identity.
func (c *Context) Identity() {
	c.matrix = Identity()
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// RotateAbout rotates around a specific point.
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Transform multiplies the current transformation matrix by m.
func (c *Context) Transform(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// GetTransform returns a copy of the current transformation matrix.
func (c *Context) GetTransform() Matrix {
	return c.matrix
}

// pathBounds tracks the device-space bounding box of the current path.
type pathBounds struct {
	minX, minY, maxX, maxY float64
}

func (b *pathBounds) add(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

func (c *Context) beginPath() {
	if c.hasPath {
		return
	}
	if c.rast == nil {
		c.rast = vector.NewRasterizer(c.width, c.height)
	} else {
		c.rast.Reset(c.width, c.height)
	}
	c.hasPath = true
	c.bounds = pathBounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
}

func (c *Context) point(x, y float64) (float32, float32) {
	dx, dy := c.matrix.TransformPoint(x, y)
	c.bounds.add(dx, dy)
	return float32(dx), float32(dy)
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.beginPath()
	c.rast.MoveTo(c.point(x, y))
}

// LineTo adds a line segment to (x, y).
func (c *Context) LineTo(x, y float64) {
	c.beginPath()
	c.rast.LineTo(c.point(x, y))
}

// CubicTo adds a cubic Bézier segment.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.beginPath()
	ax, ay := c.point(c1x, c1y)
	bx, by := c.point(c2x, c2y)
	ex, ey := c.point(x, y)
	c.rast.CubeTo(ax, ay, bx, by, ex, ey)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	if c.hasPath {
		c.rast.ClosePath()
	}
}

// ClearPath discards the current path.
func (c *Context) ClearPath() {
	c.hasPath = false
}

// DrawRectangle adds a rectangle to the path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// DrawCircle adds a circle to the path.
func (c *Context) DrawCircle(x, y, r float64) {
	c.DrawEllipse(x, y, r, r)
}

// DrawEllipse adds an axis-aligned ellipse centered at (x, y) to the path.
func (c *Context) DrawEllipse(x, y, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	c.MoveTo(x+rx, y)
	c.CubicTo(x+rx, y+oy, x+ox, y+ry, x, y+ry)
	c.CubicTo(x-ox, y+ry, x-rx, y+oy, x-rx, y)
	c.CubicTo(x-rx, y-oy, x-ox, y-ry, x, y-ry)
	c.CubicTo(x+ox, y-ry, x+rx, y-oy, x+rx, y)
	c.ClosePath()
}

// DrawOval adds the ellipse inscribed in the rectangle (left, top)-(right, bottom).
func (c *Context) DrawOval(left, top, right, bottom float64) {
	c.DrawEllipse((left+right)/2, (top+bottom)/2, (right-left)/2, (bottom-top)/2)
}

// DrawArc adds an elliptical arc inscribed in the rectangle
// (left, top)-(right, bottom), starting at startDeg and sweeping sweepDeg
// clockwise. With useCenter the arc is closed through the center as a wedge;
// a sweep of 360 degrees or more adds the full oval.
func (c *Context) DrawArc(left, top, right, bottom, startDeg, sweepDeg float64, useCenter bool) {
	if math.Abs(sweepDeg) >= 360 {
		c.DrawOval(left, top, right, bottom)
		return
	}
	cx, cy := (left+right)/2, (top+bottom)/2
	rx, ry := (right-left)/2, (bottom-top)/2
	a1 := startDeg * math.Pi / 180
	a2 := (startDeg + sweepDeg) * math.Pi / 180

	if useCenter {
		c.MoveTo(cx, cy)
		c.LineTo(cx+rx*math.Cos(a1), cy+ry*math.Sin(a1))
	} else {
		c.MoveTo(cx+rx*math.Cos(a1), cy+ry*math.Sin(a1))
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(a2-a1) / maxAngle))
	step := (a2 - a1) / float64(n)
	for i := range n {
		c.arcSegment(cx, cy, rx, ry, a1+float64(i)*step, a1+float64(i+1)*step)
	}
	c.ClosePath()
}

// arcSegment adds one cubic approximation of an elliptical arc of at most 90°.
func (c *Context) arcSegment(cx, cy, rx, ry, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := cx+rx*cos1, cy+ry*sin1
	x2, y2 := cx+rx*cos2, cy+ry*sin2

	c.CubicTo(
		x1-alpha*rx*sin1, y1+alpha*ry*cos1,
		x2+alpha*rx*sin2, y2-alpha*ry*cos2,
		x2, y2)
}

// Fill rasterizes the current path with the current color and blend mode,
// then clears the path.
func (c *Context) Fill() {
	if !c.hasPath {
		return
	}
	c.hasPath = false
	if c.width == 0 || c.height == 0 {
		return
	}

	rows, ok := c.rows(c.bounds.minY, c.bounds.maxY)
	if !ok {
		return
	}
	if c.coverage == nil || c.coverage.Rect.Dx() != c.width || c.coverage.Rect.Dy() != c.height {
		c.coverage = image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	}
	c.rast.DrawOp = draw.Src
	c.rast.Draw(c.coverage, c.coverage.Rect, image.Opaque, image.Point{})

	r, g, b, a := c.color.Premul()
	for y := rows.Min; y < rows.Max; y++ {
		cov := c.coverage.Pix[y*c.coverage.Stride : y*c.coverage.Stride+c.width]
		blend.FillSpan(c.mode, c.pixmap.row(y), cov, r, g, b, a)
	}
}

// span is a half-open range of pixel rows or columns.
type span struct {
	Min, Max int
}

// rows clips a device-space vertical extent to the surface.
func (c *Context) rows(minY, maxY float64) (span, bool) {
	lo := max(int(math.Floor(minY)), 0)
	hi := min(int(math.Ceil(maxY)), c.height)
	return span{lo, hi}, lo < hi
}
