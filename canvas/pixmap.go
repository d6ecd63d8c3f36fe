package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, the same layout
// as image.RGBA. Image exposes the buffer without copying.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Empty reports whether the pixmap has no pixels.
func (p *Pixmap) Empty() bool {
	return p == nil || p.width == 0 || p.height == 0
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// row returns the bytes of row y.
func (p *Pixmap) row(y int) []uint8 {
	stride := p.width * 4
	return p.data[y*stride : (y+1)*stride]
}

// PixelAt returns the premultiplied color of a single pixel.
// Out-of-bounds coordinates return transparent.
func (p *Pixmap) PixelAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.Premul()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// CopyFrom replaces the contents with src. Sizes must match; otherwise the
// overlapping region is copied row by row.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	if src.width == p.width && src.height == p.height {
		copy(p.data, src.data)
		return
	}
	w := min(p.width, src.width) * 4
	for y := range min(p.height, src.height) {
		copy(p.row(y)[:w], src.row(y)[:w])
	}
}

// Equal reports whether both pixmaps have the same size and identical bytes.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if p.width != other.width || p.height != other.height {
		return false
	}
	return bytes.Equal(p.data, other.data)
}

// Image returns an image.RGBA view sharing the pixmap's buffer.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.Image())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	i := (y*p.width + x) * 4
	p.data[i+0] = rgba.R
	p.data[i+1] = rgba.G
	p.data[i+2] = rgba.B
	p.data[i+3] = rgba.A
}
