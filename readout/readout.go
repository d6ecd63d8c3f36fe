// Package readout draws a one-line numeric readout of the current sample
// below a rendered gauge.
//
// Numbers are formatted for a locale with golang.org/x/text/message and drawn
// with the Go Regular font through golang.org/x/image/font.
package readout

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gg-gauge/canvas"
)

// Readout formats and draws sample values. It is not safe for concurrent use.
type Readout struct {
	face      font.Face
	closer    interface{ Close() error }
	shaper    *shaper
	printer   *message.Printer
	tag       language.Tag
	color     canvas.RGBA
	size      float64
	precision int
	margin    int
	align     Align
}

// Align is the horizontal placement of the readout line.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Option configures a Readout.
type Option func(*Readout)

// WithSize sets the font size in pixels. Default: 13.
func WithSize(px float64) Option {
	return func(r *Readout) {
		if px > 0 {
			r.size = px
		}
	}
}

// WithColor sets the text color. Default: opaque black.
func WithColor(c canvas.RGBA) Option {
	return func(r *Readout) {
		r.color = c
	}
}

// WithLocale sets the language used for number formatting. Default: English.
func WithLocale(tag language.Tag) Option {
	return func(r *Readout) {
		r.tag = tag
	}
}

// WithAlign sets the horizontal placement. Default: AlignLeft.
func WithAlign(a Align) Option {
	return func(r *Readout) {
		r.align = a
	}
}

// WithPrecision sets the number of fraction digits. Default: 2.
func WithPrecision(digits int) Option {
	return func(r *Readout) {
		if digits >= 0 {
			r.precision = digits
		}
	}
}

// New creates a Readout. If the bundled font cannot be loaded the readout
// falls back to basicfont.Face7x13.
func New(opts ...Option) *Readout {
	r := &Readout{
		tag:       language.English,
		color:     canvas.Black,
		size:      13,
		precision: 2,
		margin:    4,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.printer = message.NewPrinter(r.tag)

	face, err := newFace(r.size)
	if err != nil {
		r.face = basicfont.Face7x13
	} else {
		r.face = face
		r.closer = face
		if sh, err := newShaper(goregular.TTF, r.tag.String()); err == nil {
			r.shaper = sh
		}
	}
	return r
}

func newFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("readout: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("readout: failed to create face: %w", err)
	}
	return face, nil
}

// ParseLocale parses a BCP 47 tag such as "en-US" or "de". An empty string
// yields English.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("readout: invalid locale %q: %w", s, err)
	}
	return tag, nil
}

// Locale returns the formatting language.
func (r *Readout) Locale() language.Tag {
	return r.tag
}

// Format renders "label value" pairs separated by two spaces, followed by
// unit when it is not empty. Extra labels or values are ignored.
func (r *Readout) Format(labels []string, values []float64, unit string) string {
	n := min(len(labels), len(values))
	if n == 0 {
		return ""
	}
	verb := fmt.Sprintf("%%s %%.%df", r.precision)

	var b strings.Builder
	for i := range n {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(r.printer.Sprintf(verb, labels[i], values[i]))
	}
	if unit != "" {
		b.WriteString(" ")
		b.WriteString(unit)
	}
	return b.String()
}

// Draw formats the values and draws them on one line at the bottom of pm,
// returning the formatted text.
func (r *Readout) Draw(pm *canvas.Pixmap, labels []string, values []float64, unit string) string {
	text := r.Format(labels, values, unit)
	if text == "" || pm.Empty() {
		return text
	}

	x := r.margin
	if r.align == AlignCenter {
		x = max(r.margin, (pm.Width()-r.Width(text))/2)
	}
	descent := r.face.Metrics().Descent.Ceil()
	d := &font.Drawer{
		Dst:  pm.Image(),
		Src:  image.NewUniform(r.color.Color()),
		Face: r.face,
		Dot:  fixed.P(x, pm.Height()-r.margin-descent),
	}
	d.DrawString(text)
	return text
}

// Width returns the advance width of text in pixels. With the bundled font
// the width comes from shaping the text.
func (r *Readout) Width(text string) int {
	if r.shaper != nil {
		return r.shaper.advance(text, r.size).Ceil()
	}
	return font.MeasureString(r.face, text).Ceil()
}

// Close releases the font face.
func (r *Readout) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
