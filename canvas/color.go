package canvas

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("canvas: invalid hex color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Premul returns the color as premultiplied 8-bit components, the layout
// stored in a Pixmap.
func (c RGBA) Premul() (r, g, b, a byte) {
	alpha := clamp255(c.A * 255)
	return byte(clamp255(c.R*alpha) + 0.5),
		byte(clamp255(c.G*alpha) + 0.5),
		byte(clamp255(c.B*alpha) + 0.5),
		byte(alpha + 0.5)
}

// Hex formats the color as "#RRGGBB" or "#RRGGBBAA" when not opaque.
func (c RGBA) Hex() string {
	n := c.Color().(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Hex creates a color from a hex string and returns opaque black when the
// string cannot be parsed. Use ParseHex to detect errors.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint32
	v[3] = 255

	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return RGBA{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
		A: float64(v[3]) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
