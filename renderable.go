package gauge

import "github.com/gogpu/gg-gauge/canvas"

// MeasureMode says how a parent constrains one axis of a gauge.
type MeasureMode uint8

const (
	// Unspecified places no constraint; the gauge uses its preferred size.
	Unspecified MeasureMode = iota
	// AtMost allows any size up to the given one.
	AtMost
	// Exactly requires the given size.
	Exactly
)

// String returns the mode name.
func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case AtMost:
		return "at-most"
	case Exactly:
		return "exactly"
	default:
		return "unknown"
	}
}

// MeasureSpec is the constraint on one axis.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// Constraints are the per-axis constraints a parent passes to Measure.
type Constraints struct {
	Width, Height MeasureSpec
}

// ExactSize returns constraints that require exactly w×h.
func ExactSize(w, h int) Constraints {
	return Constraints{
		Width:  MeasureSpec{Mode: Exactly, Size: w},
		Height: MeasureSpec{Mode: Exactly, Size: h},
	}
}

// Size is a measured pixel size.
type Size struct {
	Width, Height int
}

// Renderable is a drawable that negotiates its size with a host and
// redraws itself on demand.
//
// The host serializes all calls: OnResize and Render never run concurrently
// with each other or with state updates.
type Renderable interface {
	// Measure returns the size the gauge wants under c.
	Measure(c Constraints) Size
	// OnResize tells the gauge its surface is now w×h pixels.
	OnResize(w, h int)
	// Render draws the gauge into dc.
	Render(dc *canvas.Context)
}

// Instrument is a Renderable fed by sensor samples.
type Instrument interface {
	Renderable
	// Apply updates the displayed state from s.
	Apply(s Sample)
	// Dirty reports whether state changed since the last Render.
	Dirty() bool
}

// measureSquare chooses each axis from its constraint, falling back to
// preferred, and returns the square that fits both.
func measureSquare(c Constraints, preferred int) Size {
	side := min(chooseDimension(c.Width, preferred), chooseDimension(c.Height, preferred))
	return Size{Width: side, Height: side}
}

func chooseDimension(s MeasureSpec, preferred int) int {
	if s.Mode == AtMost || s.Mode == Exactly {
		return s.Size
	}
	return preferred
}
