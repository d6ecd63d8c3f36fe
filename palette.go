package gauge

import "github.com/gogpu/gg-gauge/canvas"

// Palette holds the colors a gauge paints with.
type Palette struct {
	// Rim colors the bezel, the inner rim and the center dot.
	Rim canvas.RGBA
	// Point colors the plotted acceleration dot.
	Point canvas.RGBA
	// Sky colors the horizon disc.
	Sky canvas.RGBA
	// Background is what drivers clear the surface to before each frame.
	Background canvas.RGBA
}

// DefaultPalette returns the outline/primary pair of the Material 3 baseline
// theme on a transparent background.
func DefaultPalette() Palette {
	return Palette{
		Rim:        canvas.Hex("#79747e"),
		Point:      canvas.Hex("#d0bcff"),
		Sky:        canvas.Hex("#d0bcff"),
		Background: canvas.Transparent,
	}
}
