package gauge

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg-gauge/canvas"
)

func premul(c canvas.RGBA) color.RGBA {
	r, g, b, a := c.Premul()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func TestUpdatePointClampIdempotence(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		cx, cy     float64
	}{
		{"x over", 20, 0, StandardGravity, 0},
		{"x under", -20, 3, -StandardGravity, 3},
		{"y over", 1, 1e9, 1, StandardGravity},
		{"both under", -100, -100, -StandardGravity, -StandardGravity},
		{"infinite", math.Inf(1), math.Inf(-1), StandardGravity, -StandardGravity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := NewAccelerationGauge()
			raw.UpdatePoint(tt.x, tt.y)
			clamped := NewAccelerationGauge()
			clamped.UpdatePoint(tt.cx, tt.cy)

			gx, gy := raw.Point()
			wx, wy := clamped.Point()
			if gx != wx || gy != wy {
				t.Errorf("UpdatePoint(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, gx, gy, wx, wy)
			}
		})
	}
}

// Scenario: an input beyond full scale lands where full scale does.
func TestUpdatePointBeyondFullScale(t *testing.T) {
	g := NewAccelerationGauge()
	g.UpdatePoint(20.0, 0.0)
	x1, _ := g.Point()

	g.UpdatePoint(9.80665, 0.0)
	x2, _ := g.Point()

	if x1 != x2 {
		t.Errorf("x for 20.0 = %v, want %v", x1, x2)
	}
	if !approx(x2, 0.1) {
		t.Errorf("x at full scale = %v, want rim left 0.1", x2)
	}
}

func TestUpdatePointMapping(t *testing.T) {
	g := NewAccelerationGauge()
	cx, cy := g.Geometry().Center()

	g.UpdatePoint(0, 0)
	if x, y := g.Point(); x != cx || y != cy {
		t.Errorf("(0, 0) maps to (%v, %v), want rim center (%v, %v)", x, y, cx, cy)
	}

	s := NewScaleFactors(g.Geometry(), StandardGravity)
	prevX, prevY := math.Inf(1), math.Inf(-1)
	for v := -StandardGravity; v <= StandardGravity; v += StandardGravity / 16 {
		g.UpdatePoint(v, v)
		x, y := g.Point()
		if x >= prevX {
			t.Fatalf("x not strictly decreasing at %v: %v >= %v", v, x, prevX)
		}
		if y <= prevY {
			t.Fatalf("y not strictly increasing at %v: %v <= %v", v, y, prevY)
		}
		if math.Abs(x-(cx-s.X*v)) > 1e-12 || math.Abs(y-(cy+s.Y*v)) > 1e-12 {
			t.Fatalf("mapping at %v is not linear: (%v, %v)", v, x, y)
		}
		prevX, prevY = x, y
	}
}

func TestUpdatePointNaN(t *testing.T) {
	g := NewAccelerationGauge()
	g.UpdatePoint(math.NaN(), math.NaN())
	x, y := g.Point()
	if !approx(x, 0.5) || !approx(y, 0.5) {
		t.Errorf("NaN maps to (%v, %v), want center", x, y)
	}
}

func TestWithFullScaleChangesClamp(t *testing.T) {
	g := NewAccelerationGauge(WithFullScale(2 * StandardGravity))
	g.UpdatePoint(2*StandardGravity, 0)
	if x, _ := g.Point(); !approx(x, 0.1) {
		t.Errorf("x at full scale = %v, want 0.1", x)
	}
	g.UpdatePoint(StandardGravity, 0)
	if x, _ := g.Point(); !approx(x, 0.3) {
		t.Errorf("x at half scale = %v, want 0.3", x)
	}
}

func TestAccelerationResizeCaching(t *testing.T) {
	g := NewAccelerationGauge()
	if g.Rasterizations() != 0 {
		t.Fatalf("Rasterizations() = %d before resize", g.Rasterizations())
	}

	g.OnResize(100, 100)
	g.OnResize(100, 100)
	if got := g.Rasterizations(); got != 1 {
		t.Errorf("same-size resize: Rasterizations() = %d, want 1", got)
	}

	g.OnResize(160, 160)
	if got := g.Rasterizations(); got != 2 {
		t.Errorf("new size: Rasterizations() = %d, want 2", got)
	}

	g.Render(canvas.NewContext(160, 160))
	g.Render(canvas.NewContext(160, 160))
	if got := g.Rasterizations(); got != 2 {
		t.Errorf("Render must not rasterize the bezel: Rasterizations() = %d, want 2", got)
	}
}

func TestAccelerationRender(t *testing.T) {
	g := NewAccelerationGauge()
	g.OnResize(200, 200)
	g.UpdatePoint(0, 0)

	dc := canvas.NewContext(200, 200)
	g.Render(dc)
	pm := dc.Pixmap()

	pal := g.Palette()
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"dot over center", 100, 100, premul(pal.Point)},
		{"rim band", 100, 22, premul(pal.Rim)},
		{"cleared face", 100, 40, color.RGBA{}},
		{"inner rim band", 100, 52, premul(pal.Rim)},
		{"outside rim", 5, 5, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pm.PixelAt(tt.x, tt.y); got != tt.want {
				t.Errorf("PixelAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if g.Dirty() {
		t.Error("Render should clear the dirty flag")
	}
}

func TestAccelerationRenderMovesDot(t *testing.T) {
	g := NewAccelerationGauge()
	g.OnResize(200, 200)
	g.Apply(Sample{Values: [3]float64{StandardGravity, 0, 9}})
	if !g.Dirty() {
		t.Fatal("Apply should mark the gauge dirty")
	}

	dc := canvas.NewContext(200, 200)
	g.Render(dc)

	// Full-scale x puts the dot on the left rim edge at (20, 100).
	if got := dc.Pixmap().PixelAt(17, 100); got != premul(g.Palette().Point) {
		t.Errorf("PixelAt(17, 100) = %v, want point color", got)
	}
}

// Scenario: a gauge resized to 0×0 draws nothing.
func TestAccelerationResizeToEmpty(t *testing.T) {
	g := NewAccelerationGauge()
	g.OnResize(100, 100)
	g.Render(canvas.NewContext(100, 100))

	g.OnResize(0, 0)
	dc := canvas.NewContext(100, 100)
	g.Render(dc)

	for i, v := range dc.Pixmap().Data() {
		if v != 0 {
			t.Fatalf("byte %d = %d after rendering an empty gauge", i, v)
		}
	}
}

func TestAccelerationRenderBeforeResize(t *testing.T) {
	g := NewAccelerationGauge()
	dc := canvas.NewContext(50, 50)
	g.Render(dc)
	if got := dc.Pixmap().PixelAt(25, 25); got.A != 0 {
		t.Errorf("render before first resize drew %v", got)
	}
	if g.Dirty() {
		t.Error("an empty render must clear the dirty flag")
	}
	g.OnResize(50, 50)
	if !g.Dirty() {
		t.Error("a resize to a real surface must mark the gauge dirty")
	}
}
