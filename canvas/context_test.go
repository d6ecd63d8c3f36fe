package canvas

import (
	"image/color"
	"math"
	"testing"
)

var (
	opaqueRed  = color.RGBA{R: 255, A: 255}
	opaqueBlue = color.RGBA{B: 255, A: 255}
)

func TestFillRectangle(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetColor(RGB(1, 0, 0))
	dc.DrawRectangle(2, 2, 4, 4)
	dc.Fill()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"inside", 3, 3, opaqueRed},
		{"inside corner", 2, 2, opaqueRed},
		{"last inside", 5, 5, opaqueRed},
		{"outside before", 1, 1, color.RGBA{}},
		{"outside after", 6, 6, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dc.Pixmap().PixelAt(tt.x, tt.y); got != tt.want {
				t.Errorf("PixelAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFillUsesTransform(t *testing.T) {
	dc := NewContext(10, 10)
	dc.Scale(10, 10)
	dc.SetColor(RGB(1, 0, 0))
	dc.DrawRectangle(0.2, 0.2, 0.4, 0.4)
	dc.Fill()

	if got := dc.Pixmap().PixelAt(4, 4); got != opaqueRed {
		t.Errorf("PixelAt(4, 4) = %v, want %v", got, opaqueRed)
	}
	if got := dc.Pixmap().PixelAt(7, 7); got.A != 0 {
		t.Errorf("PixelAt(7, 7) alpha = %d, want 0", got.A)
	}
}

func TestFillClearPunchesHole(t *testing.T) {
	dc := NewContext(20, 20)
	dc.ClearWithColor(White)
	dc.SetBlendMode(BlendClear)
	dc.DrawCircle(10, 10, 6)
	dc.Fill()

	if got := dc.Pixmap().PixelAt(10, 10); got.A != 0 {
		t.Errorf("center alpha = %d, want 0", got.A)
	}
	if got := dc.Pixmap().PixelAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner = %v, want opaque white", got)
	}
}

func TestFillWithoutPathIsNoop(t *testing.T) {
	dc := NewContext(4, 4)
	dc.Fill()
	for _, v := range dc.Pixmap().Data() {
		if v != 0 {
			t.Fatal("Fill without a path modified the pixmap")
		}
	}
}

func TestDrawArcWedge(t *testing.T) {
	dc := NewContext(20, 20)
	dc.SetColor(RGB(0, 0, 1))
	dc.DrawArc(0, 0, 20, 20, 0, 90, true)
	dc.Fill()

	pm := dc.Pixmap()
	if got := pm.PixelAt(14, 14); got != opaqueBlue {
		t.Errorf("bottom-right quadrant = %v, want %v", got, opaqueBlue)
	}
	for _, p := range [][2]int{{5, 5}, {14, 5}, {5, 14}} {
		if got := pm.PixelAt(p[0], p[1]); got.A != 0 {
			t.Errorf("PixelAt(%d, %d) alpha = %d, want 0", p[0], p[1], got.A)
		}
	}
}

func TestDrawArcFullSweepMatchesOval(t *testing.T) {
	arc := NewContext(32, 32)
	arc.DrawArc(4, 4, 28, 28, 0, 360, true)
	arc.Fill()

	oval := NewContext(32, 32)
	oval.DrawOval(4, 4, 28, 28)
	oval.Fill()

	if !arc.Pixmap().Equal(oval.Pixmap()) {
		t.Error("360° arc differs from the oval")
	}
}

func TestPushPopRestoresState(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetColor(RGB(1, 0, 0))
	dc.Push()
	dc.Scale(2, 2)
	dc.SetBlendMode(BlendClear)
	dc.SetColor(White)
	dc.Pop()

	if !dc.GetTransform().IsIdentity() {
		t.Errorf("transform after Pop = %+v, want identity", dc.GetTransform())
	}
	if dc.BlendMode() != BlendSourceOver {
		t.Errorf("blend mode after Pop = %v, want src-over", dc.BlendMode())
	}
	if dc.color != RGB(1, 0, 0) {
		t.Errorf("color after Pop = %+v", dc.color)
	}

	// Extra Pop is ignored.
	dc.Pop()
}

func TestZeroSizeContext(t *testing.T) {
	dc := NewContext(0, 0)
	dc.DrawCircle(1, 1, 1)
	dc.Fill()
	dc.DrawPixmap(NewPixmap(4, 4), 0, 0)
	if len(dc.Pixmap().Data()) != 0 {
		t.Errorf("zero-size pixmap has %d bytes", len(dc.Pixmap().Data()))
	}
}

func TestDrawPixmapIntegerOffset(t *testing.T) {
	src := NewPixmap(2, 2)
	src.Clear(RGB(1, 0, 0))

	dc := NewContext(8, 8)
	dc.DrawPixmap(src, 3, 4)

	pm := dc.Pixmap()
	if got := pm.PixelAt(3, 4); got != opaqueRed {
		t.Errorf("PixelAt(3, 4) = %v, want %v", got, opaqueRed)
	}
	if got := pm.PixelAt(4, 5); got != opaqueRed {
		t.Errorf("PixelAt(4, 5) = %v, want %v", got, opaqueRed)
	}
	if got := pm.PixelAt(5, 4); got.A != 0 {
		t.Errorf("PixelAt(5, 4) alpha = %d, want 0", got.A)
	}
}

func TestDrawPixmapClipsToSurface(t *testing.T) {
	src := NewPixmap(4, 4)
	src.Clear(RGB(1, 0, 0))

	dc := NewContext(4, 4)
	dc.DrawPixmap(src, -2, 3)

	if got := dc.Pixmap().PixelAt(0, 3); got != opaqueRed {
		t.Errorf("PixelAt(0, 3) = %v, want %v", got, opaqueRed)
	}
	if got := dc.Pixmap().PixelAt(2, 3); got.A != 0 {
		t.Errorf("PixelAt(2, 3) alpha = %d, want 0", got.A)
	}
}

func TestDrawPixmapDestinationIn(t *testing.T) {
	dc := NewContext(4, 2)
	dc.ClearWithColor(RGB(0, 0, 1))

	mask := NewPixmap(4, 2)
	mctx := NewContextForPixmap(mask)
	mctx.DrawRectangle(0, 0, 2, 2)
	mctx.Fill()

	dc.SetBlendMode(BlendDestinationIn)
	dc.DrawPixmap(mask, 0, 0)

	pm := dc.Pixmap()
	if got := pm.PixelAt(1, 1); got != opaqueBlue {
		t.Errorf("masked-in pixel = %v, want %v", got, opaqueBlue)
	}
	if got := pm.PixelAt(3, 1); got != (color.RGBA{}) {
		t.Errorf("masked-out pixel = %v, want transparent", got)
	}
}

func TestDrawPixmapRotated(t *testing.T) {
	src := NewPixmap(10, 10)
	sctx := NewContextForPixmap(src)
	sctx.SetColor(RGB(1, 0, 0))
	sctx.DrawRectangle(0, 0, 5, 10)
	sctx.Fill()

	dc := NewContext(10, 10)
	dc.RotateAbout(math.Pi, 5, 5)
	dc.DrawPixmap(src, 0, 0)

	pm := dc.Pixmap()
	if got := pm.PixelAt(8, 5); got.A < 250 || got.R < 250 {
		t.Errorf("rotated left half should land right: PixelAt(8, 5) = %v", got)
	}
	if got := pm.PixelAt(1, 5); got.A > 5 {
		t.Errorf("PixelAt(1, 5) alpha = %d, want ~0", got.A)
	}
}

func TestDrawPixmapIdentityIsExact(t *testing.T) {
	src := NewPixmap(16, 16)
	sctx := NewContextForPixmap(src)
	sctx.SetColor(RGBA{R: 0.2, G: 0.6, B: 0.4, A: 0.7})
	sctx.DrawCircle(8, 8, 5.5)
	sctx.Fill()

	dc := NewContext(16, 16)
	dc.SetBlendMode(BlendSource)
	dc.RotateAbout(0, 8, 8)
	dc.DrawPixmap(src, 0, 0)

	if !dc.Pixmap().Equal(src) {
		t.Error("identity draw with source mode must copy bytes exactly")
	}
}

func TestMatrixCompose(t *testing.T) {
	m := Translate(3, -2).Multiply(Scale(2, 5))
	if x, y := m.TransformPoint(1, 1); x != 5 || y != 3 {
		t.Errorf("translate after scale = (%v, %v), want (5, 3)", x, y)
	}
	// Positive angles turn +x toward +y (down on screen).
	x, y := Rotate(math.Pi/2).TransformPoint(1, 0)
	if math.Abs(x) > 1e-12 || math.Abs(y-1) > 1e-12 {
		t.Errorf("Rotate(π/2) maps (1, 0) to (%v, %v), want (0, 1)", x, y)
	}
	if !Translate(4, 0).IsTranslation() || Rotate(0.1).IsTranslation() {
		t.Error("IsTranslation misclassified")
	}
}
