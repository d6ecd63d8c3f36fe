package readout

import (
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/text/language"

	"github.com/gogpu/gg-gauge/canvas"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		labels []string
		values []float64
		unit   string
		want   string
	}{
		{"english", nil, []string{"x", "y"}, []float64{1.5, -0.25}, "m/s²", "x 1.50  y -0.25 m/s²"},
		{"german", []Option{WithLocale(language.German)}, []string{"x"}, []float64{1.5}, "", "x 1,50"},
		{"precision", []Option{WithPrecision(0)}, []string{"yaw"}, []float64{3}, "rad", "yaw 3 rad"},
		{"extra values ignored", nil, []string{"x"}, []float64{1, 2, 3}, "", "x 1.00"},
		{"empty", nil, nil, []float64{1}, "g", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.opts...)
			defer r.Close()
			if got := r.Format(tt.labels, tt.values, tt.unit); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawMarksBottomLeft(t *testing.T) {
	r := New(WithSize(16))
	defer r.Close()

	pm := canvas.NewPixmap(200, 60)
	text := r.Draw(pm, []string{"x"}, []float64{9.81}, "")
	if text == "" {
		t.Fatal("Draw returned empty text")
	}

	var top, bottom int
	for y := range pm.Height() {
		for x := range pm.Width() {
			if pm.PixelAt(x, y).A == 0 {
				continue
			}
			if y < 30 {
				top++
			} else {
				bottom++
			}
		}
	}
	if bottom == 0 {
		t.Error("no text pixels in the bottom half")
	}
	if top != 0 {
		t.Errorf("%d text pixels in the top half", top)
	}
}

func TestDrawEmpty(t *testing.T) {
	r := New()
	defer r.Close()

	pm := canvas.NewPixmap(50, 20)
	if got := r.Draw(pm, nil, nil, "rad"); got != "" {
		t.Errorf("Draw() = %q, want empty", got)
	}
	for _, v := range pm.Data() {
		if v != 0 {
			t.Fatal("empty readout drew pixels")
		}
	}
	// Zero-size pixmaps are tolerated.
	r.Draw(canvas.NewPixmap(0, 0), []string{"x"}, []float64{1}, "")
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("")
	if err != nil || tag != language.English {
		t.Errorf("ParseLocale(\"\") = %v, %v", tag, err)
	}
	tag, err = ParseLocale("de-DE")
	if err != nil {
		t.Fatalf("ParseLocale(de-DE) error: %v", err)
	}
	if base, _ := tag.Base(); base.String() != "de" {
		t.Errorf("base = %v, want de", base)
	}
	if _, err := ParseLocale("not a locale!"); err == nil {
		t.Error("ParseLocale should reject malformed tags")
	}
}

func TestWidth(t *testing.T) {
	r := New()
	defer r.Close()
	if r.Width("x 1.00") <= r.Width("x") {
		t.Error("longer text should be wider")
	}
}

func TestDrawCentered(t *testing.T) {
	r := New(WithSize(14), WithAlign(AlignCenter))
	defer r.Close()

	pm := canvas.NewPixmap(240, 30)
	text := r.Draw(pm, []string{"yaw"}, []float64{1}, "rad")

	left, right := pm.Width(), -1
	for y := range pm.Height() {
		for x := range pm.Width() {
			if pm.PixelAt(x, y).A != 0 {
				left = min(left, x)
				right = max(right, x)
			}
		}
	}
	if right < 0 {
		t.Fatalf("Draw(%q) drew nothing", text)
	}
	if left <= 20 {
		t.Errorf("left ink edge %d, want the line centered", left)
	}
	if slack := left - (pm.Width() - 1 - right); slack < -8 || slack > 8 {
		t.Errorf("left margin %d and right margin %d differ too much", left, pm.Width()-1-right)
	}
}

func TestShapedWidthMatchesFace(t *testing.T) {
	r := New(WithSize(20))
	defer r.Close()
	if r.shaper == nil {
		t.Fatal("bundled font should be shaped")
	}
	got := r.Width("x 12.50  y -3.00")
	if got <= 0 {
		t.Fatalf("Width = %d", got)
	}
	// Shaping and the hinted face agree to within a few pixels.
	face := font.MeasureString(r.face, "x 12.50  y -3.00").Ceil()
	if d := got - face; d < -6 || d > 6 {
		t.Errorf("shaped width %d, face width %d", got, face)
	}
}
