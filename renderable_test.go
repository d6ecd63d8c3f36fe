package gauge

import "testing"

func TestMeasure(t *testing.T) {
	tests := []struct {
		name string
		c    Constraints
		want int
	}{
		{"exact square", ExactSize(200, 200), 200},
		{"exact wide", ExactSize(640, 480), 480},
		{"at most", Constraints{MeasureSpec{AtMost, 150}, MeasureSpec{AtMost, 400}}, 150},
		{"unspecified", Constraints{}, DefaultPreferredSize},
		{"unspecified width", Constraints{Height: MeasureSpec{Exactly, 120}}, 120},
		{"unspecified height, large width", Constraints{Width: MeasureSpec{AtMost, 1000}}, DefaultPreferredSize},
	}
	gauges := map[string]Renderable{
		"acceleration": NewAccelerationGauge(),
		"rotation":     NewRotationGauge(),
	}
	for gname, g := range gauges {
		for _, tt := range tests {
			t.Run(gname+"/"+tt.name, func(t *testing.T) {
				got := g.Measure(tt.c)
				if got != (Size{tt.want, tt.want}) {
					t.Errorf("Measure() = %+v, want %dx%d", got, tt.want, tt.want)
				}
			})
		}
	}
}

func TestMeasurePreferredSizeOption(t *testing.T) {
	g := NewAccelerationGauge(WithPreferredSize(64))
	if got := g.Measure(Constraints{}); got != (Size{64, 64}) {
		t.Errorf("Measure() = %+v, want 64x64", got)
	}
}

func TestMeasureModeString(t *testing.T) {
	tests := []struct {
		m    MeasureMode
		want string
	}{
		{Unspecified, "unspecified"},
		{AtMost, "at-most"},
		{Exactly, "exactly"},
		{MeasureMode(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
