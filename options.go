package gauge

import "math"

// DefaultPreferredSize is the edge length, in pixels, a gauge asks for when
// its parent places no constraint on it.
const DefaultPreferredSize = 300

// Option configures a gauge during creation.
//
// Example:
//
//	g := gauge.NewAccelerationGauge(
//	    gauge.WithFullScale(2*gauge.StandardGravity),
//	    gauge.WithPalette(p),
//	)
type Option func(*options)

type options struct {
	palette       Palette
	fullScale     float64
	preferredSize int
}

func defaultOptions() options {
	return options{
		palette:       DefaultPalette(),
		fullScale:     StandardGravity,
		preferredSize: DefaultPreferredSize,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPalette sets the colors used for the rim, the plotted point and the sky.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithFullScale sets the magnitude at which the point gauge clamps its input.
// Non-positive and non-finite values are ignored. The rotation gauge ignores
// this option.
func WithFullScale(v float64) Option {
	return func(o *options) {
		if v > 0 && !math.IsInf(v, 1) {
			o.fullScale = v
		}
	}
}

// WithPreferredSize sets the size reported by Measure for unconstrained axes.
// Non-positive values are ignored.
func WithPreferredSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.preferredSize = px
		}
	}
}
