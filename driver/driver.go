// Package driver runs a gauge headlessly: once per tick it takes the latest
// sample from a gauge.Slot, applies it, renders when something changed and
// hands the frame to a Sink.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/canvas"
)

// DefaultInterval is the redraw cadence.
const DefaultInterval = 20 * time.Millisecond

// Sink receives rendered frames. The pixmap is reused by the next frame, so
// sinks that keep it must copy it.
type Sink interface {
	Frame(ctx context.Context, n int, pm *canvas.Pixmap) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, n int, pm *canvas.Pixmap) error

// Frame calls f.
func (f SinkFunc) Frame(ctx context.Context, n int, pm *canvas.Pixmap) error {
	return f(ctx, n, pm)
}

// Overlay draws extra content, such as a readout, over a rendered frame.
// ok is false until the first sample arrives.
type Overlay func(pm *canvas.Pixmap, s gauge.Sample, ok bool)

// Loop drives one gauge. Gauge, Slot and Sink are required.
//
// A Loop is the single goroutine that touches its gauge; only the Slot is
// shared with producers.
type Loop struct {
	Gauge gauge.Instrument
	Slot  *gauge.Slot
	Sink  Sink

	// Interval between ticks in Run. Default: DefaultInterval.
	Interval time.Duration
	// Width and Height of the surface offered to the gauge. The gauge is
	// measured with exact constraints, so it gets the largest square that fits.
	Width, Height int
	// Background is the color each frame is cleared to before rendering.
	Background canvas.RGBA
	// Overlay is optional.
	Overlay Overlay

	dc        *canvas.Context
	surfaceW  int
	surfaceH  int
	frames    int
	last      gauge.Sample
	hasSample bool
}

// ErrNotConfigured is returned when a required Loop field is missing.
var ErrNotConfigured = errors.New("driver: loop not configured")

func (l *Loop) check() error {
	switch {
	case l.Gauge == nil:
		return fmt.Errorf("%w: no gauge", ErrNotConfigured)
	case l.Slot == nil:
		return fmt.Errorf("%w: no slot", ErrNotConfigured)
	case l.Sink == nil:
		return fmt.Errorf("%w: no sink", ErrNotConfigured)
	}
	return nil
}

// Resize changes the surface offered to the gauge. It takes effect on the
// next Tick.
func (l *Loop) Resize(w, h int) {
	l.Width, l.Height = w, h
}

// Frames returns how many frames have been handed to the sink.
func (l *Loop) Frames() int {
	return l.frames
}

func (l *Loop) layout() {
	if l.dc != nil && l.surfaceW == l.Width && l.surfaceH == l.Height {
		return
	}
	l.surfaceW, l.surfaceH = l.Width, l.Height
	size := l.Gauge.Measure(gauge.ExactSize(max(l.Width, 0), max(l.Height, 0)))
	l.dc = canvas.NewContext(size.Width, size.Height)
	l.Gauge.OnResize(size.Width, size.Height)
	gauge.Logger().Debug("driver: layout", "surface", fmt.Sprintf("%dx%d", l.Width, l.Height), "gauge", size.Width)
}

// Tick consumes at most one sample, renders if the gauge is dirty and passes
// the frame to the sink. It reports whether a frame was produced.
func (l *Loop) Tick(ctx context.Context) (bool, error) {
	if err := l.check(); err != nil {
		return false, err
	}
	l.layout()

	if s, ok := l.Slot.Take(); ok {
		l.Gauge.Apply(s)
		l.last, l.hasSample = s, true
	}
	if !l.Gauge.Dirty() {
		return false, nil
	}

	l.dc.ClearWithColor(l.Background)
	l.Gauge.Render(l.dc)
	if l.Overlay != nil {
		l.Overlay(l.dc.Pixmap(), l.last, l.hasSample)
	}

	l.frames++
	if err := l.Sink.Frame(ctx, l.frames, l.dc.Pixmap()); err != nil {
		return true, fmt.Errorf("driver: frame %d: %w", l.frames, err)
	}
	return true, nil
}

// Run calls Tick every Interval until ctx is canceled or, when frames > 0,
// until that many frames have been produced. It returns the number of frames
// produced by this call. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context, frames int) (int, error) {
	if err := l.check(); err != nil {
		return 0, err
	}
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	log := gauge.Logger()
	log.Info("driver: started", "interval", interval, "frames", frames)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var n int
	for {
		select {
		case <-ctx.Done():
			log.Info("driver: stopped", "frames", n)
			return n, nil
		case <-ticker.C:
			drawn, err := l.Tick(ctx)
			if drawn {
				n++
			}
			if err != nil {
				return n, err
			}
			if frames > 0 && n >= frames {
				log.Info("driver: done", "frames", n)
				return n, nil
			}
		}
	}
}
