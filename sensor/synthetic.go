package sensor

import (
	"context"
	"math"
	"time"

	gauge "github.com/gogpu/gg-gauge"
)

// Synthetic generates smooth periodic samples for demos and tests. It never
// ends. Time advances by a fixed step per sample, so output is deterministic.
type Synthetic struct {
	kind  Kind
	step  time.Duration
	start time.Time
	t     time.Duration
}

// NewSynthetic returns a generator that advances by step per sample.
// A non-positive step defaults to 20ms.
func NewSynthetic(kind Kind, step time.Duration) *Synthetic {
	if step <= 0 {
		step = 20 * time.Millisecond
	}
	return &Synthetic{
		kind:  kind,
		step:  step,
		start: time.Unix(0, 0).UTC(),
	}
}

// Next returns the sample at the current time and advances the clock.
func (s *Synthetic) Next(ctx context.Context) (gauge.Sample, error) {
	if err := ctx.Err(); err != nil {
		return gauge.Sample{}, err
	}
	sec := s.t.Seconds()
	sample := gauge.Sample{Time: s.start.Add(s.t)}
	switch s.kind {
	case Rotation:
		sample.Values = [3]float64{
			0.3 * math.Sin(2*math.Pi*sec/7),
			0.5 * math.Sin(2*math.Pi*sec/5),
			2 * math.Pi * sec / 20,
		}
	default:
		// Sweeps a little past full scale so clamping shows.
		const amp = 1.2 * gauge.StandardGravity
		sample.Values = [3]float64{
			amp * math.Sin(2*math.Pi*sec/4),
			amp * math.Sin(2*math.Pi*sec/6),
			gauge.StandardGravity * math.Cos(2*math.Pi*sec/12),
		}
	}
	s.t += s.step
	return sample, nil
}
