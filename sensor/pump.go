package sensor

import (
	"context"
	"errors"
	"io"
	"time"

	gauge "github.com/gogpu/gg-gauge"
)

// DefaultInterval is the sample cadence used when none is given.
const DefaultInterval = 20 * time.Millisecond

// Pump reads src once per interval and stores each sample in slot until ctx
// is canceled or src returns io.EOF. It returns how many samples were stored.
// Cancellation and EOF are not errors.
//
// Pump is meant to run on its own goroutine; slot is the only state it shares
// with the render goroutine.
func Pump(ctx context.Context, src Source, slot *gauge.Slot, interval time.Duration) (int, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	log := gauge.Logger()
	log.Info("sensor: pump started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var n int
	for {
		select {
		case <-ctx.Done():
			log.Info("sensor: pump stopped", "produced", n)
			return n, nil
		case <-ticker.C:
			s, err := src.Next(ctx)
			switch {
			case errors.Is(err, io.EOF):
				log.Info("sensor: source exhausted", "produced", n)
				return n, nil
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				log.Info("sensor: pump stopped", "produced", n)
				return n, nil
			case err != nil:
				log.Warn("sensor: source failed", "produced", n, "error", err)
				return n, err
			}
			if s.Time.IsZero() {
				s.Time = time.Now()
			}
			slot.Store(s)
			n++
		}
	}
}
