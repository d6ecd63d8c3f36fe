package cmd

import (
	"context"
	"fmt"
	"log/slog"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/canvas"
	"github.com/gogpu/gg-gauge/driver"
	"github.com/gogpu/gg-gauge/internal/snapshot"
)

// Snapshot renders a single frame.
type Snapshot struct {
	GaugeFlags

	Values []float64 `help:"Sample to draw as three comma-separated values; the first source sample when empty" sep:","`
	Output string    `short:"o" help:"Output file (.png, .tif, .tiff) or - for stdout" default:"gauge.png"`
}

// Run is called by Kong when the snapshot command is executed.
func (c *Snapshot) Run(g *Globals, logger *slog.Logger) error {
	if _, err := snapshot.FormatFromPath(c.Output); err != nil {
		return err
	}
	ctx := context.Background()
	s, err := c.open(g)
	if err != nil {
		return err
	}
	defer s.Close()

	var sample gauge.Sample
	switch len(c.Values) {
	case 0:
		if sample, err = s.src.Next(ctx); err != nil {
			return fmt.Errorf("read sample: %w", err)
		}
	case 3:
		copy(sample.Values[:], c.Values)
	default:
		return fmt.Errorf("--values needs 3 components, got %d", len(c.Values))
	}

	slot := &gauge.Slot{}
	slot.Store(sample)
	loop := s.loop(slot, driver.SinkFunc(func(_ context.Context, _ int, pm *canvas.Pixmap) error {
		return snapshot.WriteFile(c.Output, pm)
	}), c.Interval)
	if _, err := loop.Tick(ctx); err != nil {
		return err
	}
	logger.Info("snapshot written", "kind", s.kind, "file", c.Output, "values", sample.Values)
	return nil
}
