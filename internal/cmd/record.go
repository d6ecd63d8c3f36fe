package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/driver"
	"github.com/gogpu/gg-gauge/internal/snapshot"
	"github.com/gogpu/gg-gauge/sensor"
)

// Record renders frames while a source feeds the gauge.
type Record struct {
	GaugeFlags

	Frames int    `help:"Number of frames to write; 0 runs until interrupted or the input ends" default:"50"`
	Dir    string `help:"Output directory" type:"path" default:"frames"`
	Format string `help:"Image format" enum:"png,tiff" default:"png"`
}

// Run is called by Kong when the record command is executed.
func (c *Record) Run(g *Globals, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.record(ctx, g, logger)
}

func (c *Record) record(ctx context.Context, g *Globals, logger *slog.Logger) error {
	s, err := c.open(g)
	if err != nil {
		return err
	}
	defer s.Close()

	interval := c.Interval
	if interval <= 0 {
		interval = driver.DefaultInterval
	}
	sink := snapshot.DirSink{Dir: c.Dir}
	if c.Format == "tiff" {
		sink.Format = snapshot.TIFF
	}
	slot := &gauge.Slot{}
	loop := s.loop(slot, sink, interval)

	renderCtx, stopRender := context.WithCancel(ctx)
	defer stopRender()
	pumpCtx, stopPump := context.WithCancel(ctx)
	defer stopPump()

	var (
		eg      errgroup.Group
		samples int
		frames  int
	)
	eg.Go(func() error {
		n, err := sensor.Pump(pumpCtx, s.src, slot, interval)
		samples = n
		switch {
		case err != nil:
			stopRender()
		case pumpCtx.Err() == nil:
			// Input ended: give the last sample time to render.
			time.AfterFunc(2*interval, stopRender)
		}
		return err
	})
	eg.Go(func() error {
		defer stopPump()
		n, err := loop.Run(renderCtx, c.Frames)
		frames = n
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	logger.Info("recording finished", "kind", s.kind, "dir", c.Dir, "frames", frames, "samples", samples)
	return nil
}
