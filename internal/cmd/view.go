package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/integration/ebitengauge"
	"github.com/gogpu/gg-gauge/sensor"
)

// View opens a window with a live gauge.
type View struct {
	GaugeFlags

	Title string `help:"Window title; defaults to the gauge kind"`
}

// Run is called by Kong when the view command is executed.
func (c *View) Run(g *Globals, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := c.open(g)
	if err != nil {
		return err
	}
	defer s.Close()

	slot := &gauge.Slot{}
	go func() {
		if _, err := sensor.Pump(ctx, s.src, slot, c.Interval); err != nil {
			logger.Error("sample source failed", "error", err)
		}
	}()

	game := ebitengauge.New(s.inst, slot)
	game.SetBackground(s.background)
	game.SetOverlay(s.overlay)

	title := c.Title
	if title == "" {
		title = s.kind.String()
	}
	return ebitengauge.Run(title, s.size, game)
}
