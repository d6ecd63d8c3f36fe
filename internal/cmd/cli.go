// Package cmd implements the gauges command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/canvas"
	"github.com/gogpu/gg-gauge/config"
	"github.com/gogpu/gg-gauge/driver"
	"github.com/gogpu/gg-gauge/internal/configpaths"
	"github.com/gogpu/gg-gauge/readout"
	"github.com/gogpu/gg-gauge/sensor"
)

// LogFlags configure logging.
type LogFlags struct {
	Level string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"GAUGES_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"GAUGES_LOG_FILE"`
}

// Globals are the flags shared by every command.
type Globals struct {
	Log         LogFlags `embed:"" prefix:"log."`
	Preferences string   `help:"Preferences file (yaml or toml); searched in the working and config directories when empty" type:"path" env:"GAUGES_PREFERENCES"`
	Config      string   `help:"File with flag defaults (json, yaml or toml)" type:"path" env:"GAUGES_CONFIG"`
}

// CLI is the root command.
type CLI struct {
	Globals

	Snapshot Snapshot `cmd:"" help:"Render one frame to a PNG or TIFF file"`
	Record   Record   `cmd:"" help:"Render a sequence of frames into a directory"`
	View     View     `cmd:"" help:"Show a live gauge in a window"`
	Prefs    Prefs    `cmd:"" help:"Manage preferences"`
}

// LoadPreferences reads the preferences file named by --preferences or, when
// empty, the first one found on disk. It returns the defaults when there is
// none, along with the path used.
func (g *Globals) LoadPreferences() (config.Config, string, error) {
	path := g.Preferences
	if path == "" {
		path = configpaths.FindPreferences()
	}
	if path == "" {
		return config.Default(), "", nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, path, err
	}
	return cfg, path, nil
}

// GaugeFlags select the gauge and its sample source.
type GaugeFlags struct {
	Kind     string        `arg:"" enum:"acceleration,rotation" help:"Gauge to draw: acceleration or rotation"`
	Size     int           `help:"Surface edge in pixels; 0 uses the preferred size" default:"0"`
	Input    string        `help:"CSV recording to replay; synthetic motion when empty" type:"path"`
	Interval time.Duration `help:"Sample and frame interval" default:"20ms"`
	Readout  bool          `help:"Draw the numeric readout" default:"true" negatable:""`
}

// session is everything a command needs to drive one gauge.
type session struct {
	kind       sensor.Kind
	prefs      config.Config
	inst       gauge.Instrument
	size       int
	background canvas.RGBA
	overlay    driver.Overlay
	src        sensor.Source
	closers    []io.Closer
}

func (s *session) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func (f *GaugeFlags) open(g *Globals) (*session, error) {
	kind, err := sensor.ParseKind(f.Kind)
	if err != nil {
		return nil, err
	}
	prefs, _, err := g.LoadPreferences()
	if err != nil {
		return nil, err
	}
	opts, err := prefs.Options()
	if err != nil {
		return nil, err
	}
	pal, _ := prefs.GaugePalette()

	s := &session{
		kind:       kind,
		prefs:      prefs,
		size:       f.Size,
		background: pal.Background,
	}
	if s.size <= 0 {
		s.size = prefs.PreferredSize
	}
	switch kind {
	case sensor.Rotation:
		s.inst = gauge.NewRotationGauge(opts...)
	default:
		s.inst = gauge.NewAccelerationGauge(opts...)
	}

	if f.Input == "" {
		s.src = sensor.NewSynthetic(kind, f.Interval)
	} else {
		file, err := os.Open(f.Input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		s.closers = append(s.closers, file)
		rp, err := sensor.NewReplay(file, kind)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.src = rp
	}

	if f.Readout {
		tag, err := readout.ParseLocale(prefs.Locale)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		r := readout.New(readout.WithLocale(tag), readout.WithColor(pal.Rim), readout.WithAlign(readout.AlignCenter))
		s.closers = append(s.closers, r)
		labels, unit := kind.Labels(), kind.Unit()
		s.overlay = func(pm *canvas.Pixmap, smp gauge.Sample, ok bool) {
			if ok {
				r.Draw(pm, labels, smp.Values[:], unit)
			}
		}
	}
	return s, nil
}

func (s *session) loop(slot *gauge.Slot, sink driver.Sink, interval time.Duration) *driver.Loop {
	return &driver.Loop{
		Gauge:      s.inst,
		Slot:       slot,
		Sink:       sink,
		Interval:   interval,
		Width:      s.size,
		Height:     s.size,
		Background: s.background,
		Overlay:    s.overlay,
	}
}
