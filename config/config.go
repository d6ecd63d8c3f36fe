// Package config loads and saves gauge preferences as YAML or TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/canvas"
	"github.com/gogpu/gg-gauge/internal/configpaths"
)

// ErrUnsupportedFormat is returned for file formats other than YAML and TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid preferences")

// Format names.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Palette holds hex colors ("#rrggbb" or "#rrggbbaa"). Empty entries keep the
// default color.
type Palette struct {
	Rim        string `yaml:"rim" toml:"rim"`
	Point      string `yaml:"point" toml:"point"`
	Sky        string `yaml:"sky" toml:"sky"`
	Background string `yaml:"background" toml:"background"`
}

// Config holds user preferences for the gauges.
type Config struct {
	// FullScale is the clamping magnitude of the acceleration gauge, m/s².
	FullScale float64 `yaml:"full_scale" toml:"full_scale"`
	// PreferredSize is the gauge edge in pixels when unconstrained.
	PreferredSize int `yaml:"preferred_size" toml:"preferred_size"`
	// Locale is a BCP 47 tag for readout number formatting.
	Locale  string  `yaml:"locale" toml:"locale"`
	Palette Palette `yaml:"palette" toml:"palette"`
}

// Default returns the built-in preferences.
func Default() Config {
	p := gauge.DefaultPalette()
	return Config{
		FullScale:     gauge.StandardGravity,
		PreferredSize: gauge.DefaultPreferredSize,
		Locale:        "en",
		Palette: Palette{
			Rim:        p.Rim.Hex(),
			Point:      p.Point.Hex(),
			Sky:        p.Sky.Hex(),
			Background: p.Background.Hex(),
		},
	}
}

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	return normalizeFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

func normalizeFormat(f string) (string, error) {
	switch strings.ToLower(f) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Load reads preferences from path. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Decode reads preferences in the given format on top of Default.
func Decode(r io.Reader, format string) (Config, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return Config{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read: %w", err)
	}

	c := Default()
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	case FormatTOML:
		err = toml.Unmarshal(data, &c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Encode writes c in the given format.
func Encode(w io.Writer, c Config, format string) error {
	format, err := normalizeFormat(format)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(c); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case FormatTOML:
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("config: encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// Save writes c to path, creating parent directories. The format follows the
// file extension.
func Save(path string, c Config) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := configpaths.EnsureDir(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, c, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	if !(c.FullScale > 0) || math.IsInf(c.FullScale, 1) {
		return fmt.Errorf("%w: full_scale must be positive and finite, got %v", ErrInvalid, c.FullScale)
	}
	if c.PreferredSize <= 0 {
		return fmt.Errorf("%w: preferred_size must be positive, got %d", ErrInvalid, c.PreferredSize)
	}
	if _, err := c.GaugePalette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// GaugePalette parses the palette colors. Empty entries take the default.
func (c Config) GaugePalette() (gauge.Palette, error) {
	p := gauge.DefaultPalette()
	for _, e := range []struct {
		name string
		hex  string
		dst  *canvas.RGBA
	}{
		{"rim", c.Palette.Rim, &p.Rim},
		{"point", c.Palette.Point, &p.Point},
		{"sky", c.Palette.Sky, &p.Sky},
		{"background", c.Palette.Background, &p.Background},
	} {
		if e.hex == "" {
			continue
		}
		col, err := canvas.ParseHex(e.hex)
		if err != nil {
			return gauge.Palette{}, fmt.Errorf("palette.%s: %w", e.name, err)
		}
		*e.dst = col
	}
	return p, nil
}

// Options converts the preferences into gauge constructor options.
func (c Config) Options() ([]gauge.Option, error) {
	p, err := c.GaugePalette()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []gauge.Option{
		gauge.WithPalette(p),
		gauge.WithFullScale(c.FullScale),
		gauge.WithPreferredSize(c.PreferredSize),
	}, nil
}
