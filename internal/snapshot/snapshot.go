// Package snapshot writes rendered frames as PNG or TIFF images.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
	"golang.org/x/term"

	"github.com/gogpu/gg-gauge/canvas"
)

var (
	// ErrTerminal is returned when image bytes would be written to a terminal.
	ErrTerminal = errors.New("snapshot: refusing to write image data to a terminal")
	// ErrUnsupportedFormat is returned for extensions other than .png and .tif(f).
	ErrUnsupportedFormat = errors.New("snapshot: unsupported image format")
)

// Format is an image encoding.
type Format uint8

const (
	PNG Format = iota
	TIFF
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	if f == TIFF {
		return ".tiff"
	}
	return ".png"
}

// FormatFromPath picks the format from the extension of path. An empty path
// or "-" (stdout) means PNG.
func FormatFromPath(path string) (Format, error) {
	if path == "" || path == "-" {
		return PNG, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return PNG, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes pm to w.
func Encode(w io.Writer, pm *canvas.Pixmap, f Format) error {
	switch f {
	case PNG:
		return pm.EncodePNG(w)
	case TIFF:
		return tiff.Encode(w, pm.Image(), &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

// WriteFile encodes pm into path, choosing the format by extension. A path of
// "-" writes PNG to stdout unless stdout is a terminal.
func WriteFile(path string, pm *canvas.Pixmap) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if path == "-" {
		return WriteStream(os.Stdout, pm, f)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Encode(out, pm, f); err != nil {
		_ = out.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return out.Close()
}

// WriteStream encodes pm to out, refusing when out is a terminal.
func WriteStream(out *os.File, pm *canvas.Pixmap, f Format) error {
	if term.IsTerminal(int(out.Fd())) {
		return ErrTerminal
	}
	return Encode(out, pm, f)
}

// DirSink writes each frame to a numbered file in Dir, such as
// "frame-00001.png". It implements driver.Sink.
type DirSink struct {
	Dir    string
	Prefix string // default "frame-"
	Format Format
}

// Path returns the file name of frame n.
func (d DirSink) Path(n int) string {
	prefix := d.Prefix
	if prefix == "" {
		prefix = "frame-"
	}
	return filepath.Join(d.Dir, fmt.Sprintf("%s%05d%s", prefix, n, d.Format.Ext()))
}

// Frame writes pm as frame n.
func (d DirSink) Frame(ctx context.Context, n int, pm *canvas.Pixmap) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return WriteFile(d.Path(n), pm)
}
