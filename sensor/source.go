// Package sensor produces gauge samples: a synthetic generator for demos and
// a CSV replay of recorded sessions, plus Pump, which feeds a source into a
// gauge.Slot on a fixed cadence.
package sensor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gauge "github.com/gogpu/gg-gauge"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("sensor: unknown kind")

// Kind selects which physical quantity a stream carries.
type Kind uint8

const (
	// Acceleration samples carry x, y, z in m/s².
	Acceleration Kind = iota
	// Rotation samples carry roll, pitch, yaw in radians.
	Rotation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Acceleration:
		return "acceleration"
	case Rotation:
		return "rotation"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind parses "acceleration" or "rotation" (case-insensitive; "accel"
// and "rot" are accepted).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "acceleration", "accel":
		return Acceleration, nil
	case "rotation", "rot":
		return Rotation, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Labels returns the component names of a sample of this kind.
func (k Kind) Labels() []string {
	if k == Rotation {
		return []string{"roll", "pitch", "yaw"}
	}
	return []string{"x", "y", "z"}
}

// Unit returns the unit of the sample components.
func (k Kind) Unit() string {
	if k == Rotation {
		return "rad"
	}
	return "m/s²"
}

// Source yields samples one at a time. Next returns io.EOF when the stream
// is exhausted.
type Source interface {
	Next(ctx context.Context) (gauge.Sample, error)
}
