package sensor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	gauge "github.com/gogpu/gg-gauge"
)

// ErrMissingColumn is returned by NewReplay when the header lacks a column
// the kind requires.
var ErrMissingColumn = errors.New("sensor: missing column")

// TimestampColumn is the optional header of a nanosecond Unix timestamp.
const TimestampColumn = "timestamp_ns"

// Columns returns the CSV header names carrying the components of kind.
func Columns(kind Kind) [3]string {
	if kind == Rotation {
		return [3]string{"roll", "pitch", "yaw"}
	}
	return [3]string{"accel_x", "accel_y", "accel_z"}
}

// Replay reads samples from a CSV stream with a header row. Unknown columns
// are ignored; column order is free.
type Replay struct {
	r    *csv.Reader
	cols [3]int
	ts   int
	line int
}

// NewReplay reads the header from r and prepares to replay samples of kind.
func NewReplay(r io.Reader, kind Kind) (*Replay, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sensor: empty replay: %w", err)
		}
		return nil, fmt.Errorf("sensor: read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	rp := &Replay{r: cr, ts: -1, line: 1}
	for i, name := range Columns(kind) {
		col, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		rp.cols[i] = col
	}
	if col, ok := index[TimestampColumn]; ok {
		rp.ts = col
	}
	return rp, nil
}

// Next returns the next row as a sample, or io.EOF after the last row.
func (rp *Replay) Next(ctx context.Context) (gauge.Sample, error) {
	if err := ctx.Err(); err != nil {
		return gauge.Sample{}, err
	}
	rec, err := rp.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return gauge.Sample{}, io.EOF
		}
		return gauge.Sample{}, fmt.Errorf("sensor: replay: %w", err)
	}
	line, _ := rp.r.FieldPos(0)
	rp.line = line

	var s gauge.Sample
	for i, col := range rp.cols {
		v, err := parseField(rec, col)
		if err != nil {
			return gauge.Sample{}, fmt.Errorf("sensor: line %d: %w", line, err)
		}
		s.Values[i] = v
	}
	if rp.ts >= 0 && rp.ts < len(rec) && rec[rp.ts] != "" {
		ns, err := strconv.ParseInt(rec[rp.ts], 10, 64)
		if err != nil {
			return gauge.Sample{}, fmt.Errorf("sensor: line %d: %s: %w", line, TimestampColumn, err)
		}
		s.Time = time.Unix(0, ns).UTC()
	}
	return s, nil
}

// Line returns the input line of the last row returned by Next.
func (rp *Replay) Line() int {
	return rp.line
}

func parseField(rec []string, col int) (float64, error) {
	if col >= len(rec) {
		return 0, fmt.Errorf("column %d out of range", col)
	}
	return strconv.ParseFloat(rec[col], 64)
}
