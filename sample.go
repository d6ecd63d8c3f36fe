package gauge

import (
	"sync/atomic"
	"time"
)

// Sample is one sensor reading. Acceleration samples carry x, y, z in m/s²;
// rotation samples carry roll, pitch, yaw in radians.
type Sample struct {
	Values [3]float64
	Time   time.Time
}

// Slot holds the latest Sample. A producer goroutine calls Store as samples
// arrive and the render goroutine calls Take once per tick; samples stored
// between two ticks overwrite each other.
//
// The zero value is an empty slot. Slot is safe for concurrent use.
type Slot struct {
	latest atomic.Pointer[Sample]
	fresh  atomic.Bool
	stored atomic.Uint64
}

// Store replaces the held sample.
func (s *Slot) Store(v Sample) {
	s.latest.Store(&v)
	s.stored.Add(1)
	s.fresh.Store(true)
}

// Load returns the latest sample without consuming it.
func (s *Slot) Load() (Sample, bool) {
	p := s.latest.Load()
	if p == nil {
		return Sample{}, false
	}
	return *p, true
}

// Take returns the latest sample if one arrived since the previous Take.
func (s *Slot) Take() (Sample, bool) {
	if !s.fresh.Swap(false) {
		return Sample{}, false
	}
	return s.Load()
}

// Stored returns how many samples have been stored in total.
func (s *Slot) Stored() uint64 {
	return s.stored.Load()
}
