package gauge

import (
	"sync"
	"testing"
	"time"
)

func TestSlotEmpty(t *testing.T) {
	var s Slot
	if _, ok := s.Load(); ok {
		t.Error("Load() on empty slot reported a sample")
	}
	if _, ok := s.Take(); ok {
		t.Error("Take() on empty slot reported a sample")
	}
}

func TestSlotLastWriteWins(t *testing.T) {
	var s Slot
	s.Store(Sample{Values: [3]float64{1}})
	s.Store(Sample{Values: [3]float64{2}})
	s.Store(Sample{Values: [3]float64{3}})

	got, ok := s.Take()
	if !ok || got.Values[0] != 3 {
		t.Errorf("Take() = %v, %v; want latest sample", got, ok)
	}
	if _, ok := s.Take(); ok {
		t.Error("second Take() without a new Store should report nothing")
	}
	if got, ok := s.Load(); !ok || got.Values[0] != 3 {
		t.Errorf("Load() after Take = %v, %v; want the latest sample", got, ok)
	}
	if s.Stored() != 3 {
		t.Errorf("Stored() = %d, want 3", s.Stored())
	}
}

func TestSlotStoreCopies(t *testing.T) {
	var s Slot
	v := Sample{Values: [3]float64{1, 2, 3}, Time: time.Unix(10, 0)}
	s.Store(v)
	v.Values[0] = 99

	got, _ := s.Load()
	if got.Values[0] != 1 {
		t.Errorf("slot aliases the caller's sample: %v", got.Values)
	}
}

func TestSlotConcurrent(t *testing.T) {
	var s Slot
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			s.Store(Sample{Values: [3]float64{float64(i)}})
		}
	}()

	last := -1.0
	for range 1000 {
		if v, ok := s.Take(); ok {
			if v.Values[0] < last {
				t.Fatalf("Take went backwards: %v after %v", v.Values[0], last)
			}
			last = v.Values[0]
		}
	}
	wg.Wait()

	if s.Stored() != 1000 {
		t.Errorf("Stored() = %d, want 1000", s.Stored())
	}
}
