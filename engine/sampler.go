package engine

import (
	"sync"

	"github.com/ftahirops/irqtop/collector"
	"github.com/ftahirops/irqtop/model"
)

// Sampler owns the snapshot source and the one previous snapshot a rate
// computation needs. Nothing older is retained.
type Sampler struct {
	src  collector.Source
	prev *model.Snapshot
	mu   sync.Mutex // serializes Tick; UI commands run in their own goroutine
}

// NewSampler creates a sampler over the given source.
func NewSampler(src collector.Source) *Sampler {
	return &Sampler{src: src}
}

// CPUs returns the CPU column count of the most recent snapshot.
func (s *Sampler) CPUs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prev == nil {
		return 0
	}
	return s.prev.CPUs
}

// Tick reads a fresh snapshot and diffs it against the previous one.
// The first call establishes the baseline and returns no rows: there is
// no dt to divide by yet. A read failure leaves the previous snapshot in
// place so the next tick can still produce rates. ErrInvalidInterval
// replaces the baseline but yields no rows for this tick.
func (s *Sampler) Tick() ([]model.RateRow, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.src.Read()
	if err != nil {
		return nil, 0, err
	}

	prev := s.prev
	s.prev = snap
	if prev == nil {
		return nil, snap.CPUs, nil
	}
	rows, err := ComputeRates(prev, snap)
	if err != nil {
		return nil, snap.CPUs, err
	}
	return rows, snap.CPUs, nil
}
