package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/ftahirops/irqtop/model"
)

// fakeSource replays queued snapshots (or errors) in order.
type fakeSource struct {
	snaps []*model.Snapshot
	errs  []error
	n     int
}

func (f *fakeSource) Read() (*model.Snapshot, error) {
	i := f.n
	f.n++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	return f.snaps[i], nil
}

func TestSamplerBaselineThenRates(t *testing.T) {
	t0 := time.Now()
	src := &fakeSource{snaps: []*model.Snapshot{
		snapAt(t0, map[string]model.IRQCounters{"16": {PerCPU: []uint64{100}}}),
		snapAt(t0.Add(time.Second), map[string]model.IRQCounters{"16": {PerCPU: []uint64{150}}}),
	}}
	s := NewSampler(src)

	rows, cpus, err := s.Tick()
	if err != nil {
		t.Fatalf("baseline tick: %v", err)
	}
	if rows != nil {
		t.Fatalf("baseline tick returned rows %v, want nil", rows)
	}
	if cpus != 1 {
		t.Errorf("cpus = %d, want 1", cpus)
	}

	rows, _, err = s.Tick()
	if err != nil {
		t.Fatalf("second tick: %v", err)
	}
	if len(rows) != 1 || rows[0].Total != 50.0 {
		t.Errorf("second tick rows = %v, want one row with total 50", rows)
	}
}

func TestSamplerReadFailureKeepsBaseline(t *testing.T) {
	t0 := time.Now()
	boom := errors.New("proc went away")
	src := &fakeSource{
		snaps: []*model.Snapshot{
			snapAt(t0, map[string]model.IRQCounters{"1": {PerCPU: []uint64{10}}}),
			nil,
			snapAt(t0.Add(2*time.Second), map[string]model.IRQCounters{"1": {PerCPU: []uint64{30}}}),
		},
		errs: []error{nil, boom, nil},
	}
	s := NewSampler(src)

	if _, _, err := s.Tick(); err != nil {
		t.Fatalf("baseline tick: %v", err)
	}
	if _, _, err := s.Tick(); !errors.Is(err, boom) {
		t.Fatalf("failed tick err = %v, want %v", err, boom)
	}
	// The baseline must survive the failure so the next read still rates.
	rows, _, err := s.Tick()
	if err != nil {
		t.Fatalf("recovery tick: %v", err)
	}
	if len(rows) != 1 || rows[0].Total != 10.0 {
		t.Errorf("recovery rows = %v, want one row with total 10 (20 over 2s)", rows)
	}
}

func TestSamplerInvalidInterval(t *testing.T) {
	t0 := time.Now()
	src := &fakeSource{snaps: []*model.Snapshot{
		snapAt(t0, map[string]model.IRQCounters{"1": {PerCPU: []uint64{10}}}),
		snapAt(t0, map[string]model.IRQCounters{"1": {PerCPU: []uint64{20}}}), // same timestamp
		snapAt(t0.Add(time.Second), map[string]model.IRQCounters{"1": {PerCPU: []uint64{25}}}),
	}}
	s := NewSampler(src)

	s.Tick()
	if _, _, err := s.Tick(); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("err = %v, want ErrInvalidInterval", err)
	}
	// The second snapshot replaced the baseline; the third read rates
	// against it.
	rows, _, err := s.Tick()
	if err != nil {
		t.Fatalf("third tick: %v", err)
	}
	if len(rows) != 1 || rows[0].Total != 5.0 {
		t.Errorf("rows = %v, want one row with total 5", rows)
	}
}
