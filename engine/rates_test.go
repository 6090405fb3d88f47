package engine

import (
	"math"
	"testing"
	"time"

	"github.com/ftahirops/irqtop/model"
)

func snapAt(t time.Time, irqs map[string]model.IRQCounters) *model.Snapshot {
	cpus := 0
	for _, c := range irqs {
		if len(c.PerCPU) > cpus {
			cpus = len(c.PerCPU)
		}
	}
	return &model.Snapshot{Timestamp: t, CPUs: cpus, IRQs: irqs}
}

func findRow(t *testing.T, rows []model.RateRow, id string) model.RateRow {
	t.Helper()
	for _, r := range rows {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("no row for IRQ %q in %v", id, rows)
	return model.RateRow{}
}

func TestComputeRates(t *testing.T) {
	t0 := time.Now()
	t1 := t0.Add(time.Second)

	prev := snapAt(t0, map[string]model.IRQCounters{
		"16": {PerCPU: []uint64{100, 50}, Device: "ehci_hcd:usb1"},
	})
	curr := snapAt(t1, map[string]model.IRQCounters{
		"16": {PerCPU: []uint64{140, 50}, Device: "ehci_hcd:usb1"},
	})

	rows, err := ComputeRates(prev, curr)
	if err != nil {
		t.Fatalf("ComputeRates: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := rows[0]
	if r.Total != 40.0 {
		t.Errorf("total = %v, want 40.0", r.Total)
	}
	if len(r.PerCPU) != 2 || r.PerCPU[0] != 40.0 || r.PerCPU[1] != 0.0 {
		t.Errorf("per-cpu = %v, want [40 0]", r.PerCPU)
	}
}

func TestComputeRatesCounterWrap(t *testing.T) {
	t0 := time.Now()
	prev := snapAt(t0, map[string]model.IRQCounters{"9": {PerCPU: []uint64{100}}})
	curr := snapAt(t0.Add(time.Second), map[string]model.IRQCounters{"9": {PerCPU: []uint64{90}}})

	rows, err := ComputeRates(prev, curr)
	if err != nil {
		t.Fatalf("ComputeRates: %v", err)
	}
	r := findRow(t, rows, "9")
	if r.PerCPU[0] != 0.0 || r.Total != 0.0 {
		t.Errorf("wrapped counter produced rate %v (total %v), want 0", r.PerCPU[0], r.Total)
	}
}

func TestComputeRatesInvalidInterval(t *testing.T) {
	t0 := time.Now()
	for _, dt := range []time.Duration{0, -time.Second} {
		prev := snapAt(t0, map[string]model.IRQCounters{"1": {PerCPU: []uint64{1}}})
		curr := snapAt(t0.Add(dt), map[string]model.IRQCounters{"1": {PerCPU: []uint64{2}}})
		if _, err := ComputeRates(prev, curr); err != ErrInvalidInterval {
			t.Errorf("dt=%v: err = %v, want ErrInvalidInterval", dt, err)
		}
	}
}

func TestComputeRatesIRQChurn(t *testing.T) {
	t0 := time.Now()
	prev := snapAt(t0, map[string]model.IRQCounters{
		"old": {PerCPU: []uint64{5}},
	})
	curr := snapAt(t0.Add(2*time.Second), map[string]model.IRQCounters{
		"new": {PerCPU: []uint64{10}, Device: "fresh device"},
	})

	rows, err := ComputeRates(prev, curr)
	if err != nil {
		t.Fatalf("ComputeRates: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (removed IRQ must be dropped)", len(rows))
	}
	// First seen: counts from zero.
	r := findRow(t, rows, "new")
	if r.Total != 5.0 {
		t.Errorf("first-seen total = %v, want 5.0", r.Total)
	}
}

func TestComputeRatesCPUAppears(t *testing.T) {
	t0 := time.Now()
	prev := snapAt(t0, map[string]model.IRQCounters{"3": {PerCPU: []uint64{10}}})
	curr := snapAt(t0.Add(time.Second), map[string]model.IRQCounters{"3": {PerCPU: []uint64{12, 8}}})

	rows, err := ComputeRates(prev, curr)
	if err != nil {
		t.Fatalf("ComputeRates: %v", err)
	}
	r := findRow(t, rows, "3")
	if r.PerCPU[0] != 2.0 || r.PerCPU[1] != 8.0 {
		t.Errorf("per-cpu = %v, want [2 8]", r.PerCPU)
	}
}

func TestTotalEqualsPerCPUSum(t *testing.T) {
	t0 := time.Now()
	prev := snapAt(t0, map[string]model.IRQCounters{
		"a": {PerCPU: []uint64{1, 2, 3, 4}},
		"b": {PerCPU: []uint64{100, 0, 50, 7}},
	})
	curr := snapAt(t0.Add(1500*time.Millisecond), map[string]model.IRQCounters{
		"a": {PerCPU: []uint64{10, 2, 9, 4}},
		"b": {PerCPU: []uint64{90, 3, 50, 700}}, // one wrapped column
	})

	rows, err := ComputeRates(prev, curr)
	if err != nil {
		t.Fatalf("ComputeRates: %v", err)
	}
	for _, r := range rows {
		var sum float64
		for _, v := range r.PerCPU {
			if v < 0 {
				t.Errorf("IRQ %s: negative rate %v", r.ID, v)
			}
			sum += v
		}
		if math.Abs(sum-r.Total) > 1e-9 {
			t.Errorf("IRQ %s: total %v != sum %v", r.ID, r.Total, sum)
		}
	}
}
