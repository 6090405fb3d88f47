package model

import "time"

// Snapshot holds one full reading of the interrupt counters at a point in
// time. It is immutable once produced by a collector.
type Snapshot struct {
	Timestamp time.Time
	CPUs      int // CPU column count from the source header
	IRQs      map[string]IRQCounters
}

// IRQCounters holds the raw cumulative counters for one interrupt source.
type IRQCounters struct {
	PerCPU []uint64
	Device string // trailing description, e.g. "IR-PCI-MSI 512000-edge eno1"
}

// Total sums the per-CPU counters.
func (c IRQCounters) Total() uint64 {
	var t uint64
	for _, v := range c.PerCPU {
		t += v
	}
	return t
}

// RateRow is the per-IRQ result of diffing two snapshots: interrupts per
// second, total and per CPU. Total equals the sum of PerCPU.
type RateRow struct {
	ID     string
	Device string
	Total  float64
	PerCPU []float64
}
