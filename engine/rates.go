// Package engine turns pairs of interrupt snapshots into per-second rates
// and orders them under the live view policy.
package engine

import (
	"errors"

	"github.com/ftahirops/irqtop/model"
	"github.com/ftahirops/irqtop/util"
)

// ErrInvalidInterval means the two snapshots are not separated by positive
// time (clock step or duplicated read). The pair is discarded and the
// caller resamples.
var ErrInvalidInterval = errors.New("non-positive interval between snapshots")

// ComputeRates diffs two snapshots into one rate row per IRQ present in
// curr. An IRQ absent from prev counts from zero; an IRQ that disappeared
// emits no row. A counter that decreased (wrap or device reset) yields a
// zero delta, never a negative rate. Pure: neither snapshot is mutated.
func ComputeRates(prev, curr *model.Snapshot) ([]model.RateRow, error) {
	dt := curr.Timestamp.Sub(prev.Timestamp)
	if dt <= 0 {
		return nil, ErrInvalidInterval
	}

	rows := make([]model.RateRow, 0, len(curr.IRQs))
	for id, c := range curr.IRQs {
		p := prev.IRQs[id] // zero value: first-seen IRQ counts from zero
		row := model.RateRow{
			ID:     id,
			Device: c.Device,
			PerCPU: make([]float64, len(c.PerCPU)),
		}
		for i, cv := range c.PerCPU {
			var pv uint64
			if i < len(p.PerCPU) {
				pv = p.PerCPU[i]
			}
			r := util.Rate(pv, cv, dt)
			row.PerCPU[i] = r
			row.Total += r
		}
		rows = append(rows, row)
	}
	return rows, nil
}
