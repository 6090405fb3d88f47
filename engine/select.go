package engine

import (
	"sort"
	"strings"

	"github.com/ftahirops/irqtop/model"
)

// Select applies the policy's filter and sort to the rate rows, returning a
// fresh slice. A row is kept when there is no filter or the regex matches
// its ID or device description.
func Select(rows []model.RateRow, pol *model.ViewPolicy) []model.RateRow {
	out := make([]model.RateRow, 0, len(rows))
	for _, r := range rows {
		if pol.Filter == nil || pol.Filter.MatchString(r.ID) || pol.Filter.MatchString(r.Device) {
			out = append(out, r)
		}
	}

	less := func(a, b model.RateRow) bool {
		var c int
		switch pol.Sort {
		case model.SortName:
			c = strings.Compare(sortableID(a.ID), sortableID(b.ID))
		case model.SortDevice:
			c = strings.Compare(a.Device, b.Device)
		default:
			switch {
			case a.Total < b.Total:
				c = -1
			case a.Total > b.Total:
				c = 1
			}
		}
		if c == 0 {
			c = strings.Compare(sortableID(a.ID), sortableID(b.ID))
		}
		if pol.SortDesc {
			return c > 0
		}
		return c < 0
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// sortableID zero-pads purely numeric IRQ IDs so that "9" orders before
// "10" and numeric IRQs group ahead of symbolic ones (LOC, NMI, ...).
func sortableID(id string) string {
	if id == "" {
		return id
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return id
		}
	}
	if len(id) >= 10 {
		return id
	}
	return strings.Repeat("0", 10-len(id)) + id
}
