package ui

import (
	"strconv"

	"github.com/ftahirops/irqtop/model"
)

// chromeLines is what the screen spends outside the table rows: the title
// line, the column header, and the footer (prompt/status/help).
const chromeLines = 3

// minFitDeviceWidth is the narrowest device column worth appending in
// fit-if-room mode; below this the column is dropped entirely.
const minFitDeviceWidth = 6

// Minimum column widths, sized to the header labels.
const (
	minIDWidth    = 3 // "IRQ"
	minTotalWidth = 5 // "TOTAL"
	minCellWidth  = 5 // "CPU99", typical rate widths
)

// Layout fits the selected rows into the terminal. A negative width or
// height means unbounded (not attached to a terminal): everything renders
// in full. A height of zero is a real, zero-row budget, not an error.
//
// Priority order: the ID column always renders (it may overflow a pathological
// width); the TOTAL column is placed next when enabled; CPU columns fill the
// remaining width in ascending index order and are only included whole, so
// they shrink from the highest index down; the device column either forces
// itself in ahead of CPU columns (show), never appears (hide), or takes
// whatever is left (auto).
func Layout(rows []model.RateRow, pol *model.ViewPolicy, width, height, totalCPUs int) model.RenderPlan {
	if height >= 0 {
		budget := height - chromeLines
		if budget < 0 {
			budget = 0
		}
		if len(rows) > budget {
			rows = rows[:budget]
		}
	}

	cpus := pol.CPUs.Candidates(totalCPUs)

	plan := model.RenderPlan{
		ShowTotal:  pol.ShowTotal,
		IDWidth:    minIDWidth,
		TotalWidth: minTotalWidth,
		CellWidth:  minCellWidth,
		Rows:       rows,
	}
	deviceMax := 0
	for _, r := range rows {
		if n := len(r.ID); n > plan.IDWidth {
			plan.IDWidth = n
		}
		if n := len(FormatRate(r.Total)); n > plan.TotalWidth {
			plan.TotalWidth = n
		}
		for _, i := range cpus {
			if i < len(r.PerCPU) {
				if n := len(FormatRate(r.PerCPU[i])); n > plan.CellWidth {
					plan.CellWidth = n
				}
			}
		}
		if n := len(r.Device); n > deviceMax {
			deviceMax = n
		}
	}
	for _, i := range cpus {
		if n := len(cpuLabel(i)); n > plan.CellWidth {
			plan.CellWidth = n
		}
	}

	if width < 0 {
		plan.CPUs = cpus
		if pol.Device != model.DeviceHide {
			plan.DeviceWidth = deviceMax
		}
		return plan
	}

	// Mandatory width: ID column, plus the fixed TOTAL column when enabled.
	left := plan.IDWidth
	if pol.ShowTotal {
		left += plan.TotalWidth + 1
	}

	// A forced device column reserves up to a third of the screen before
	// CPU columns get to negotiate.
	reserve := deviceMax
	if reserve > width/3 {
		reserve = width / 3
	}
	if pol.Device == model.DeviceShow {
		left += reserve
	}

	if left > width {
		cpus = nil
	} else {
		room := (width - left) / (plan.CellWidth + 1)
		if room < len(cpus) {
			cpus = cpus[:room]
		}
		left += len(cpus) * (plan.CellWidth + 1)
	}
	if pol.Device == model.DeviceShow {
		left -= reserve
	}

	devW := width - left - 1
	if devW < 0 {
		devW = 0
	}
	switch pol.Device {
	case model.DeviceHide:
		devW = 0
	case model.DeviceFitIfRoom:
		if devW < minFitDeviceWidth {
			devW = 0
		}
	}

	plan.CPUs = cpus
	plan.DeviceWidth = devW
	return plan
}

// FormatRate renders an interrupts/sec value the way every cell does.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func cpuLabel(i int) string {
	return "CPU" + strconv.Itoa(i)
}
