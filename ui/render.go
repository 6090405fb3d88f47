package ui

import (
	"strings"

	"github.com/ftahirops/irqtop/model"
)

// RenderTable draws the plan: one header line, then one line per row.
// All width decisions were already made by Layout; this only pads and cuts.
func RenderTable(plan model.RenderPlan) string {
	var sb strings.Builder
	sb.WriteString(renderHeader(plan))
	for _, r := range plan.Rows {
		sb.WriteByte('\n')
		sb.WriteString(renderRow(plan, r))
	}
	return sb.String()
}

func renderHeader(plan model.RenderPlan) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(padLeft("IRQ", plan.IDWidth)))
	if plan.ShowTotal {
		sb.WriteByte(' ')
		sb.WriteString(headerStyle.Render(padLeft("TOTAL", plan.TotalWidth)))
	}
	for _, i := range plan.CPUs {
		sb.WriteByte(' ')
		sb.WriteString(headerStyle.Render(padLeft(cpuLabel(i), plan.CellWidth)))
	}
	if plan.ShowDevice() {
		sb.WriteByte(' ')
		sb.WriteString(headerStyle.Render(truncate("DEVICE", plan.DeviceWidth)))
	}
	return sb.String()
}

func renderRow(plan model.RenderPlan, r model.RateRow) string {
	var sb strings.Builder
	sb.WriteString(valueStyle.Render(padLeft(r.ID, plan.IDWidth)))
	if plan.ShowTotal {
		sb.WriteByte(' ')
		sb.WriteString(valueStyle.Render(padLeft(FormatRate(r.Total), plan.TotalWidth)))
	}
	for _, i := range plan.CPUs {
		cell := "-" // CPU column exists but this IRQ has no counter for it
		if i < len(r.PerCPU) {
			cell = FormatRate(r.PerCPU[i])
		}
		sb.WriteByte(' ')
		sb.WriteString(valueStyle.Render(padLeft(cell, plan.CellWidth)))
	}
	if plan.ShowDevice() {
		sb.WriteByte(' ')
		sb.WriteString(deviceStyle.Render(truncate(r.Device, plan.DeviceWidth)))
	}
	return sb.String()
}

// padLeft right-justifies s in width, keeping s intact when it is longer.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	return s[:width]
}
