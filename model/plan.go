package model

// RenderPlan is the fully resolved decision of what to draw: which CPU
// columns fit, whether the total and device columns appear, and the rows
// trimmed to the height budget. Recomputed every tick, never persisted.
type RenderPlan struct {
	CPUs        []int // visible CPU indices, ascending
	ShowTotal   bool
	DeviceWidth int // 0 = device column hidden

	IDWidth    int
	TotalWidth int
	CellWidth  int // width of one per-CPU rate cell

	Rows []RateRow
}

// ShowDevice reports whether the plan includes the device column.
func (p RenderPlan) ShowDevice() bool { return p.DeviceWidth > 0 }
