package model

import (
	"regexp"
	"time"
)

// DeviceMode controls whether the device description column is shown.
type DeviceMode int

const (
	DeviceHide DeviceMode = iota
	DeviceShow
	DeviceFitIfRoom
)

func (d DeviceMode) String() string {
	switch d {
	case DeviceHide:
		return "hide"
	case DeviceShow:
		return "show"
	case DeviceFitIfRoom:
		return "auto"
	}
	return "unknown"
}

// Cycle returns the next mode in the hide -> show -> auto -> hide order.
func (d DeviceMode) Cycle() DeviceMode {
	switch d {
	case DeviceHide:
		return DeviceShow
	case DeviceShow:
		return DeviceFitIfRoom
	default:
		return DeviceHide
	}
}

// CPUMode says which CPU columns are candidates for display.
type CPUMode int

const (
	CPUAll CPUMode = iota
	CPUNone
	CPUExplicit
)

// CPUSelection is the set of CPU columns the user asked for. Indices is
// only meaningful in CPUExplicit mode and is kept sorted and deduplicated.
type CPUSelection struct {
	Mode    CPUMode
	Indices []int
}

// Candidates resolves the selection against the snapshot's CPU count.
func (s CPUSelection) Candidates(totalCPUs int) []int {
	switch s.Mode {
	case CPUNone:
		return nil
	case CPUExplicit:
		out := make([]int, 0, len(s.Indices))
		for _, i := range s.Indices {
			if i >= 0 && i < totalCPUs {
				out = append(out, i)
			}
		}
		return out
	default:
		out := make([]int, totalCPUs)
		for i := range out {
			out[i] = i
		}
		return out
	}
}

// SortKey selects the row ordering.
type SortKey int

const (
	SortTotal SortKey = iota
	SortName
	SortDevice
)

func (k SortKey) String() string {
	switch k {
	case SortTotal:
		return "total"
	case SortName:
		return "name"
	case SortDevice:
		return "device"
	}
	return "unknown"
}

// ViewPolicy is the live display configuration. It has a single owner, the
// UI update loop; the command interpreter mutates it and the selector and
// layout read it every tick.
type ViewPolicy struct {
	Filter    *regexp.Regexp // nil = no filtering
	ShowTotal bool
	Device    DeviceMode
	CPUs      CPUSelection
	Sort      SortKey
	SortDesc  bool
	Interval  time.Duration // > 0
	Remaining int           // samples left to render; 0 = unlimited
}
