// Package collector reads the kernel's interrupt counter listing into
// snapshots the rate engine can diff.
package collector

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ftahirops/irqtop/model"
	"github.com/ftahirops/irqtop/util"
)

// ErrUnavailable marks a snapshot read failure, e.g. the counter listing
// disappearing mid-run. Callers report it and retry; they never render a
// partial snapshot.
var ErrUnavailable = errors.New("interrupt source unavailable")

// Source produces a Snapshot on demand.
type Source interface {
	Read() (*model.Snapshot, error)
}

// ProcSource reads /proc/interrupts.
type ProcSource struct {
	Path string
}

// NewProcSource returns a source over the default /proc/interrupts path.
func NewProcSource() *ProcSource {
	return &ProcSource{Path: "/proc/interrupts"}
}

func (s *ProcSource) Read() (*model.Snapshot, error) {
	lines, err := util.ReadFileLines(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	snap, err := Parse(lines, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return snap, nil
}

// Parse turns the interrupt listing into a snapshot. The first line names
// the CPU columns; each following line is an IRQ ID (trailing colon
// stripped), up to one counter per CPU column, and a free-form device
// description. Lines such as "ERR:" carry fewer counters than CPUs; the
// missing columns stay zero.
func Parse(lines []string, ts time.Time) (*model.Snapshot, error) {
	if len(lines) == 0 {
		return nil, errors.New("empty interrupt listing")
	}
	cpus := len(strings.Fields(lines[0]))
	if cpus == 0 {
		return nil, fmt.Errorf("malformed CPU header %q", lines[0])
	}

	snap := &model.Snapshot{
		Timestamp: ts,
		CPUs:      cpus,
		IRQs:      make(map[string]model.IRQCounters, len(lines)-1),
	}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		id := strings.TrimSuffix(fields[0], ":")
		counts := make([]uint64, 0, cpus)
		rest := 1
		for _, f := range fields[1:] {
			v, ok := util.ParseUint64(f)
			if !ok || len(counts) >= cpus {
				break
			}
			counts = append(counts, v)
			rest++
		}
		snap.IRQs[id] = model.IRQCounters{
			PerCPU: counts,
			Device: strings.Join(fields[rest:], " "),
		}
	}
	return snap, nil
}
