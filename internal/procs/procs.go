// Package procs snapshots the process table and ranks processes by
// combined CPU and memory pressure.
package procs

import (
	"sort"

	"hostsnap/internal/logger"

	"github.com/shirou/gopsutil/v4/process"
)

var procLogger = logger.PackageLogger("PROC", "📊 PROC")

// Sample is one process observed at snapshot time. Missing CPU or
// memory readings are recorded as 0.
type Sample struct {
	PID           int32
	Name          string
	CPUPercent    float64
	MemoryPercent float64
}

// Composite is the ranking score: CPU% plus memory%.
func (s Sample) Composite() float64 {
	return s.CPUPercent + s.MemoryPercent
}

// Snapshot enumerates every process visible right now. Processes that
// vanish, deny access, or sit in zombie state are skipped silently; a
// partial result is still a valid result. Only a failure to list the
// process table at all is reported as an error.
func Snapshot() ([]Sample, error) {
	list, err := process.Processes()
	if err != nil {
		procLogger.Warn("Process enumeration failed: %v", err)
		return nil, err
	}

	samples := make([]Sample, 0, len(list))
	for _, p := range list {
		name, err := p.Name()
		if err != nil {
			// Gone or denied between listing and reading.
			continue
		}
		if statuses, err := p.Status(); err == nil && contains(statuses, process.Zombie) {
			continue
		}

		cpuPct, err := p.CPUPercent()
		if err != nil {
			cpuPct = 0
		}
		memPct, err := p.MemoryPercent()
		if err != nil {
			memPct = 0
		}

		samples = append(samples, Sample{
			PID:           p.Pid,
			Name:          name,
			CPUPercent:    cpuPct,
			MemoryPercent: float64(memPct),
		})
	}
	return samples, nil
}

// RankTop returns the n samples with the highest composite score,
// descending. The sort is stable: ties keep their snapshot
// enumeration order so output is reproducible. n <= 0 yields nil.
func RankTop(samples []Sample, n int) []Sample {
	if n <= 0 || len(samples) == 0 {
		return nil
	}

	ranked := make([]Sample, len(samples))
	copy(ranked, samples)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Composite() > ranked[j].Composite()
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
