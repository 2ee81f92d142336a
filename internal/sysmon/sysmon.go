// Package sysmon provides a snapshot of the host a calibration run executed on.
// Crossover thresholds are only meaningful for the machine that produced them,
// so the report records the environment alongside the intervals.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot describes the execution environment of a tuning run.
type Snapshot struct {
	// CPUModel is the CPU model name, or empty if it could not be determined.
	CPUModel string
	// NumCPU is the number of logical CPUs visible to the process.
	NumCPU int
	// TotalMemMB is the total physical memory in megabytes, or 0 on error.
	TotalMemMB uint64
	// GoVersion is the runtime version string.
	GoVersion string
}

// Capture collects a host snapshot. Probe failures degrade to zero values
// rather than errors; the snapshot is informational only.
func Capture() Snapshot {
	s := Snapshot{
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		s.CPUModel = infos[0].ModelName
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.TotalMemMB = vmem.Total / (1024 * 1024)
	}
	return s
}
