package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibload/internal/format"
	"github.com/agbru/fibload/internal/metrics"
	"github.com/agbru/fibload/internal/sysmon"
)

// RunStats is everything the verbose summary prints after a run.
type RunStats struct {
	Metrics     metrics.Summary
	Elapsed     time.Duration
	JoinLatency time.Duration
	MemBefore   metrics.MemorySnapshot
	MemAfter    metrics.MemorySnapshot
	// CPU is the process CPU usage; CPUErr is set when it is unavailable.
	CPU    sysmon.CPUUsage
	CPUErr error
}

// DisplayRunSummary writes per-slot iteration counts and resource usage.
func DisplayRunSummary(out io.Writer, startIndex uint64, stats RunStats) {
	fmt.Fprintf(out, "\n--- Run Summary ---\n")
	for _, s := range stats.Metrics.Slots {
		fmt.Fprintf(out, "  slot %-3d F(%d): %d iterations\n", s.Slot, startIndex+uint64(s.Slot), s.Iterations)
	}
	fmt.Fprintf(out, "  total iterations: %d\n", stats.Metrics.TotalIterations)
	fmt.Fprintf(out, "  mean compute time: %s\n", format.FormatExecutionDuration(stats.Metrics.MeanCompute))
	fmt.Fprintf(out, "  wall time: %s (join %s)\n",
		format.FormatExecutionDuration(stats.Elapsed),
		format.FormatExecutionDuration(stats.JoinLatency))
	fmt.Fprintf(out, "  allocated: %s, heap in use: %s, GC cycles: %d\n",
		format.FormatBytes(stats.MemAfter.AllocatedSince(stats.MemBefore)),
		format.FormatBytes(stats.MemAfter.HeapAlloc),
		stats.MemAfter.NumGC-stats.MemBefore.NumGC)
	if stats.CPUErr != nil {
		fmt.Fprintf(out, "  cpu time: unavailable (%v)\n", stats.CPUErr)
		return
	}
	fmt.Fprintf(out, "  cpu time: %s user, %s system (%.0f%% of one core)\n",
		format.FormatExecutionDuration(stats.CPU.User),
		format.FormatExecutionDuration(stats.CPU.System),
		stats.CPU.Utilization(stats.Elapsed)*100)
}
