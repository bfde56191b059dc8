// Package sysmon reports the CPU time consumed by the current process. The
// load generator uses it to show how much CPU its workers actually burned.
package sysmon

import "time"

// CPUUsage is the cumulative CPU time of the process.
type CPUUsage struct {
	User   time.Duration
	System time.Duration
}

// Total returns user plus system time.
func (u CPUUsage) Total() time.Duration {
	return u.User + u.System
}

// Sub returns the usage accumulated since before.
func (u CPUUsage) Sub(before CPUUsage) CPUUsage {
	return CPUUsage{User: u.User - before.User, System: u.System - before.System}
}

// Utilization returns Total divided by wall, where 1.0 means one core fully
// busy for the whole interval. It returns 0 for a non-positive wall time.
func (u CPUUsage) Utilization(wall time.Duration) float64 {
	if wall <= 0 {
		return 0
	}
	return float64(u.Total()) / float64(wall)
}
