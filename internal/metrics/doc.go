// Package metrics collects run statistics for the load generator: a
// prometheus registry fed by the worker pool (iterations per slot, compute
// latency, active workers) and point-in-time runtime memory snapshots.
//
// The registry is private to each Collector. Nothing is served over the
// network; the controller gathers it once at the end of a run.
package metrics
