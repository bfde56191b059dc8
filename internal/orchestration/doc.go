// Package orchestration drives a load-generation run. The Controller owns the
// stop signal and the result table, starts the worker pool, samples the table
// once per tick for the configured duration, stops and joins the workers, and
// hands the final state to a Reporter. It decouples run logic from
// presentation via the Reporter interface.
package orchestration
