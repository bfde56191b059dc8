// Package workers implements the worker pool of the load generator.
//
// Each Worker is bound to one result slot and one Fibonacci index. It loops
// compute, publish, pause until the shared StopSignal is raised. The signal is
// only checked between iterations, so shutdown waits for in-flight engine
// calls and injected delays to finish; nothing is cancelled mid-computation.
//
// A Pool starts its workers on an errgroup. A panicking worker is converted
// into an apperrors.WorkerPanicError at the goroutine boundary and surfaces
// from Pool.Wait.
package workers
