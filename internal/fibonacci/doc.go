// Package fibonacci implements the computation engine of the load generator:
// an iterative, arbitrary-precision Fibonacci function with an injectable
// artificial-delay hook.
//
// The delay hook lets a caller make selected indices slow on purpose, which
// is how the generator produces uneven per-worker latency. The delay never
// changes the returned value.
package fibonacci
