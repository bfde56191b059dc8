package fibonacci

import (
	"math/big"
	"time"
)

// DelayPolicy decides whether a computation of F(n) is artificially slowed
// down. It must be a pure function of n.
type DelayPolicy func(n uint64) bool

// EvenIndex selects every even index. It is the default policy.
func EvenIndex(n uint64) bool { return n%2 == 0 }

// AtIndex selects exactly one sentinel index.
func AtIndex(sentinel uint64) DelayPolicy {
	return func(n uint64) bool { return n == sentinel }
}

// NoDelay never selects an index.
func NoDelay(uint64) bool { return false }

// Engine computes Fibonacci numbers, blocking the calling goroutine for the
// requested delay when its policy selects the index.
//
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	policy DelayPolicy
	sleep  func(time.Duration)
}

// EngineOption configures an Engine during construction.
type EngineOption func(*Engine)

// WithDelayPolicy replaces the default EvenIndex policy.
func WithDelayPolicy(p DelayPolicy) EngineOption {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithSleeper replaces time.Sleep. Tests use it to observe delays without
// waiting for them.
func WithSleeper(sleep func(time.Duration)) EngineOption {
	return func(e *Engine) {
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// NewEngine creates an Engine. Without options it delays even indices and
// sleeps with time.Sleep.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{policy: EvenIndex, sleep: time.Sleep}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute returns F(n) as a newly allocated big.Int owned by the caller.
//
// F(0) and F(1) are returned immediately. For larger n the call first sleeps
// for delay when the policy selects n, then iterates the recurrence
// F(i) = F(i-1) + F(i-2) bottom-up. The result is exact for every n; memory
// use is bounded by the size of F(n) itself.
func (e *Engine) Compute(n uint64, delay time.Duration) *big.Int {
	if n == 0 {
		return new(big.Int)
	}
	if n == 1 {
		return big.NewInt(1)
	}

	if delay > 0 && e.policy(n) {
		e.sleep(delay)
	}

	// prev = F(i-2), curr = F(i-1); the sum is written into prev and the
	// roles swap so no value is allocated per step.
	prev, curr := new(big.Int), big.NewInt(1)
	for i := uint64(2); i <= n; i++ {
		prev.Add(prev, curr)
		prev, curr = curr, prev
	}
	return curr
}

var defaultEngine = NewEngine()

// Compute returns F(n) using the default engine (even indices delayed).
func Compute(n uint64, delay time.Duration) *big.Int {
	return defaultEngine.Compute(n, delay)
}
