package fibonacci

import "time"

const (
	// DefaultStartIndex is the Fibonacci index bound to worker slot 0 when
	// no other index is configured. F(10,000) has 2,090 decimal digits.
	DefaultStartIndex = 10_000

	// DefaultDelay is the injected delay applied to indices selected by the
	// delay policy.
	DefaultDelay = 50 * time.Millisecond
)
