// Package results provides the shared result table written by workers and
// sampled by the run controller.
package results

import (
	"math/big"
	"sync"
)

// Table is a fixed-size sequence of Fibonacci values, one slot per worker.
//
// Every read and write takes a single mutex over the whole table; slots are
// not independently lockable. The length is fixed at construction.
type Table struct {
	mu    sync.Mutex
	slots []*big.Int
}

// NewTable returns a table of size slots, all holding zero.
func NewTable(size int) *Table {
	slots := make([]*big.Int, size)
	for i := range slots {
		slots[i] = new(big.Int)
	}
	return &Table{slots: slots}
}

// Len returns the number of slots.
func (t *Table) Len() int {
	return len(t.slots)
}

// Store replaces the value of slot idx. The table takes ownership of v; the
// caller must not mutate it afterwards. Store panics if idx is out of range.
func (t *Table) Store(idx int, v *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots[idx] = v
}

// Snapshot returns a copy of every slot, taken under one lock acquisition.
func (t *Table) Snapshot() []*big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*big.Int, len(t.slots))
	for i, v := range t.slots {
		out[i] = new(big.Int).Set(v)
	}
	return out
}
