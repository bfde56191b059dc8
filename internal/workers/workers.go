//go:generate mockgen -source=workers.go -destination=mocks/mock_workers.go -package=mocks

package workers

import (
	"math/big"
	"runtime/debug"
	"time"

	apperrors "github.com/agbru/fibload/internal/errors"
	"github.com/agbru/fibload/internal/logging"
)

// DefaultPause is the fixed pause a worker takes after publishing a value.
// It bounds CPU usage when the engine call is fast.
const DefaultPause = time.Millisecond

// Calculator computes F(n), possibly blocking for delay.
type Calculator interface {
	Compute(n uint64, delay time.Duration) *big.Int
}

// ResultStore receives the latest value of a slot. Implementations must be
// safe for concurrent use and must not hold any lock after Store returns.
type ResultStore interface {
	Store(idx int, v *big.Int)
}

// Observer is notified of worker lifecycle events and completed iterations.
type Observer interface {
	WorkerStarted(slot int)
	WorkerStopped(slot int)
	ObserveIteration(slot int, compute time.Duration)
}

type nopObserver struct{}

func (nopObserver) WorkerStarted(int)                    {}
func (nopObserver) WorkerStopped(int)                    {}
func (nopObserver) ObserveIteration(int, time.Duration) {}

// Worker repeatedly computes F(Index) and publishes it into slot Slot.
type Worker struct {
	Slot  int
	Index uint64

	calc     Calculator
	store    ResultStore
	stop     *StopSignal
	delay    time.Duration
	pause    time.Duration
	observer Observer
	logger   logging.Logger
}

// Run executes the worker loop until the stop signal is observed between
// iterations. It returns a WorkerPanicError if the loop panics and nil
// otherwise.
func (w *Worker) Run() (err error) {
	w.observer.WorkerStarted(w.Slot)
	defer w.observer.WorkerStopped(w.Slot)
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.WorkerPanicError{Slot: w.Slot, Index: w.Index, Value: r, Stack: debug.Stack()}
		}
	}()

	var iterations uint64
	for !w.stop.Stopped() {
		start := time.Now()
		v := w.calc.Compute(w.Index, w.delay)
		w.store.Store(w.Slot, v)
		w.observer.ObserveIteration(w.Slot, time.Since(start))
		iterations++

		if w.pause > 0 {
			time.Sleep(w.pause)
		}
	}

	w.logger.Debug("worker exited",
		logging.Int("slot", w.Slot),
		logging.Uint64("n", w.Index),
		logging.Uint64("iterations", iterations))
	return nil
}
