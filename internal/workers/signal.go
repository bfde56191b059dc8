package workers

import "sync/atomic"

// StopSignal is a one-way flag shared by a controller and its workers. It
// starts in the running state; Stop moves it to stopped and it never resets.
// Reads never block.
type StopSignal struct {
	stopped atomic.Bool
}

// NewStopSignal returns a signal in the running state.
func NewStopSignal() *StopSignal {
	return &StopSignal{}
}

// Stop raises the signal. It reports whether this call was the one that
// changed the state.
func (s *StopSignal) Stop() bool {
	return s.stopped.CompareAndSwap(false, true)
}

// Stopped reports whether the signal has been raised.
func (s *StopSignal) Stopped() bool {
	return s.stopped.Load()
}
