package orchestration

import (
	"math/big"
	"time"
)

// Report is one observation of the result table.
type Report struct {
	// StartIndex is the Fibonacci index of slot 0.
	StartIndex uint64
	// Values holds a copy of every slot, in slot order.
	Values []*big.Int
	// Tick is the zero-based tick number. It is -1 for the final report.
	Tick int
	// Elapsed is the time since the workers were started.
	Elapsed time.Duration
}

// EndIndex returns the Fibonacci index of the last slot.
func (r Report) EndIndex() uint64 {
	if len(r.Values) == 0 {
		return r.StartIndex
	}
	return r.StartIndex + uint64(len(r.Values)-1)
}

// Reporter presents run observations. Implementations are called from the
// controller goroutine only.
type Reporter interface {
	// ReportTick presents a periodic sample taken while workers run.
	ReportTick(r Report)
	// ReportFinal presents the state after every worker has been joined,
	// along with the configured run duration.
	ReportFinal(r Report, configured time.Duration)
}

// StopReporter is implemented by reporters that give feedback while the
// controller waits for workers to finish their last iteration. The returned
// function is called once the join completes, successfully or not.
type StopReporter interface {
	ReportStopping(threads int) (done func())
}

// NullReporter discards every report.
type NullReporter struct{}

// ReportTick does nothing.
func (NullReporter) ReportTick(Report) {}

// ReportFinal does nothing.
func (NullReporter) ReportFinal(Report, time.Duration) {}
