package workers

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	apperrors "github.com/agbru/fibload/internal/errors"
	"github.com/agbru/fibload/internal/fibonacci"
	"github.com/agbru/fibload/internal/results"
)

// calcFunc adapts a function to the Calculator interface.
type calcFunc func(n uint64, delay time.Duration) *big.Int

func (f calcFunc) Compute(n uint64, delay time.Duration) *big.Int { return f(n, delay) }

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %v", timeout)
		}
		time.Sleep(time.Millisecond)
	}
}

func slotsEqual(table *results.Table, want []int64) bool {
	snap := table.Snapshot()
	if len(snap) != len(want) {
		return false
	}
	for i, v := range snap {
		if v.Cmp(big.NewInt(want[i])) != 0 {
			return false
		}
	}
	return true
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Threads: 10, StartIndex: 10000, Delay: 50 * time.Millisecond, Pause: DefaultPause}, false},
		{"single thread at zero", Config{Threads: 1}, false},
		{"zero threads", Config{Threads: 0}, true},
		{"negative threads", Config{Threads: -1}, true},
		{"last index is max uint64", Config{Threads: 2, StartIndex: math.MaxUint64 - 1}, false},
		{"index overflow", Config{Threads: 2, StartIndex: math.MaxUint64}, true},
		{"negative delay", Config{Threads: 1, Delay: -time.Millisecond}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewPool_InvalidConfig(t *testing.T) {
	t.Parallel()
	if _, err := NewPool(Config{Threads: 0}, fibonacci.NewEngine(), results.NewTable(0), NewStopSignal()); err == nil {
		t.Error("NewPool should reject zero threads")
	}
}

func TestPool_SteadyStateValues(t *testing.T) {
	t.Parallel()
	table := results.NewTable(3)
	stop := NewStopSignal()
	pool, err := NewPool(Config{Threads: 3, StartIndex: 5, Pause: DefaultPause}, fibonacci.NewEngine(), table, stop)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	pool.Start(context.Background())
	waitFor(t, 2*time.Second, func() bool { return slotsEqual(table, []int64{5, 8, 13}) })

	// Deterministic recurrence: the values stay put while workers keep running.
	time.Sleep(20 * time.Millisecond)
	if !slotsEqual(table, []int64{5, 8, 13}) {
		t.Errorf("values drifted: %v", table.Snapshot())
	}

	stop.Stop()
	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("table length = %d, want 3", table.Len())
	}
}

func TestPool_BaseCases(t *testing.T) {
	t.Parallel()
	tests := []struct {
		start uint64
		want  int64
	}{
		{0, 0},
		{1, 1},
	}

	for _, tt := range tests {
		table := results.NewTable(1)
		stop := NewStopSignal()
		pool, err := NewPool(Config{Threads: 1, StartIndex: tt.start, Pause: DefaultPause}, fibonacci.NewEngine(), table, stop)
		if err != nil {
			t.Fatalf("NewPool: %v", err)
		}
		pool.Start(context.Background())
		time.Sleep(5 * time.Millisecond)
		waitFor(t, time.Second, func() bool { return slotsEqual(table, []int64{tt.want}) })
		stop.Stop()
		if err := pool.Wait(); err != nil {
			t.Fatalf("Wait: %v", err)
		}
		if !slotsEqual(table, []int64{tt.want}) {
			t.Errorf("start=%d: final slot = %v, want %d", tt.start, table.Snapshot(), tt.want)
		}
	}
}

func TestPool_ShutdownWithinOneIteration(t *testing.T) {
	t.Parallel()
	const delay = 40 * time.Millisecond
	table := results.NewTable(4)
	stop := NewStopSignal()
	engine := fibonacci.NewEngine(fibonacci.WithDelayPolicy(func(uint64) bool { return true }))

	pool, err := NewPool(Config{Threads: 4, StartIndex: 100, Delay: delay, Pause: DefaultPause}, engine, table, stop)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	pool.Start(context.Background())
	time.Sleep(3 * delay)

	stopped := time.Now()
	stop.Stop()
	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	// One engine call (delay) plus one pause, with generous scheduling slack.
	if elapsed := time.Since(stopped); elapsed > delay+DefaultPause+500*time.Millisecond {
		t.Errorf("workers took %v to stop, want about one iteration (%v)", elapsed, delay+DefaultPause)
	}
}

func TestPool_WorkerPanicCancelsContext(t *testing.T) {
	t.Parallel()
	table := results.NewTable(3)
	stop := NewStopSignal()
	calc := calcFunc(func(n uint64, d time.Duration) *big.Int {
		if n == 11 {
			panic("bad index")
		}
		return fibonacci.Compute(n, d)
	})

	pool, err := NewPool(Config{Threads: 3, StartIndex: 10, Pause: DefaultPause}, calc, table, stop)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	gctx := pool.Start(context.Background())

	select {
	case <-gctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("group context was not cancelled after a worker panic")
	}

	stop.Stop()
	err = pool.Wait()
	var panicErr apperrors.WorkerPanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Wait error = %v, want WorkerPanicError", err)
	}
	if panicErr.Slot != 1 || panicErr.Index != 11 {
		t.Errorf("panic attributed to (%d, %d), want (1, 11)", panicErr.Slot, panicErr.Index)
	}
}

func TestPool_StartTwicePanics(t *testing.T) {
	t.Parallel()
	stop := NewStopSignal()
	stop.Stop()
	pool, err := NewPool(Config{Threads: 1}, fibonacci.NewEngine(), results.NewTable(1), stop)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	pool.Start(context.Background())
	defer func() {
		if recover() == nil {
			t.Error("second Start should panic")
		}
		_ = pool.Wait()
	}()
	pool.Start(context.Background())
}

func TestPool_WaitBeforeStart(t *testing.T) {
	t.Parallel()
	pool, err := NewPool(Config{Threads: 2}, fibonacci.NewEngine(), results.NewTable(2), NewStopSignal())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	if err := pool.Wait(); err != nil {
		t.Errorf("Wait before Start = %v, want nil", err)
	}
}
