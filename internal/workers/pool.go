package workers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibload/internal/logging"
)

// Config describes the workers of a pool.
type Config struct {
	// Threads is the number of workers, one per result slot.
	Threads int
	// StartIndex is the Fibonacci index of slot 0; slot i computes
	// F(StartIndex + i).
	StartIndex uint64
	// Delay is passed to every engine call.
	Delay time.Duration
	// Pause is slept after each publish. Zero disables it.
	Pause time.Duration
}

// Validate checks that every slot index is representable.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d", c.Threads)
	}
	if c.StartIndex > math.MaxUint64-uint64(c.Threads-1) {
		return fmt.Errorf("start index %d plus %d threads overflows uint64", c.StartIndex, c.Threads)
	}
	if c.Delay < 0 || c.Pause < 0 {
		return errors.New("delay and pause must not be negative")
	}
	return nil
}

// Option configures a Pool.
type Option func(*Pool)

// WithObserver attaches an Observer to every worker.
func WithObserver(o Observer) Option {
	return func(p *Pool) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithLogger sets the pool logger.
func WithLogger(l logging.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// Pool owns a fixed set of workers sharing one Calculator, one ResultStore
// and one StopSignal.
type Pool struct {
	workers  []*Worker
	stop     *StopSignal
	observer Observer
	logger   logging.Logger

	group *errgroup.Group
}

// NewPool builds one worker per slot. It does not start them.
func NewPool(cfg Config, calc Calculator, store ResultStore, stop *StopSignal, opts ...Option) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pool{stop: stop, observer: nopObserver{}, logger: logging.Nop()}
	for _, opt := range opts {
		opt(p)
	}

	p.workers = make([]*Worker, cfg.Threads)
	for idx := range p.workers {
		p.workers[idx] = &Worker{
			Slot:     idx,
			Index:    cfg.StartIndex + uint64(idx),
			calc:     calc,
			store:    store,
			stop:     stop,
			delay:    cfg.Delay,
			pause:    cfg.Pause,
			observer: p.observer,
			logger:   p.logger,
		}
	}
	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Workers returns the pool's workers in slot order.
func (p *Pool) Workers() []*Worker {
	return p.workers
}

// Start launches every worker. The returned context is cancelled as soon as
// a worker fails, which lets a supervisor stop the rest early; it is never
// passed to the workers themselves. Start must be called at most once.
func (p *Pool) Start(ctx context.Context) context.Context {
	if p.group != nil {
		panic("workers: pool started twice")
	}
	g, gctx := errgroup.WithContext(ctx)
	p.group = g
	for _, w := range p.workers {
		g.Go(w.Run)
	}
	p.logger.Debug("workers started", logging.Int("threads", len(p.workers)))
	return gctx
}

// Wait blocks until every worker has exited and returns the first worker
// error. Workers only exit once the stop signal is raised, so the caller
// raises it first.
func (p *Pool) Wait() error {
	if p.group == nil {
		return nil
	}
	return p.group.Wait()
}
