package orchestration

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fibload/internal/errors"
	"github.com/agbru/fibload/internal/logging"
	"github.com/agbru/fibload/internal/results"
	"github.com/agbru/fibload/internal/workers"
)

// DefaultTickInterval is the reporting period while workers run.
const DefaultTickInterval = time.Second

const tracerName = "github.com/agbru/fibload/internal/orchestration"

// ErrAlreadyRun is returned when Run is called on a used Controller.
var ErrAlreadyRun = errors.New("controller already ran")

// Config is the immutable description of a run.
type Config struct {
	// Duration is how long workers run before the stop signal is raised.
	Duration time.Duration
	// TickInterval is the reporting period. Zero means DefaultTickInterval.
	TickInterval time.Duration
	// Workers describes the pool.
	Workers workers.Config
}

// Outcome summarizes a completed run.
type Outcome struct {
	// Ticks is the number of periodic reports emitted.
	Ticks int
	// Elapsed is the time from start to the end of the join.
	Elapsed time.Duration
	// JoinLatency is the time spent waiting for workers after the stop signal.
	JoinLatency time.Duration
	// Final holds the table contents after the join. It is nil when a worker failed.
	Final []*big.Int
	// Interrupted is true when the parent context ended the run early.
	Interrupted bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller and pool logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver forwards worker events to o.
func WithObserver(o workers.Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithTracer replaces the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// Controller runs one load-generation session. It moves through
// PhaseIdle, PhaseRunning, PhaseStopping and PhaseDone exactly once.
type Controller struct {
	cfg      Config
	calc     workers.Calculator
	reporter Reporter
	logger   logging.Logger
	observer workers.Observer
	tracer   trace.Tracer

	phase atomic.Int32
	used  atomic.Bool
}

// NewController validates cfg and returns an idle Controller.
func NewController(cfg Config, calc workers.Calculator, reporter Reporter, opts ...Option) (*Controller, error) {
	if err := cfg.Workers.Validate(); err != nil {
		return nil, err
	}
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("duration must not be negative, got %s", cfg.Duration)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if reporter == nil {
		reporter = NullReporter{}
	}
	c := &Controller{
		cfg:      cfg,
		calc:     calc,
		reporter: reporter,
		logger:   logging.Nop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Phase returns the current lifecycle phase. It is safe to call from any
// goroutine.
func (c *Controller) Phase() Phase {
	return Phase(c.phase.Load())
}

func (c *Controller) setPhase(p Phase) {
	c.phase.Store(int32(p))
	c.logger.Debug("phase changed", logging.String("phase", p.String()))
}

// Run executes the whole session and blocks until every worker has exited.
//
// The run ends when the configured duration elapses, when ctx is done, or
// when a worker fails. In the first two cases the final report is emitted;
// an interrupted run then returns ctx's error. A worker failure skips the
// final report and returns the worker error.
func (c *Controller) Run(ctx context.Context) (Outcome, error) {
	if !c.used.CompareAndSwap(false, true) {
		return Outcome{}, ErrAlreadyRun
	}

	wcfg := c.cfg.Workers
	ctx, span := c.tracer.Start(ctx, "controller.run", trace.WithAttributes(
		attribute.Int("fibload.threads", wcfg.Threads),
		attribute.Int64("fibload.start_index", int64(wcfg.StartIndex)),
		attribute.Int64("fibload.delay_ms", wcfg.Delay.Milliseconds()),
		attribute.Int64("fibload.duration_ms", c.cfg.Duration.Milliseconds()),
	))
	defer span.End()

	// Idle -> Running
	stop := workers.NewStopSignal()
	table := results.NewTable(wcfg.Threads)
	poolOpts := []workers.Option{workers.WithLogger(c.logger)}
	if c.observer != nil {
		poolOpts = append(poolOpts, workers.WithObserver(c.observer))
	}
	pool, err := workers.NewPool(wcfg, c.calc, table, stop, poolOpts...)
	if err != nil {
		return Outcome{}, err
	}
	for _, w := range pool.Workers() {
		c.logger.Debug("worker bound", logging.Int("slot", w.Slot), logging.Uint64("n", w.Index))
	}

	start := time.Now()
	groupCtx := pool.Start(ctx)
	c.setPhase(PhaseRunning)
	c.logger.Info("workers started",
		logging.Int("threads", wcfg.Threads),
		logging.Int("slots", table.Len()),
		logging.Uint64("start_index", wcfg.StartIndex),
		logging.Duration("duration", c.cfg.Duration))

	var out Outcome
	out.Ticks = c.supervise(groupCtx, span, table, start)
	out.Interrupted = ctx.Err() != nil

	// Running -> Stopping
	stop.Stop()
	c.setPhase(PhaseStopping)
	c.logger.Info("stop signal raised", logging.Bool("interrupted", out.Interrupted))

	joinStart := time.Now()
	waitErr := c.join(ctx, pool)
	out.JoinLatency = time.Since(joinStart)
	out.Elapsed = time.Since(start)

	// Stopping -> Done
	c.setPhase(PhaseDone)
	if waitErr != nil {
		span.RecordError(waitErr)
		span.SetStatus(codes.Error, "worker failed")
		c.logger.Error("worker pool failed", waitErr)
		return out, apperrors.WrapError(waitErr, "worker pool")
	}
	c.logger.Info("workers joined", logging.Duration("join_latency", out.JoinLatency))

	out.Final = table.Snapshot()
	c.reporter.ReportFinal(Report{
		StartIndex: wcfg.StartIndex,
		Values:     out.Final,
		Tick:       -1,
		Elapsed:    out.Elapsed,
	}, c.cfg.Duration)

	if out.Interrupted {
		span.SetStatus(codes.Error, "interrupted")
		return out, fmt.Errorf("run interrupted: %w", context.Cause(ctx))
	}
	return out, nil
}

// supervise samples the table once per tick until the duration elapses or
// groupCtx is done. It never mutates shared state. It returns the number of
// ticks reported.
func (c *Controller) supervise(groupCtx context.Context, span trace.Span, table *results.Table, start time.Time) int {
	ticks := 0
	for {
		elapsed := time.Since(start)
		if elapsed >= c.cfg.Duration {
			return ticks
		}

		c.reporter.ReportTick(Report{
			StartIndex: c.cfg.Workers.StartIndex,
			Values:     table.Snapshot(),
			Tick:       ticks,
			Elapsed:    elapsed,
		})
		span.AddEvent("tick", trace.WithAttributes(attribute.Int("fibload.tick", ticks)))
		ticks++

		// Sleep until the next tick boundary, or the deadline if it comes first.
		next := start.Add(time.Duration(ticks) * c.cfg.TickInterval)
		if deadline := start.Add(c.cfg.Duration); deadline.Before(next) {
			next = deadline
		}
		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
		case <-groupCtx.Done():
			timer.Stop()
			return ticks
		}
	}
}

func (c *Controller) join(ctx context.Context, pool *workers.Pool) error {
	threads := pool.Size()
	_, span := c.tracer.Start(ctx, "controller.join", trace.WithAttributes(attribute.Int("fibload.threads", threads)))
	defer span.End()

	if sr, ok := c.reporter.(StopReporter); ok {
		done := sr.ReportStopping(threads)
		defer done()
	}
	return pool.Wait()
}
