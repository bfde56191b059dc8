package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/fibload/internal/cli"
	"github.com/agbru/fibload/internal/config"
	apperrors "github.com/agbru/fibload/internal/errors"
	"github.com/agbru/fibload/internal/fibonacci"
	"github.com/agbru/fibload/internal/logging"
	"github.com/agbru/fibload/internal/metrics"
	"github.com/agbru/fibload/internal/orchestration"
	"github.com/agbru/fibload/internal/sysmon"
	"github.com/agbru/fibload/internal/ui"
	"github.com/agbru/fibload/internal/workers"
)

// Application represents the fibload application instance.
type Application struct {
	Config     config.AppConfig
	Calculator workers.Calculator
	ErrWriter  io.Writer
	// Status receives the shutdown spinner. Nil disables it.
	Status io.Writer
	// Logger overrides the stderr console logger built from Config.LogLevel.
	Logger logging.Logger
	// NoColor disables report styling.
	NoColor bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithCalculator replaces the Fibonacci engine.
func WithCalculator(c workers.Calculator) AppOption {
	return func(a *Application) { a.Calculator = c }
}

// WithLogger replaces the application logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithStatusWriter sets the writer of transient shutdown feedback.
func WithStatusWriter(w io.Writer) AppOption {
	return func(a *Application) { a.Status = w }
}

// WithNoColor disables report styling.
func WithNoColor() AppOption {
	return func(a *Application) { a.NoColor = true }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	programName := "fibload"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	if app.Logger == nil {
		logger, err := newLogger(cfg, errWriter, app.NoColor)
		if err != nil {
			fmt.Fprintln(errWriter, "Error:", err)
			return nil, err
		}
		app.Logger = logger
	}

	if app.Calculator == nil {
		app.Calculator = fibonacci.NewEngine(fibonacci.WithDelayPolicy(cfg.DelayPolicy()))
	}

	app.Config = cfg
	return app, nil
}

// newLogger builds the stderr logger selected by the configuration.
func newLogger(cfg config.AppConfig, w io.Writer, noColor bool) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid log level %q: %v", cfg.LogLevel, err)
	}
	opts := []logging.Option{logging.WithLevel(level), logging.WithNoColor(ui.ColorDisabled(noColor))}
	if cfg.LogFormat == config.LogFormatJSON {
		return logging.NewLogger(w, "fibload", opts...), nil
	}
	return logging.NewConsoleLogger(w, "fibload", opts...), nil
}

// Run executes one load-generation session and returns the process exit
// code. SIGINT and SIGTERM end the session early.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return a.runLoad(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runLoad wires the engine, metrics and reporter into a controller and runs it.
func (a *Application) runLoad(ctx context.Context, out io.Writer) int {
	cfg := a.Config
	a.Logger.Info("configuration",
		logging.Uint64("duration_s", cfg.DurationSeconds),
		logging.Int("threads", cfg.Threads),
		logging.Uint64("sleep_ms", cfg.SleepMs),
		logging.Uint64("start_index", cfg.StartIndex),
		logging.Uint64("end_index", cfg.EndIndex()))

	collector := metrics.NewCollector()
	reporter := cli.NewReporter(out, cli.ReporterOptions{
		Verbose: cfg.Verbose,
		NoColor: a.NoColor,
		Status:  a.Status,
	})
	ctrl, err := orchestration.NewController(orchestration.Config{
		Duration:     cfg.Duration(),
		TickInterval: orchestration.DefaultTickInterval,
		Workers:      cfg.Workers(),
	}, a.Calculator, reporter,
		orchestration.WithLogger(a.Logger),
		orchestration.WithObserver(collector),
	)
	if err != nil {
		a.Logger.Error("invalid run configuration", err)
		return apperrors.ExitErrorConfig
	}

	memBefore := metrics.ReadMemory()
	cpuBefore, _ := sysmon.ProcessCPU()

	outcome, runErr := ctrl.Run(ctx)

	var panicErr apperrors.WorkerPanicError
	if errors.As(runErr, &panicErr) {
		styles := ui.NewStyles(a.ErrWriter, a.NoColor)
		fmt.Fprintln(a.ErrWriter, styles.Failure.Render("Fatal: "+panicErr.Error()))
		return apperrors.ExitCodeFor(runErr)
	}

	cpuAfter, cpuErr := sysmon.ProcessCPU()
	cpu := cpuAfter.Sub(cpuBefore)
	a.Logger.Info("run finished",
		logging.Int("ticks", outcome.Ticks),
		logging.Duration("elapsed", outcome.Elapsed),
		logging.Duration("join_latency", outcome.JoinLatency),
		logging.Float64("cpu_cores", cpu.Utilization(outcome.Elapsed)))

	if cfg.Verbose {
		stats := cli.RunStats{
			Elapsed:     outcome.Elapsed,
			JoinLatency: outcome.JoinLatency,
			MemBefore:   memBefore,
			MemAfter:    metrics.ReadMemory(),
			CPU:         cpu,
			CPUErr:      cpuErr,
		}
		if summary, err := collector.Summarize(); err != nil {
			a.Logger.Warn("metrics unavailable", logging.Err(err))
		} else {
			stats.Metrics = summary
		}
		cli.DisplayRunSummary(out, cfg.StartIndex, stats)
	}

	if runErr != nil {
		a.Logger.Warn("run ended early", logging.Err(runErr))
	}
	return apperrors.ExitCodeFor(runErr)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// StatusWriter returns os.Stderr when it is a terminal, nil otherwise.
func StatusWriter() io.Writer {
	if cli.IsTerminal(os.Stderr) {
		return os.Stderr
	}
	return nil
}
