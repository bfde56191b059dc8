// Package config parses the command line and environment into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	apperrors "github.com/agbru/fibload/internal/errors"
	"github.com/agbru/fibload/internal/fibonacci"
	"github.com/agbru/fibload/internal/format"
	"github.com/agbru/fibload/internal/workers"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "FIBLOAD_"

// Default option values. They match the fixed configuration of a run with no
// options at all.
const (
	DefaultDurationSeconds = 10
	DefaultThreads         = 10
	DefaultSleepMs         = uint64(fibonacci.DefaultDelay / time.Millisecond)
	DefaultStartIndex      = fibonacci.DefaultStartIndex
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = LogFormatConsole
	DefaultDelayOn         = DelayOnEven
)

// Values of --delay-on besides a numeric index.
const (
	DelayOnEven = "even"
	DelayOnNone = "none"
)

// MaxThreads bounds the worker count. Each worker owns a goroutine and a
// result slot, so an unbounded count exhausts memory before the run starts.
const MaxThreads = 10_000

// Log formats accepted by --log-format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// maxDurationSeconds keeps the run length representable as a time.Duration.
const maxDurationSeconds = uint64(math.MaxInt64 / int64(time.Second))

// AppConfig holds the parsed configuration of one run.
type AppConfig struct {
	// DurationSeconds is the total run length in whole seconds.
	DurationSeconds uint64
	// Threads is the number of workers and result slots.
	Threads int
	// SleepMs is the delay injected into the indices selected by DelayOn.
	SleepMs uint64
	// StartIndex is the Fibonacci index computed by slot 0.
	StartIndex uint64
	// Verbose prints full values and a run summary.
	Verbose bool
	// DelayOn selects the indices that receive the delay: DelayOnEven,
	// DelayOnNone, or one decimal index.
	DelayOn string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFormat is LogFormatConsole or LogFormatJSON.
	LogFormat string
	// ShowVersion prints the version and exits.
	ShowVersion bool
	// Completion names a shell whose completion script is printed instead
	// of running.
	Completion string
}

// Duration returns the run length.
func (c AppConfig) Duration() time.Duration {
	return time.Duration(c.DurationSeconds) * time.Second
}

// Delay returns the injected computation delay.
func (c AppConfig) Delay() time.Duration {
	return time.Duration(c.SleepMs) * time.Millisecond
}

// EndIndex returns the Fibonacci index computed by the last slot.
func (c AppConfig) EndIndex() uint64 {
	return c.StartIndex + uint64(c.Threads) - 1
}

// DelayPolicy returns the engine policy selected by DelayOn. DelayOn must
// have passed Validate.
func (c AppConfig) DelayPolicy() fibonacci.DelayPolicy {
	switch c.DelayOn {
	case DelayOnNone:
		return fibonacci.NoDelay
	case DelayOnEven, "":
		return fibonacci.EvenIndex
	}
	n, _ := strconv.ParseUint(c.DelayOn, 10, 64)
	return fibonacci.AtIndex(n)
}

// Workers converts the configuration into a worker pool configuration.
func (c AppConfig) Workers() workers.Config {
	return workers.Config{
		Threads:    c.Threads,
		StartIndex: c.StartIndex,
		Delay:      c.Delay(),
		Pause:      workers.DefaultPause,
	}
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if c.Threads < 1 {
		return apperrors.NewConfigError("threads must be at least 1, got %d", c.Threads)
	}
	if c.Threads > MaxThreads {
		return apperrors.NewConfigError("threads must be at most %d, got %d", MaxThreads, c.Threads)
	}
	if c.StartIndex > math.MaxUint64-uint64(c.Threads-1) {
		return apperrors.NewConfigError("start index %d with %d threads overflows the index range", c.StartIndex, c.Threads)
	}
	if c.DurationSeconds > maxDurationSeconds {
		return apperrors.NewConfigError("duration %ds is too large", c.DurationSeconds)
	}
	if c.SleepMs > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return apperrors.NewConfigError("sleep %dms is too large", c.SleepMs)
	}
	if c.DelayOn != DelayOnEven && c.DelayOn != DelayOnNone {
		if _, err := strconv.ParseUint(c.DelayOn, 10, 64); err != nil {
			return apperrors.NewConfigError("delay-on must be %q, %q or an index, got %q", DelayOnEven, DelayOnNone, c.DelayOn)
		}
	}
	if c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatJSON {
		return apperrors.NewConfigError("log format must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.LogFormat)
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Flags take precedence over FIBLOAD_* environment variables, which take
// precedence over defaults. Usage and parse errors are written to errWriter.
//
// A --help request returns flag.ErrHelp unchanged; every other failure is a
// *apperrors.ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errWriter, "Keeps a pool of workers computing Fibonacci numbers and prints the")
		fmt.Fprintln(errWriter, "shared result table once per second.")
		fmt.Fprintln(errWriter)
		fmt.Fprintln(errWriter, "Options:")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEvery option can also be set through %s<NAME>, e.g. %sTHREADS=4.\n", EnvPrefix, EnvPrefix)
	}

	config := AppConfig{}
	fs.Uint64Var(&config.DurationSeconds, "duration", DefaultDurationSeconds, "Total run time in seconds.")
	fs.Uint64Var(&config.DurationSeconds, "d", DefaultDurationSeconds, "Shorthand for -duration.")
	fs.IntVar(&config.Threads, "threads", DefaultThreads, fmt.Sprintf("Number of worker threads (and result slots), at most %d.", MaxThreads))
	fs.IntVar(&config.Threads, "t", DefaultThreads, "Shorthand for -threads.")
	fs.Uint64Var(&config.SleepMs, "sleep-ms", DefaultSleepMs, "Delay in milliseconds injected into the indices selected by -delay-on.")
	fs.Uint64Var(&config.SleepMs, "s", DefaultSleepMs, "Shorthand for -sleep-ms.")
	fs.Uint64Var(&config.StartIndex, "start-index", DefaultStartIndex, "Fibonacci index computed by the first worker.")
	fs.Uint64Var(&config.StartIndex, "i", DefaultStartIndex, "Shorthand for -start-index.")
	fs.StringVar(&config.DelayOn, "delay-on", DefaultDelayOn, "Indices that receive the delay: even, none, or a single index.")
	verboseHelp := fmt.Sprintf("Print full values and a run summary. By default values longer than %d digits are truncated.", format.TruncationLimit)
	fs.BoolVar(&config.Verbose, "verbose", false, verboseHelp)
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -verbose.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level (trace, debug, info, warn, error).")
	fs.StringVar(&config.LogFormat, "log-format", DefaultLogFormat, "Log format on stderr (console, json).")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print the version and exit.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(errWriter, "Error:", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
