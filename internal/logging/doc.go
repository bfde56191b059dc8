// Package logging provides the structured logging interface used by the load
// generator. It hides the zerolog backend behind a small Logger interface so
// the worker pool and the run controller can be tested with any sink. Loggers
// write JSON (NewLogger) or human-readable console lines (NewConsoleLogger).
package logging
