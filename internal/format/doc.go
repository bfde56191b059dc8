// Package format holds pure formatting helpers shared by the CLI: durations,
// plain seconds, byte counts and (possibly truncated) big-integer values.
// Functions here perform no I/O.
package format
