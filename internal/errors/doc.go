// Package apperrors defines the application's exit codes and structured
// error types. It separates user configuration mistakes from the single
// fatal runtime class (a worker that terminated abnormally) and carries the
// underlying cause where there is one.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that carry a cause implement Unwrap() so errors.Is() and
// errors.As() see through them.
package apperrors
