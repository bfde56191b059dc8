package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "threads must be at least 1"},
			expected: "threads must be at least 1",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 0, "--threads"),
			expected: "invalid value 0 for flag --threads",
		},
		{
			name:        "ConfigError type assertion through wrapping",
			err:         WrapError(NewConfigError("bad"), "parse"),
			expected:    "parse: bad",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestWorkerPanicError(t *testing.T) {
	t.Parallel()

	t.Run("message names slot and index", func(t *testing.T) {
		t.Parallel()
		err := WorkerPanicError{Slot: 3, Index: 10003, Value: "boom"}
		want := "worker 3 (F(10003)) panicked: boom"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
		if err.Unwrap() != nil {
			t.Error("Unwrap should be nil for a non-error panic value")
		}
	})

	t.Run("error panic values unwrap", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("index out of range")
		err := fmt.Errorf("join: %w", WorkerPanicError{Slot: 0, Value: cause})
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the panic value in the chain")
		}
		var panicErr WorkerPanicError
		if !errors.As(err, &panicErr) {
			t.Fatal("errors.As should find WorkerPanicError")
		}
		if panicErr.Slot != 0 {
			t.Errorf("expected slot 0, got %d", panicErr.Slot)
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("flag provided but not defined: -x"),
			format:      "parse arguments",
			expectedMsg: "parse arguments: flag provided but not defined: -x",
		},
		{
			name:        "preserves error chain",
			original:    context.Canceled,
			format:      "run interrupted",
			expectedMsg: "run interrupted: context canceled",
			checkIs:     context.Canceled,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("boom"),
			format:      "worker %d",
			args:        []any{7},
			expectedMsg: "worker 7: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "interrupted"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"worker panic", WrapError(WorkerPanicError{Slot: 1, Value: "x"}, "join"), ExitErrorWorkerPanic},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"canceled", WrapError(context.Canceled, "run"), ExitErrorCanceled},
		{"deadline", WrapError(context.DeadlineExceeded, "run"), ExitErrorCanceled},
		{"other", errors.New("disk on fire"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":          ExitSuccess,
		"ExitErrorGeneric":     ExitErrorGeneric,
		"ExitErrorConfig":      ExitErrorConfig,
		"ExitErrorWorkerPanic": ExitErrorWorkerPanic,
		"ExitErrorCanceled":    ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
