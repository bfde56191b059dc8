package cli

import (
	"io"
	"testing"
	"time"

	"github.com/briandowns/spinner"
)

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()

	if rs.s.Suffix != " test" {
		t.Errorf("Suffix = %q, want %q", rs.s.Suffix, " test")
	}
}

func TestNewSpinner(t *testing.T) {
	t.Parallel()
	sp := newSpinner(io.Discard)
	if _, ok := sp.(*realSpinner); !ok {
		t.Fatalf("newSpinner returned %T, want *realSpinner", sp)
	}
	sp.UpdateSuffix(" stopping")
	sp.Start()
	sp.Stop()
}
