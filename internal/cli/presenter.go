package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibload/internal/format"
	"github.com/agbru/fibload/internal/orchestration"
	"github.com/agbru/fibload/internal/ui"
)

// Reporter prints run observations to stdout, one line per tick, and gives
// shutdown feedback on a separate writer.
//
// Tick lines look like:
//
//	Fibonacci[10000-10009]: [v0, v1, ..., v9]
//
// and the final report like:
//
//	Final results for 10000-10009: [v0, v1, ..., v9]
//	Program ran for 10 seconds
type Reporter struct {
	out      io.Writer
	status   io.Writer
	fullVals bool
	styles   ui.Styles
}

// Verify interface compliance.
var (
	_ orchestration.Reporter     = (*Reporter)(nil)
	_ orchestration.StopReporter = (*Reporter)(nil)
)

// ReporterOptions configures a Reporter.
type ReporterOptions struct {
	// Verbose prints values in full instead of truncating long ones.
	Verbose bool
	// NoColor disables styling even on a terminal.
	NoColor bool
	// Status receives transient feedback such as the shutdown spinner.
	// Nil disables it.
	Status io.Writer
}

// NewReporter creates a Reporter writing report lines to out.
func NewReporter(out io.Writer, opts ReporterOptions) *Reporter {
	return &Reporter{
		out:      out,
		status:   opts.Status,
		fullVals: opts.Verbose,
		styles:   ui.NewStyles(out, opts.NoColor),
	}
}

// ReportTick prints one periodic sample.
func (r *Reporter) ReportTick(rep orchestration.Report) {
	label := fmt.Sprintf("Fibonacci[%d-%d]:", rep.StartIndex, rep.EndIndex())
	fmt.Fprintf(r.out, "%s %s\n",
		r.styles.Label.Render(label),
		r.styles.Value.Render(format.FormatValues(rep.Values, r.fullVals)))
}

// ReportFinal prints the final table contents and the configured duration.
func (r *Reporter) ReportFinal(rep orchestration.Report, configured time.Duration) {
	label := fmt.Sprintf("Final results for %d-%d:", rep.StartIndex, rep.EndIndex())
	fmt.Fprintf(r.out, "%s %s\n",
		r.styles.Final.Render(label),
		r.styles.Value.Render(format.FormatValues(rep.Values, r.fullVals)))
	fmt.Fprintln(r.out, r.styles.Muted.Render(
		fmt.Sprintf("Program ran for %s seconds", format.FormatSeconds(configured))))
}

// ReportStopping shows a spinner on the status writer until done is called.
func (r *Reporter) ReportStopping(threads int) (done func()) {
	if r.status == nil {
		return func() {}
	}
	s := newSpinner(r.status)
	s.UpdateSuffix(fmt.Sprintf(" waiting for %d workers to finish their last iteration", threads))
	s.Start()
	return s.Stop
}
