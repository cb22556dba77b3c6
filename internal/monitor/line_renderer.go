package monitor

// This file contains line mode rendering logic for CI/CD-friendly output.

import (
	"fmt"
	"io"
	"time"

	"github.com/coursewatch/coursewatch/internal/types"
)

// LineRenderer renders poll cycles as single-line timestamped output
// suitable for CI/CD pipelines and log aggregation systems. Consecutive
// identical failures are suppressed and summarized, so a dead upstream
// does not flood the log at one line per poll.
type LineRenderer struct {
	output io.Writer

	lastErr    string
	errRepeats int
}

// NewLineRenderer creates a new line mode renderer
func NewLineRenderer(output io.Writer) *LineRenderer {
	return &LineRenderer{output: output}
}

// RenderCycle outputs the cycle as timestamped lines: one per changed
// course, a summary for the baseline cycle, a warning for a failed fetch.
func (r *LineRenderer) RenderCycle(snapshot *types.CycleSnapshot) {
	ts := formatTimestamp(snapshot.Time)

	if snapshot.Failed() {
		r.renderFailure(ts, snapshot.Err)
		return
	}
	r.flushFailures(ts)

	if snapshot.Baseline {
		fmt.Fprintf(r.output, "%s ▶ baseline: tracking %d courses\n", ts, snapshot.Courses) //nolint:errcheck // stdout write errors not actionable
		return
	}

	for _, d := range snapshot.Deltas {
		fmt.Fprintln(r.output, formatDeltaLine(ts, d)) //nolint:errcheck // stdout write errors not actionable
	}
}

// formatTimestamp returns compact local time (HH:MM:SS)
func formatTimestamp(t time.Time) string {
	return t.Local().Format("15:04:05")
}

// formatDeltaLine generates one change line
// Format: <timestamp> <symbol> <course> <name> <prev>→<count> /<capacity> @<room>
func formatDeltaLine(ts string, d types.Delta) string {
	return fmt.Sprintf("%s %s %s %s %s→%s /%s @%s",
		ts, d.Direction.Symbol(), d.Key, d.Name, d.Prev, d.Count, d.Capacity, d.Room)
}

// renderFailure prints the first occurrence of an error, counting repeats.
func (r *LineRenderer) renderFailure(ts string, err error) {
	msg := err.Error()
	if msg == r.lastErr {
		r.errRepeats++
		return
	}
	r.flushFailures(ts)
	fmt.Fprintf(r.output, "%s ✗ %s\n", ts, msg) //nolint:errcheck // stdout write errors not actionable
	r.lastErr = msg
}

// flushFailures reports how often the previous error repeated, then
// forgets it.
func (r *LineRenderer) flushFailures(ts string) {
	if r.errRepeats > 0 {
		fmt.Fprintf(r.output, "%s ✗ previous error repeated %d more times\n", ts, r.errRepeats) //nolint:errcheck // stdout write errors not actionable
	}
	r.lastErr = ""
	r.errRepeats = 0
}
