// Package monitor provides live course enrollment watching.
//
// This file contains the LineView implementation for CI/CD-friendly output.
package monitor

import (
	"io"

	"github.com/coursewatch/coursewatch/internal/types"
)

// LineView implements View for line-based output suitable for CI/CD
// pipelines. Uses LineRenderer for formatting and never moves the cursor.
type LineView struct {
	renderer *LineRenderer
	done     chan struct{}
}

// NewLineView creates a new line mode view
func NewLineView(writer io.Writer) *LineView {
	return &LineView{
		renderer: NewLineRenderer(writer),
		done:     make(chan struct{}),
	}
}

// RenderCycle displays the poll cycle as timestamped line output
func (v *LineView) RenderCycle(snapshot *types.CycleSnapshot) {
	v.renderer.RenderCycle(snapshot)
}

// Shutdown performs cleanup (no-op for line mode - no terminal state to restore)
func (v *LineView) Shutdown() {
	// No cleanup needed for line mode
}

// Done signals view exit; line mode only exits with the process.
func (v *LineView) Done() <-chan struct{} {
	return v.done
}
