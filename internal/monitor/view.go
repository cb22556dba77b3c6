// Package monitor provides live course enrollment watching.
//
// This file contains the animated scroll-region view.
package monitor

import (
	"github.com/coursewatch/coursewatch/internal/types"
)

// AnimatedView implements View for interactive terminals. Composes
// RowFormatter (colors and layout) and TerminalSession (escape sequences):
// the baseline cycle raises the sticky header, every later cycle types one
// line per changed course into the scroll region below it. Failed cycles
// render nothing; the next successful poll picks up where it left off.
type AnimatedView struct {
	formatter *RowFormatter
	session   *TerminalSession
	title     string
	done      chan struct{}
}

// NewAnimatedView creates an animated view on stdout.
func NewAnimatedView(config Config) *AnimatedView {
	return &AnimatedView{
		formatter: NewRowFormatter(),
		session:   NewTerminalSession(config.TypingDelay),
		title:     config.Title,
		done:      make(chan struct{}),
	}
}

// RenderCycle types the changed-course lines for one poll cycle.
func (v *AnimatedView) RenderCycle(snapshot *types.CycleSnapshot) {
	if snapshot.Failed() {
		return
	}
	if snapshot.Baseline {
		v.session.Begin(v.formatter.FormatTitle(v.title))
		return
	}
	for _, d := range snapshot.Deltas {
		v.session.TypeLine(v.formatter.FormatRow(d) + "\n")
	}
}

// Shutdown releases the scroll region.
func (v *AnimatedView) Shutdown() {
	v.session.Teardown()
}

// Done signals view exit; animated mode only exits with the process.
func (v *AnimatedView) Done() <-chan struct{} {
	return v.done
}
