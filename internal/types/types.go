// Package types contains shared domain types used across monitor and tui packages.
package types //nolint:revive // types is a standard name for shared domain types

import (
	"fmt"
	"strings"
	"time"
)

// Direction classifies how an enrollment count moved between two cycles.
type Direction int

const (
	// DirectionFlat indicates the raw value changed but the sides are not numerically comparable
	DirectionFlat Direction = iota
	// DirectionUp indicates the count increased
	DirectionUp
	// DirectionDown indicates the count decreased
	DirectionDown
)

// Symbol returns a visual symbol for display based on the direction.
func (d Direction) Symbol() string {
	switch d {
	case DirectionUp:
		return "▲"
	case DirectionDown:
		return "▼"
	default:
		return "•"
	}
}

// Sign returns the marker used in the formatted seat column. Only a
// confirmed increase earns a plus.
func (d Direction) Sign() string {
	if d == DirectionUp {
		return "+"
	}
	return "-"
}

// Delta represents one course whose enrollment changed between two polls.
// This is a pure domain DTO: all fields are display-ready strings.
type Delta struct {
	// Course identification
	Key  string // course number, unique within a semester
	Name string // course title, "-" when upstream omits it

	// Seat movement
	Count     string // current enrollment, "-" when not a number
	Prev      string // previous enrollment
	Capacity  string // seat limit label, "-" when upstream omits it
	Direction Direction

	// Location
	Room string // classroom label, "-" when upstream omits it
}

// CycleSnapshot is the result of one poll cycle, ready for rendering.
type CycleSnapshot struct {
	// Watch identification
	Semester string
	URL      string

	// Cycle identification
	Time     time.Time
	Cycle    int  // 1-based poll counter
	Baseline bool // first successful cycle; populates state, renders no rows

	// Outcome
	Courses int // rows tracked after this cycle
	Deltas  []Delta
	Err     error // fetch or decode failure; Deltas is empty when set

	// Seat saturation over all retained rows
	Full       int // rows at or above their parsed capacity
	Measurable int // rows where both count and capacity parse
}

// Failed reports whether this cycle produced no usable snapshot.
func (s *CycleSnapshot) Failed() bool {
	return s.Err != nil
}

// View defines the interface for presenting poll cycles.
type View interface {
	RenderCycle(snapshot *CycleSnapshot)
	Shutdown()
	Done() <-chan struct{} // Signals view has exited (e.g., user pressed quit)
}

// FormatDuration formats duration with seconds precision.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s > 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}
