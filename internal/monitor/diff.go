// This file contains per-cycle change detection against retained state.

package monitor

import (
	"strconv"

	"github.com/coursewatch/coursewatch/internal/querycourse"
	"github.com/coursewatch/coursewatch/internal/types"
)

// courseState is what one poll retains about a course for the next one.
type courseState struct {
	count    querycourse.Count
	capacity string
}

// Differ detects enrollment movement between consecutive snapshots. It owns
// the retained per-course state: entries are read for comparison, then
// unconditionally overwritten, never deleted. A course that vanishes from a
// snapshot keeps its last known state and diffs against it if it returns.
type Differ struct {
	seen    bool
	courses map[string]courseState
}

// NewDiffer creates a differ with empty retained state.
func NewDiffer() *Differ {
	return &Differ{courses: make(map[string]courseState)}
}

// Baseline reports whether no snapshot has been absorbed yet. The first
// snapshot only populates state and can never produce deltas.
func (d *Differ) Baseline() bool {
	return !d.seen
}

// Tracked returns the number of courses with retained state.
func (d *Differ) Tracked() int {
	return len(d.courses)
}

// Diff absorbs one snapshot and returns a delta for every course whose raw
// enrollment token differs from the retained one. Changing representation
// counts as a change even when the value is equal; direction is judged on
// parsed values only. Records without a course number are skipped. Rows
// sharing a course number compare against the state written by earlier
// rows in the same snapshot, last one wins.
func (d *Differ) Diff(courses []querycourse.Course) []types.Delta {
	var deltas []types.Delta
	for _, course := range courses {
		if course.CourseNo == "" {
			continue
		}

		cur := course.ChooseStudent
		if prev, ok := d.courses[course.CourseNo]; ok && prev.count.Raw != cur.Raw {
			deltas = append(deltas, types.Delta{
				Key:       course.CourseNo,
				Name:      orDash(course.CourseName),
				Count:     cur.String(),
				Prev:      prev.count.String(),
				Capacity:  orDash(course.Restrict2),
				Direction: direction(prev.count, cur),
				Room:      orDash(course.ClassRoomNo),
			})
		}

		d.courses[course.CourseNo] = courseState{count: cur, capacity: course.Restrict2}
	}
	d.seen = true
	return deltas
}

// Stats reports seat saturation over the retained state: how many rows have
// a parseable count and capacity, and how many of those are full.
func (d *Differ) Stats() (full, measurable int) {
	for _, st := range d.courses {
		limit, ok := parseCapacity(st.capacity)
		if !ok || !st.count.Valid {
			continue
		}
		measurable++
		if st.count.Value >= limit {
			full++
		}
	}
	return full, measurable
}

func direction(prev, cur querycourse.Count) types.Direction {
	switch {
	case prev.Valid && cur.Valid && cur.Value > prev.Value:
		return types.DirectionUp
	case prev.Valid && cur.Valid && cur.Value < prev.Value:
		return types.DirectionDown
	default:
		return types.DirectionFlat
	}
}

// parseCapacity reads a seat limit label. Only pure positive digit labels
// are usable; anything else means the limit is unknown.
func parseCapacity(label string) (int, bool) {
	if label == "" {
		return 0, false
	}
	for _, r := range label {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(label)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
