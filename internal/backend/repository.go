// Package backend implements an in-memory stand-in for the QueryCourse
// service, used to exercise the watcher without hammering the real upstream.
//
// This file contains the course repository and the enrollment simulation.
package backend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/coursewatch/coursewatch/internal/querycourse"
)

// ErrNotReady indicates the repository has not loaded course data yet.
var ErrNotReady = errors.New("course data not initialized")

// simulationShare is the fraction of courses touched per simulation batch;
// one pass over the full catalog takes about a minute at one batch per second.
const simulationShare = 60

// Repository holds an immutable course catalog with mutable seat counts.
// All methods are safe for concurrent use.
type Repository struct {
	mu          sync.RWMutex
	courses     []querycourse.Course
	initialized bool
	cursor      int
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Load fetches the semester's full catalog from the upstream service and
// replaces the stored courses.
func (r *Repository) Load(ctx context.Context, client *querycourse.Client, semester string) error {
	courses, err := client.Search(ctx, querycourse.DefaultQuery(semester))
	if err != nil {
		return fmt.Errorf("load semester %q: %w", semester, err)
	}
	for i := range courses {
		sanitize(&courses[i])
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses = courses
	r.initialized = true
	r.cursor = 0
	return nil
}

// Ready reports whether course data has been loaded.
func (r *Repository) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.initialized
}

// Count returns the number of stored courses.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.courses)
}

// Cursor returns the simulation position within the catalog.
func (r *Repository) Cursor() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cursor
}

// Clear drops all loaded data.
func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses = nil
	r.initialized = false
	r.cursor = 0
}

// Search filters the catalog the way the upstream service does: semester and
// dimension match exactly, course number matches case-insensitively by
// substring, name and teacher by substring. Blank filters match everything.
func (r *Repository) Search(q querycourse.QueryRequest) ([]querycourse.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.initialized {
		return nil, ErrNotReady
	}

	no := strings.ToUpper(q.CourseNo)
	name := strings.TrimSpace(q.CourseName)
	// The watcher's standing query carries a single-space teacher, which
	// means "any teacher", not "teachers with a space in their name".
	teacher := strings.TrimSpace(q.CourseTeacher)

	matches := make([]querycourse.Course, 0, len(r.courses))
	for _, c := range r.courses {
		if q.Semester != "" && c.Semester != q.Semester {
			continue
		}
		if no != "" && !strings.Contains(strings.ToUpper(c.CourseNo), no) {
			continue
		}
		if name != "" && !strings.Contains(c.CourseName, name) {
			continue
		}
		if teacher != "" && !strings.Contains(c.CourseTeacher, teacher) {
			continue
		}
		if q.Dimension != "" && c.Dimension != q.Dimension {
			continue
		}
		matches = append(matches, c)
	}
	return matches, nil
}

// SimulateBatch mutates one batch of seat counts to look like a live
// registration period: half the touched courses jump to full, the rest lose
// one or two students. The cursor walks the catalog so every course is
// eventually touched, wrapping at the end.
func (r *Repository) SimulateBatch(rng *rand.Rand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized || len(r.courses) == 0 {
		return
	}

	total := len(r.courses)
	batchSize := (total + simulationShare - 1) / simulationShare

	idx := make([]int, 0, batchSize)
	for i := r.cursor; i < r.cursor+batchSize && i < total; i++ {
		idx = append(idx, i)
	}
	if needed := batchSize - len(idx); needed > 0 {
		for i := 0; i < needed; i++ {
			idx = append(idx, i)
		}
		r.cursor = needed
	} else {
		r.cursor += batchSize
	}

	for _, i := range idx {
		c := &r.courses[i]
		capacity := capacityOf(*c)
		if capacity <= 0 {
			continue
		}

		current := c.ChooseStudent.Value
		switch roll := rng.Float64(); {
		case roll < 0.5: // jump to full
			current = max(0, capacity-c.ThreeStudent)
		case roll < 0.9: // one student drops
			current = max(0, current-1)
		default: // two students drop
			current = max(0, current-2)
		}

		c.ChooseStudent = querycourse.NewCount(current)
		c.AllStudent = current + c.ThreeStudent
	}
}

// sanitize normalizes one fetched record for simulation. Seat counts must be
// numeric for the arithmetic, so null and junk figures reset to zero; string
// fields need no help because null decodes to the empty string.
func sanitize(c *querycourse.Course) {
	if !c.ChooseStudent.Valid {
		c.ChooseStudent = querycourse.NewCount(0)
	}
}

// capacityOf parses the seat limit label. Blank or non-numeric labels mean
// the course has no simulatable capacity.
func capacityOf(c querycourse.Course) int {
	s := c.Restrict2
	if s == "" {
		return 0
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
