// Package monitor provides live course enrollment watching.
//
// This file contains the watcher configuration and shared constants.
package monitor

import (
	"time"

	"github.com/coursewatch/coursewatch/internal/querycourse"
)

const (
	// DefaultPollInterval matches the upstream's tolerated request rate
	DefaultPollInterval = 3 * time.Second
	// DefaultTypingDelay is the pause after each printed glyph
	DefaultTypingDelay = time.Millisecond
	// DefaultSemester is the term queried when none is configured
	DefaultSemester = "1142"
	// DefaultTitle is the pinned header text
	DefaultTitle = "加退選即時通"
	// CourseColWidth is the display width of the course number and name column
	CourseColWidth = 54
	// SeatColWidth is the display width of the seat movement column
	SeatColWidth = 16
	// FallbackTerminalRows is used when the terminal size cannot be measured
	FallbackTerminalRows = 24
)

// Config holds configuration parameters for the course watcher.
// Use DefaultConfig() to obtain sensible defaults, then override from the
// environment and flags as needed.
type Config struct {
	URL        string        `env:"COURSEWATCH_URL"`
	Semester   string        `env:"COURSEWATCH_SEMESTER"`
	CourseNo   string        `env:"COURSEWATCH_COURSE_NO"`   // narrow the watch to matching course numbers
	CourseName string        `env:"COURSEWATCH_COURSE_NAME"` // narrow the watch to matching titles
	Teacher    string        `env:"COURSEWATCH_TEACHER"`     // narrow the watch to matching teachers
	Interval   time.Duration `env:"COURSEWATCH_INTERVAL"`
	Title      string        `env:"COURSEWATCH_TITLE"`

	TypingDelay time.Duration
	LineMode    bool // If true, use line-based output format (default: false, animated mode)
	TUIMode     bool // If true, use the full-screen dashboard instead of animated output
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		URL:         querycourse.DefaultURL,
		Semester:    DefaultSemester,
		Interval:    DefaultPollInterval,
		Title:       DefaultTitle,
		TypingDelay: DefaultTypingDelay,
	}
}

// Query builds the standing search request for this configuration.
func (c Config) Query() querycourse.QueryRequest {
	q := querycourse.DefaultQuery(c.Semester)
	q.CourseNo = c.CourseNo
	q.CourseName = c.CourseName
	if c.Teacher != "" {
		q.CourseTeacher = c.Teacher
	}
	return q
}
