// This file contains the scroll region session and the typing animator.

package monitor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	// ANSI escape sequences for terminal control
	ansiClearScreen  = "\033[2J"    // Clear whole screen
	ansiCursorHome   = "\033[1;1H"  // Move cursor to row 1, column 1
	ansiCursorRowTwo = "\033[2;1H"  // Move cursor to row 2, column 1
	ansiRegionFormat = "\033[2;%dr" // Confine scrolling to rows 2..N
	ansiRegionReset  = "\033[r"     // Restore full-screen scrolling
)

// TerminalSession owns one sticky-header scroll region. Begin pins the
// title row and confines scrolling below it; Teardown restores the full
// screen. Leaving a region behind corrupts every later program in the same
// terminal, so Teardown must run on every exit path.
type TerminalSession struct {
	out   io.Writer
	rows  func() (int, bool)
	delay time.Duration
	sleep func(time.Duration)
	reset sync.Once
}

// NewTerminalSession creates a session writing to stdout with the given
// typing delay, measuring the real terminal height.
func NewTerminalSession(delay time.Duration) *TerminalSession {
	return &TerminalSession{
		out:   os.Stdout,
		rows:  stdoutRows,
		delay: delay,
		sleep: time.Sleep,
	}
}

// Begin clears the screen, prints the already styled title on row 1 and
// confines scrolling to the rows below it. Unknown terminal height falls
// back to a conservative default.
func (s *TerminalSession) Begin(title string) {
	rows, ok := s.rows()
	if !ok {
		rows = FallbackTerminalRows
	}
	fmt.Fprint(s.out, ansiClearScreen)
	fmt.Fprintf(s.out, ansiRegionFormat, rows)
	fmt.Fprint(s.out, ansiCursorHome)
	fmt.Fprintln(s.out, title)
	fmt.Fprint(s.out, ansiCursorRowTwo)
}

// TypeLine prints one line glyph by glyph with a short pause after each
// printable character. Escape sequences are written whole with no pause,
// so color changes cost no animation time and are never torn. A trailing
// newline is added when the line lacks one.
func (s *TerminalSession) TypeLine(line string) {
	for i := 0; i < len(line); {
		if n := matchEscape(line[i:]); n > 0 {
			fmt.Fprint(s.out, line[i:i+n])
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		fmt.Fprint(s.out, line[i:i+size])
		s.sleep(s.delay)
		i += size
	}
	if !strings.HasSuffix(line, "\n") {
		fmt.Fprintln(s.out)
	}
}

// Teardown restores full-screen scrolling. It writes the reset at most
// once, and is safe to call whether or not Begin ever ran.
func (s *TerminalSession) Teardown() {
	s.reset.Do(func() {
		fmt.Fprint(s.out, ansiRegionReset)
	})
}

// stdoutRows measures the terminal height behind stdout.
func stdoutRows() (int, bool) {
	_, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || rows <= 0 {
		return 0, false
	}
	return rows, true
}
