package monitor

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// testSession builds a session writing to a buffer with a counting sleep,
// so animation timing is observable without waiting.
func testSession(rows int, ok bool) (*TerminalSession, *bytes.Buffer, *int) {
	var buf bytes.Buffer
	sleeps := new(int)
	s := &TerminalSession{
		out:   &buf,
		rows:  func() (int, bool) { return rows, ok },
		delay: time.Millisecond,
		sleep: func(time.Duration) { *sleeps++ },
	}
	return s, &buf, sleeps
}

func TestSessionBegin(t *testing.T) {
	s, buf, _ := testSession(40, true)
	s.Begin("TITLE")

	want := "\x1b[2J\x1b[2;40r\x1b[1;1HTITLE\n\x1b[2;1H"
	if got := buf.String(); got != want {
		t.Errorf("Begin() wrote %q, want %q", got, want)
	}
}

func TestSessionBeginFallbackHeight(t *testing.T) {
	s, buf, _ := testSession(0, false)
	s.Begin("TITLE")

	if !strings.Contains(buf.String(), "\x1b[2;24r") {
		t.Errorf("Begin() wrote %q, want fallback scroll region \\x1b[2;24r", buf.String())
	}
}

func TestTypeLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantOut    string
		wantSleeps int
	}{
		{"plain ascii", "ab", "ab\n", 2},
		{"trailing newline typed", "ab\n", "ab\n", 3},
		{"escape written whole without delay", "\x1b[36mab\x1b[0m", "\x1b[36mab\x1b[0m\n", 2},
		{"only escapes cost nothing", "\x1b[2J\x1b[0m", "\x1b[2J\x1b[0m\n", 0},
		{"wide runes are single glyphs", "計a", "計a\n", 2},
		{"empty line", "", "\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf, sleeps := testSession(24, true)
			s.TypeLine(tt.line)

			if got := buf.String(); got != tt.wantOut {
				t.Errorf("TypeLine(%q) wrote %q, want %q", tt.line, got, tt.wantOut)
			}
			if *sleeps != tt.wantSleeps {
				t.Errorf("TypeLine(%q) slept %d times, want %d", tt.line, *sleeps, tt.wantSleeps)
			}
		})
	}
}

func TestTeardownWritesResetOnce(t *testing.T) {
	s, buf, _ := testSession(40, true)
	s.Begin("TITLE")
	s.TypeLine("x")
	s.Teardown()
	s.Teardown()
	s.Teardown()

	if got := strings.Count(buf.String(), "\x1b[r"); got != 1 {
		t.Errorf("Teardown() wrote %d scroll region resets, want exactly 1", got)
	}
}

func TestTeardownWithoutBegin(t *testing.T) {
	s, buf, _ := testSession(40, true)
	s.Teardown()

	if got := buf.String(); got != "\x1b[r" {
		t.Errorf("Teardown() wrote %q, want %q", got, "\x1b[r")
	}
}
