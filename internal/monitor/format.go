// This file contains the color layout of one changed-course line.

package monitor

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/coursewatch/coursewatch/internal/types"
)

// Classic 16-color codes. The animated view targets the native scrollback
// of whatever terminal the user has, so it never asks for more.
const (
	colorCourse = lipgloss.Color("6") // cyan
	colorSeats  = lipgloss.Color("3") // yellow
	colorUp     = lipgloss.Color("1") // red
	colorDown   = lipgloss.Color("2") // green
	colorRoom   = lipgloss.Color("2") // green
	colorTitle  = lipgloss.Color("5") // magenta
)

// RowFormatter renders deltas into fixed-width colored lines for the
// animated view. Styles are bound to a renderer with a forced ANSI profile,
// so the emitted bytes do not depend on the ambient terminal.
type RowFormatter struct {
	course lipgloss.Style // column 1: course number and name
	seats  lipgloss.Style // column 2: seat movement
	room   lipgloss.Style // column 3: classroom
	up     lipgloss.Style
	down   lipgloss.Style
	title  lipgloss.Style
}

// NewRowFormatter creates a formatter emitting plain ANSI colors.
func NewRowFormatter() *RowFormatter {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.ANSI)
	return &RowFormatter{
		course: r.NewStyle().Foreground(colorCourse),
		seats:  r.NewStyle().Foreground(colorSeats),
		room:   r.NewStyle().Foreground(colorRoom),
		up:     r.NewStyle().Foreground(colorUp),
		down:   r.NewStyle().Foreground(colorDown),
		title:  r.NewStyle().Foreground(colorTitle).Bold(true),
	}
}

// FormatTitle renders the pinned header text.
func (f *RowFormatter) FormatTitle(title string) string {
	return f.title.Render(title)
}

// FormatRow renders one delta as a fixed-layout line: a 54-cell course
// column, a 16-cell seat column with the count recolored by direction, and
// an unpadded classroom tail. The count substring is located inside the
// already padded seat column; when it cannot be found the column stays
// uniformly seat-colored.
func (f *RowFormatter) FormatRow(d types.Delta) string {
	col1 := padToWidth(fmt.Sprintf("%s | %s", d.Key, d.Name), CourseColWidth)
	col2 := padToWidth(fmt.Sprintf("%s %s / %s", d.Direction.Sign(), d.Count, d.Capacity), SeatColWidth)

	numStyle := f.seats
	switch d.Direction {
	case types.DirectionUp:
		numStyle = f.up
	case types.DirectionDown:
		numStyle = f.down
	}

	var b strings.Builder
	b.WriteString(f.course.Render(col1))
	if i := strings.Index(col2, d.Count); i >= 0 {
		if prefix := col2[:i]; prefix != "" {
			b.WriteString(f.seats.Render(prefix))
		}
		b.WriteString(numStyle.Render(d.Count))
		if suffix := col2[i+len(d.Count):]; suffix != "" {
			b.WriteString(f.seats.Render(suffix))
		}
	} else {
		b.WriteString(f.seats.Render(col2))
	}
	b.WriteString(f.room.Render("| " + d.Room))
	return b.String()
}
