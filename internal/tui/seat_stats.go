package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/coursewatch/coursewatch/internal/types"
)

// SeatStats is the seat saturation table component.
type SeatStats struct {
	snapshot *types.CycleSnapshot
	changed  int
}

// NewSeatStats creates a new seat stats component.
func NewSeatStats() *SeatStats { return &SeatStats{} }

// Update handles messages. Failed cycles carry no seat stats, so the last
// good cycle stays on screen.
func (m *SeatStats) Update(teaMsg tea.Msg) tea.Cmd {
	if s, ok := teaMsg.(SnapshotMsg); ok && !s.Snapshot.Failed() {
		m.snapshot = s.Snapshot
		m.changed += len(s.Snapshot.Deltas)
	}
	return nil
}

// View renders the component.
func (m *SeatStats) View() string {
	if m.snapshot == nil {
		return ""
	}
	s := m.snapshot
	open := s.Measurable - s.Full

	maxVal := max(s.Courses, s.Measurable, s.Full, open, m.changed)
	numW := max(len(fmt.Sprintf("%d", maxVal)), len("TOT")) + SeatsColPadding
	colWidths := []int{SeatsLabelColW, numW}

	rows := [][]string{
		{"TRACKED", fmt.Sprintf("%d", s.Courses)},
		{"MEASURED", fmt.Sprintf("%d", s.Measurable)},
		{"FULL", fmt.Sprintf("%d", s.Full)},
		{"OPEN", fmt.Sprintf("%d", open)},
		{"CHANGED", fmt.Sprintf("%d", m.changed)},
	}

	return table.New().
		Headers("COURSES", "TOT").
		Rows(rows...).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		BorderColumn(false).BorderRow(false).BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Width(colWidths[col]).Align(lipgloss.Right)
			if row == table.HeaderRow {
				return style.Inherit(TableHeaderStyle)
			}
			if col == 0 {
				return style.Inherit(TableLabelStyle)
			}
			return style
		}).
		Render()
}
