package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/coursewatch/coursewatch/internal/types"
	"github.com/mattn/go-runewidth"
)

var (
	changesUpStyle   = lipgloss.NewStyle().Foreground(ColorRed)
	changesDownStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	changesFlatStyle = lipgloss.NewStyle().Foreground(ColorBlue)
)

// changeEntry is one retained seat movement.
type changeEntry struct {
	at    time.Time
	delta types.Delta
}

// ChangesTable is the seat movement history component. Entries are kept
// newest first and capped at ChangesMaxRows.
type ChangesTable struct {
	width   int
	entries []changeEntry
	cycles  int
	total   int
}

// NewChangesTable creates a new changes component.
func NewChangesTable() *ChangesTable { return &ChangesTable{} }

// SetWidth sets the component width.
func (m *ChangesTable) SetWidth(w int) { m.width = w }

// Update handles messages.
func (m *ChangesTable) Update(teaMsg tea.Msg) tea.Cmd {
	t, ok := teaMsg.(SnapshotMsg)
	if !ok {
		return nil
	}
	m.cycles = t.Snapshot.Cycle
	if t.Snapshot.Failed() || len(t.Snapshot.Deltas) == 0 {
		return nil
	}

	fresh := make([]changeEntry, len(t.Snapshot.Deltas))
	for i, d := range t.Snapshot.Deltas {
		fresh[i] = changeEntry{at: t.Snapshot.Time, delta: d}
	}
	m.total += len(fresh)
	m.entries = append(fresh, m.entries...)
	if len(m.entries) > ChangesMaxRows {
		m.entries = m.entries[:ChangesMaxRows]
	}
	return nil
}

// View renders the component.
func (m *ChangesTable) View() string {
	title := m.buildChangesTitle()

	if len(m.entries) == 0 {
		return title + "\n" + TableLabelStyle.Render("No changes yet")
	}

	// Calculate column widths
	dirW := len("DIR")
	courseW, seatsW, roomW := ChangesMinColW, ChangesMinColW, len("ROOM")
	for _, e := range m.entries {
		courseW = max(courseW, lipgloss.Width(e.delta.Key))
		seatsW = max(seatsW, lipgloss.Width(formatSeats(e.delta)))
		roomW = max(roomW, lipgloss.Width(e.delta.Room))
	}

	nameW := max(ChangesMinColW, m.width-ChangesTimeColW-dirW-courseW-seatsW-roomW-5*ChangesColPadding)
	colWidths := []int{
		ChangesTimeColW + ChangesColPadding, dirW + ChangesColPadding,
		courseW + ChangesColPadding, nameW + ChangesColPadding,
		seatsW + ChangesColPadding, roomW,
	}

	// Build table rows
	tableRows := make([][]string, len(m.entries))
	for i, e := range m.entries {
		tableRows[i] = []string{
			e.at.Format("15:04:05"),
			renderDirection(e.delta.Direction),
			e.delta.Key,
			truncateStr(e.delta.Name, nameW),
			formatSeats(e.delta),
			e.delta.Room,
		}
	}

	tbl := table.New().
		Headers("TIME", "DIR", "COURSE", "NAME", "SEATS", "ROOM").
		Rows(tableRows...).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		BorderColumn(false).BorderRow(false).BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Width(colWidths[col])
			if col == 4 {
				style = style.Align(lipgloss.Right)
			}

			if row == table.HeaderRow {
				return style.Inherit(TableHeaderStyle)
			}

			return style
		}).
		Render()

	return title + "\n" + tbl
}

// buildChangesTitle creates the section title with movement stats.
func (m *ChangesTable) buildChangesTitle() string {
	stats := fmt.Sprintf("TOTAL %d  CYCLES %d", m.total, m.cycles)
	titleContent := "Changes" + lipgloss.PlaceHorizontal(m.width-lipgloss.Width("Changes"), lipgloss.Right, stats)

	return sectionTitleStyle.Width(m.width).Render(titleContent)
}

// formatSeats renders one seat movement as prev→current over capacity.
func formatSeats(d types.Delta) string {
	return fmt.Sprintf("%s→%s /%s", d.Prev, d.Count, d.Capacity)
}

func renderDirection(d types.Direction) string {
	switch d {
	case types.DirectionUp:
		return changesUpStyle.Render(d.Symbol())
	case types.DirectionDown:
		return changesDownStyle.Render(d.Symbol())
	default:
		return changesFlatStyle.Render(d.Symbol())
	}
}

func truncateStr(s string, maxW int) string {
	return runewidth.Truncate(s, maxW, "...")
}
