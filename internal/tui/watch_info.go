package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coursewatch/coursewatch/internal/types"
)

var (
	watchLabelStyle   = lipgloss.NewStyle().Foreground(ColorGray)
	watchHealthyStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	watchFailedStyle  = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
)

// WatchInfo is the watch status component.
type WatchInfo struct {
	snapshot *types.CycleSnapshot
	started  time.Time
}

// NewWatchInfo creates a new watch status component.
func NewWatchInfo() *WatchInfo { return &WatchInfo{} }

// Update handles messages.
func (m *WatchInfo) Update(teaMsg tea.Msg) tea.Cmd {
	if s, ok := teaMsg.(SnapshotMsg); ok {
		m.snapshot = s.Snapshot
		if m.started.IsZero() {
			m.started = s.Snapshot.Time
		}
	}
	return nil
}

// View renders the component.
func (m *WatchInfo) View() string {
	if m.snapshot == nil {
		return ""
	}
	s := m.snapshot
	rows := []string{
		watchRow("Status", renderWatchStatus(s)),
		watchRow("Endpoint", s.URL),
		watchRow("Started", fmt.Sprintf("%s (%s ago)", m.started.Format("15:04:05"), types.FormatDuration(time.Since(m.started)))),
		watchRow("Last poll", fmt.Sprintf("%s (%s ago)", s.Time.Format("15:04:05"), types.FormatDuration(time.Since(s.Time)))),
	}
	if s.Failed() {
		rows = append(rows, watchRow("Error", truncateStr(s.Err.Error(), WatchErrorMaxW)))
	}
	return strings.Join(rows, "\n")
}

func watchRow(label, value string) string {
	return watchLabelStyle.Render(label) + strings.Repeat(" ", WatchLabelColW-len(label)+WatchColPadding) + value
}

func renderWatchStatus(s *types.CycleSnapshot) string {
	if s.Failed() {
		return watchFailedStyle.Render("Failing")
	}
	return watchHealthyStyle.Render("Watching")
}
