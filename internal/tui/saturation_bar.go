package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// SaturationBar shows how much of the measured seat pool is full.
type SaturationBar struct {
	bar     progress.Model
	width   int
	hasData bool
}

// NewSaturationBar creates a new saturation component.
func NewSaturationBar() *SaturationBar {
	return &SaturationBar{
		bar: progress.New(
			progress.WithScaledGradient(string(ColorBlue), string(ColorRed)),
			progress.WithFillCharacters('─', '─'),
			progress.WithoutPercentage(),
		),
	}
}

// SetWidth sets the component width.
func (m *SaturationBar) SetWidth(w int) { m.width = w }

// Update handles messages.
func (m *SaturationBar) Update(teaMsg tea.Msg) tea.Cmd {
	switch t := teaMsg.(type) {
	case SnapshotMsg:
		if t.Snapshot.Failed() || t.Snapshot.Measurable == 0 {
			return nil
		}
		m.hasData = true
		return m.bar.SetPercent(float64(t.Snapshot.Full) / float64(t.Snapshot.Measurable))
	case progress.FrameMsg:
		model, cmd := m.bar.Update(t)
		if bar, ok := model.(progress.Model); ok {
			m.bar = bar
		}
		return cmd
	}
	return nil
}

// View renders the component.
func (m *SaturationBar) View() string {
	if !m.hasData {
		return ""
	}
	m.bar.Width = m.width
	return m.bar.View()
}
