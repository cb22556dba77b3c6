package tui

import (
	"github.com/charmbracelet/bubbles/key"
	bubbleprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the main bubbletea model for the TUI
type Model struct {
	width, height int
	hasData       bool
	quitting      bool

	spinner         spinner.Model
	keys            KeyMap
	watchInfo       *WatchInfo
	saturationBar   *SaturationBar
	seatStats       *SeatStats
	changesTable    *ChangesTable
	changesViewport viewport.Model
	statusbar       *Statusbar
}

// NewModel creates a new TUI model
func NewModel() Model {
	keys := DefaultKeyMap()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorGreen)
	return Model{
		spinner:         s,
		keys:            keys,
		watchInfo:       NewWatchInfo(),
		saturationBar:   NewSaturationBar(),
		seatStats:       NewSeatStats(),
		changesTable:    NewChangesTable(),
		changesViewport: viewport.New(0, 0),
		statusbar:       NewStatusbar(keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.spinner.Tick)
}

// Update implements tea.Model
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch t := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = t.Width, t.Height
		m.syncViewport()

	case tea.KeyMsg:
		if key.Matches(t, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(t, m.keys.Scroll) {
			var cmd tea.Cmd
			m.changesViewport, cmd = m.changesViewport.Update(teaMsg)
			cmds = append(cmds, cmd)
		}

	case SnapshotMsg:
		m.hasData = true
		cmds = append(cmds,
			m.watchInfo.Update(t),
			m.saturationBar.Update(t),
			m.seatStats.Update(t),
			m.changesTable.Update(t),
			m.statusbar.Update(t),
		)
		m.syncViewport()

	case spinner.TickMsg:
		if !m.hasData {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(teaMsg)
			cmds = append(cmds, cmd)
		}

	case TickMsg:
		cmds = append(cmds,
			m.watchInfo.Update(t),
			tickCmd(),
		)
		m.syncViewport()

	case bubbleprogress.FrameMsg:
		cmds = append(cmds, m.saturationBar.Update(t))

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, tea.Batch(cmds...)
}

// syncViewport sizes the changes viewport and loads the current table, so
// scroll offsets clamp against real content rather than last frame's copy.
func (m *Model) syncViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}

	panelHFrame := panelPaddingStyle.GetHorizontalFrameSize()
	panelVFrame := panelPaddingStyle.GetVerticalFrameSize()
	contentWidth := m.width - panelHFrame

	topH := max(lipgloss.Height(m.watchInfo.View()), lipgloss.Height(m.seatStats.View()))
	changesH := m.height - StatusbarH - ProgressH - topH

	m.changesTable.SetWidth(contentWidth)
	m.changesViewport.Width = contentWidth
	m.changesViewport.Height = max(0, changesH-panelVFrame)
	m.changesViewport.SetContent(m.changesTable.View())
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if !m.hasData {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+"Connecting...")
	}

	// Layout:
	// ┌─────────────────────────────┐
	// │         statusbar           │ StatusbarH
	// ┝━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┥ ProgressH (statusbar border)
	// │  watchInfo   │  seatStats   │ topH (content + padding)
	// ├──────────────┴──────────────┤
	// │        changesTable         │ changesH (flex)
	// └─────────────────────────────┘

	// Layout calculations using style frame sizes
	panelHFrame := panelPaddingStyle.GetHorizontalFrameSize()
	contentWidth := m.width - panelHFrame

	// Render content-sized components
	info := m.watchInfo.View()
	stats := m.seatStats.View()

	// Calculate top row dimensions (no top padding for top panels)
	statsW := lipgloss.Width(stats) + panelHFrame
	infoW := m.width - statsW
	topH := max(lipgloss.Height(info), lipgloss.Height(stats))

	// Calculate flex height for changes
	changesH := m.height - StatusbarH - ProgressH - topH

	// Size remaining flex components
	m.saturationBar.SetWidth(contentWidth)
	m.statusbar.SetWidth(contentWidth)

	// Compose layout
	statusRow := rowPaddingStyle.Render(m.statusbar.View())
	saturationRow := rowPaddingStyle.Render(m.saturationBar.View())
	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		topPanelPaddingStyle.Width(infoW).Height(topH).Render(info),
		topPanelPaddingStyle.Width(statsW).Height(topH).Render(stats),
	)
	changesRow := panelPaddingStyle.Width(m.width).Height(changesH).Render(m.changesViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		statusRow,
		saturationRow,
		topRow,
		changesRow,
	)
}
