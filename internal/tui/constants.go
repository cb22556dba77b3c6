// Package tui provides the terminal user interface components.
package tui

import "github.com/charmbracelet/lipgloss"

// Color constants used throughout the TUI.
const (
	ColorGray  = lipgloss.Color("#888888") // muted text, labels, headers
	ColorGreen = lipgloss.Color("#28D223") // freed seats, accents
	ColorBlue  = lipgloss.Color("#0493F8") // waiting, neutral changes
	ColorRed   = lipgloss.Color("#FF4444") // taken seats, failures
)

// Shared table styles.
var (
	TableHeaderStyle = lipgloss.NewStyle().Foreground(ColorGray).Bold(true)
	TableLabelStyle  = lipgloss.NewStyle().Foreground(ColorGray)
)

// Layout styles.
var (
	// panelPaddingStyle is the standard padding for content panels (with top padding).
	panelPaddingStyle = lipgloss.NewStyle().PaddingTop(1).PaddingLeft(1).PaddingRight(1)

	// topPanelPaddingStyle is padding for top row panels (no top padding).
	topPanelPaddingStyle = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)

	// rowPaddingStyle is horizontal padding for single-row components (statusbar, saturation).
	rowPaddingStyle = lipgloss.NewStyle().Padding(0, 1)

	// sectionTitleStyle is the base style for section titles with underline.
	// Use .Width(w).Render(title) to apply.
	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorGray).
				BorderBottom(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorGray)
)

// Layout constants.
const (
	// StatusbarH is the statusbar height (content only, saturation bar acts as border).
	StatusbarH = 1
	// ProgressH is the saturation bar height.
	ProgressH = 1

	// WatchLabelColW is the watch info label column width.
	WatchLabelColW = 10
	// WatchColPadding is the watch info column padding.
	WatchColPadding = 2
	// WatchErrorMaxW caps the displayed fetch error message.
	WatchErrorMaxW = 60

	// SeatsLabelColW is the seat stats label column width.
	SeatsLabelColW = 9
	// SeatsColPadding is the seat stats column padding.
	SeatsColPadding = 2

	// ChangesTimeColW is the changes table timestamp column width.
	ChangesTimeColW = 8
	// ChangesMinColW is the minimum changes table column width.
	ChangesMinColW = 10
	// ChangesColPadding is the changes table column padding.
	ChangesColPadding = 2
	// ChangesMaxRows bounds the retained change history.
	ChangesMaxRows = 500
)
