package dash

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/kmon/internal/ui"
)

// Pane widths. The metric pane takes the remaining terminal width.
const (
	categoriesPaneWidth = 20
	devicesPaneWidth    = 30
	metricsPaneMinWidth = 28
)

// Base styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonPink).
			Bold(true)

	hostInfoStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorGlassBorder).
			Padding(0, 1)

	paneFocusedStyle = paneStyle.
				BorderForeground(ui.ColorNeonPink)

	paneTitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonCyan).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(ui.ColorPrimary).
				Bold(true)

	sentinelItemStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted).
				Italic(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)
)

// Selection markers
const (
	markerSelected   = "▸ "
	markerUnselected = "  "
)

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorNeonPink).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonPink).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)
)
