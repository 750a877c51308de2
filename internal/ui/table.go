package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorMuted),
		Border: lipgloss.NewStyle().
			Foreground(ColorGlassBorder),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorGlassBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	s.Selected = s.Selected.
		Foreground(ColorPrimary).
		Background(ColorMuted).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// DeviceTableRow is one device in the list output.
type DeviceTableRow struct {
	Name     string // Device directory name
	Driver   string // Claiming driver, empty when none
	Preview  string // First summary line
	Alert    bool   // Preview line carries an alert
	Sentinel bool   // Placeholder for a missing category
}

// RenderDeviceTable renders the device listing of one category.
// Claimed devices get a filled marker, unclaimed a hollow one, and
// the sentinel a failure marker.
func RenderDeviceTable(rows []DeviceTableRow) string {
	if len(rows) == 0 {
		return MutedStyle().Render("No devices found") + "\n"
	}

	driverStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	var output string
	for _, row := range rows {
		var marker string
		switch {
		case row.Sentinel:
			marker = ErrorStyle().Render(SymbolFail)
		case row.Driver == "":
			marker = MutedStyle().Render(SymbolPending)
		default:
			marker = SuccessStyle().Render(SymbolComplete)
		}

		driver := row.Driver
		if driver == "" {
			driver = "-"
		}

		preview := MutedStyle().Render(row.Preview)
		if row.Alert {
			preview = ErrorStyle().Render(row.Preview)
		}

		output += "  " + marker + " " +
			padRight(row.Name, 22) +
			padRight(driverStyle.Render(driver), 10) +
			preview + "\n"
	}

	return output
}

// CheckRow represents a row in the doctor diagnostic output.
type CheckRow struct {
	Status     string // "pass", "warn", "fail"
	Category   string // Check category
	Message    string // Check result message
	Suggestion string // Suggestion for fixing (if failed)
}

// RenderCheckTable renders doctor check results grouped by category.
func RenderCheckTable(rows []CheckRow) string {
	if len(rows) == 0 {
		return "No checks to display"
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	var output string

	// Group by category, preserving first-seen order
	categories := make(map[string][]CheckRow)
	categoryOrder := []string{}
	for _, row := range rows {
		if _, exists := categories[row.Category]; !exists {
			categoryOrder = append(categoryOrder, row.Category)
		}
		categories[row.Category] = append(categories[row.Category], row)
	}

	for _, cat := range categoryOrder {
		output += headerStyle.Render(cat) + "\n"

		for _, row := range categories[cat] {
			var statusIcon string
			switch row.Status {
			case "pass":
				statusIcon = SuccessStyle().Render(SymbolComplete)
			case "warn":
				statusIcon = WarningStyle().Render(SymbolComplete)
			case "fail":
				statusIcon = ErrorStyle().Render(SymbolFail)
			default:
				statusIcon = MutedStyle().Render(SymbolPending)
			}

			output += "  " + statusIcon + " " + row.Message + "\n"

			if row.Suggestion != "" && row.Status != "pass" {
				output += "    " + MutedStyle().Render(row.Suggestion) + "\n"
			}
		}
		output += "\n"
	}

	return output
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	padding := width - visibleLen
	for i := 0; i < padding; i++ {
		s += " "
	}
	return s
}
