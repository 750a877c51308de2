package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/kmon/internal/metric"
)

// SeverityStyle maps an engine severity to its display style. The
// engine itself never emits ANSI; this is where its tags become color.
func SeverityStyle(s metric.Severity) lipgloss.Style {
	switch s {
	case metric.SeverityOK:
		return SuccessStyle()
	case metric.SeverityAlert:
		return ErrorStyle()
	case metric.SeverityMuted:
		return MutedStyle()
	default:
		return lipgloss.NewStyle()
	}
}

// RenderLine renders one summary line for plain CLI output, applying
// the severity color to the value only.
func RenderLine(line metric.Line) string {
	value := SeverityStyle(line.Severity).Render(line.Value)
	if line.Label == "" {
		return value
	}
	return line.Label + ": " + value
}
