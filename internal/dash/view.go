package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/kmon/internal/ui"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCategoriesPane(),
		m.renderDevicesPane(),
		m.renderMetricsPane(),
	)
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with the host info suffix.
func (m Model) renderHeader() string {
	header := titleStyle.Render("kmon")
	if line := m.host.Line(); line != "" {
		header += hostInfoStyle.Render("  " + line)
	}
	return header
}

// renderCategoriesPane renders the fixed category menu.
func (m Model) renderCategoriesPane() string {
	lines := []string{paneTitleStyle.Render("Categories")}
	for i, cat := range m.categories {
		lines = append(lines, m.renderItem(cat.Label, i == m.categoryIdx, false, categoriesPaneWidth))
	}
	return m.paneFor(PaneCategories).
		Width(categoriesPaneWidth).
		Height(m.paneContentHeight()).
		Render(strings.Join(lines, "\n"))
}

// renderDevicesPane renders the device menu for the selected category,
// windowed so the selection stays visible on short terminals.
func (m Model) renderDevicesPane() string {
	lines := []string{paneTitleStyle.Render(m.CurrentCategory().Label)}

	if len(m.devices) == 0 {
		lines = append(lines, itemStyle.Render(markerUnselected+"(no devices)"))
	} else {
		visible := m.paneContentHeight() - 1
		start, end := windowBounds(len(m.devices), m.deviceIdx, visible)
		for i := start; i < end; i++ {
			device := m.devices[i]
			lines = append(lines, m.renderItem(device.Name, i == m.deviceIdx, device.Sentinel, devicesPaneWidth))
		}
	}

	return m.paneFor(PaneDevices).
		Width(devicesPaneWidth).
		Height(m.paneContentHeight()).
		Render(strings.Join(lines, "\n"))
}

// renderMetricsPane renders the live summary for the selected device.
func (m Model) renderMetricsPane() string {
	summary, _ := m.selectedSummary()

	title := "Metrics"
	if device, ok := m.SelectedDevice(); ok && !device.Sentinel {
		title = device.Name
	}

	lines := []string{paneTitleStyle.Render(title)}
	if summary.Kind != "" {
		lines = append(lines, pathStyle.Render("driver: "+summary.Kind))
	}
	lines = append(lines, "")
	for _, line := range summary.Lines {
		lines = append(lines, ui.RenderLine(line))
	}

	// The metric pane is display-only and never takes focus.
	return paneStyle.
		Width(m.metricsPaneWidth()).
		Height(m.paneContentHeight()).
		Render(strings.Join(lines, "\n"))
}

// renderFooter renders the selected device path and key hints.
func (m Model) renderFooter() string {
	var b strings.Builder

	if _, path := m.selectedSummary(); path != "" {
		b.WriteString(pathStyle.Render(" " + path))
		b.WriteString("\n")
	}

	var hints []string
	for _, binding := range keys.ShortHelp() {
		h := binding.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	b.WriteString(footerStyle.Render(strings.Join(hints, " | ")))

	return b.String()
}

// renderItem renders one menu row with its selection marker.
func (m Model) renderItem(label string, selected, sentinel bool, paneWidth int) string {
	label = truncate(label, paneWidth-4)

	switch {
	case sentinel && selected:
		return markerSelected + sentinelItemStyle.Bold(true).Render(label)
	case sentinel:
		return markerUnselected + sentinelItemStyle.Render(label)
	case selected:
		return markerSelected + selectedItemStyle.Render(label)
	default:
		return markerUnselected + itemStyle.Render(label)
	}
}

// paneFor returns the border style for a pane, highlighted when focused.
func (m Model) paneFor(p Pane) lipgloss.Style {
	if m.focus == p {
		return paneFocusedStyle
	}
	return paneStyle
}

// paneContentHeight returns the inner pane height for the current
// terminal size, or 0 (natural height) before the first resize.
func (m Model) paneContentHeight() int {
	if m.height == 0 {
		return 0
	}
	// header + footer hints + footer path + borders
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// metricsPaneWidth returns the width left over for the metric pane.
func (m Model) metricsPaneWidth() int {
	if m.width == 0 {
		return metricsPaneMinWidth + 8
	}
	// Each pane carries two border columns.
	w := m.width - (categoriesPaneWidth + 2) - (devicesPaneWidth + 2) - 2
	if w < metricsPaneMinWidth {
		w = metricsPaneMinWidth
	}
	return w
}

// windowBounds computes the visible [start, end) slice of a list so the
// selected entry stays in view.
func windowBounds(total, selected, visible int) (int, int) {
	if visible <= 0 || total <= visible {
		return 0, total
	}
	start := selected - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start, start + visible
}

// truncate shortens a label to max display runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 2 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
