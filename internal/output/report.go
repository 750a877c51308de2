// Package output shapes metric summaries into renderable reports.
//
// A Report is the serialization-friendly view of a device inspection:
// the same struct feeds the human-readable text renderer, the JSON
// envelope, and the YAML marshaller, so all three formats stay in sync.
package output

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/kmon/internal/metric"
	"github.com/rileyhilliard/kmon/internal/ui"
)

// MetricLine is one metric in serialized form. Severity is the lowercase
// string form ("none", "ok", "alert", "muted") rather than the internal
// enum so consumers never see bare integers.
type MetricLine struct {
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Value    string `json:"value" yaml:"value"`
	Severity string `json:"severity" yaml:"severity"`
}

// Report describes a single device inspection.
type Report struct {
	Category string       `json:"category" yaml:"category"`
	Device   string       `json:"device" yaml:"device"`
	Path     string       `json:"path" yaml:"path"`
	Driver   string       `json:"driver,omitempty" yaml:"driver,omitempty"`
	Metrics  []MetricLine `json:"metrics" yaml:"metrics"`
}

// NewReport flattens a metric summary into a Report.
func NewReport(category, device, path string, summary metric.Summary) Report {
	report := Report{
		Category: category,
		Device:   device,
		Path:     path,
		Driver:   summary.Kind,
		Metrics:  make([]MetricLine, 0, len(summary.Lines)),
	}
	for _, line := range summary.Lines {
		report.Metrics = append(report.Metrics, MetricLine{
			Label:    line.Label,
			Value:    line.Value,
			Severity: line.Severity.String(),
		})
	}
	return report
}

// RenderText renders the human-readable form of a device inspection.
// Severity colors come from the shared style table, so the text output
// matches what the dashboard shows for the same device.
func RenderText(report Report, summary metric.Summary) string {
	var b strings.Builder

	title := fmt.Sprintf("%s / %s", report.Category, report.Device)
	b.WriteString(ui.InfoStyle().Bold(true).Render(title))
	if report.Driver != "" {
		b.WriteString("  " + ui.MutedStyle().Render("["+report.Driver+"]"))
	}
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle().Render(report.Path))
	b.WriteString("\n\n")

	for _, line := range summary.Lines {
		b.WriteString("  " + ui.RenderLine(line) + "\n")
	}

	return b.String()
}

// MarshalYAML serializes the report as a YAML document.
func MarshalYAML(report Report) ([]byte, error) {
	return yaml.Marshal(report)
}
