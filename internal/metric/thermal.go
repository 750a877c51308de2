package metric

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rileyhilliard/kmon/internal/sysfs"
)

// thermalAlertC is the threshold above which a zone temperature is
// flagged. Comparison happens on the converted value, not the rounded
// display text, so 60.001°C alerts even though it renders as "60.0".
const thermalAlertC = 60.0

// ThermalDriver summarizes thermal zones: devices exposing a temp
// attribute holding millidegrees Celsius.
type ThermalDriver struct {
	fs sysfs.FS
}

func NewThermalDriver(fs sysfs.FS) *ThermalDriver {
	return &ThermalDriver{fs: fs}
}

func (d *ThermalDriver) Name() string {
	return "thermal"
}

func (d *ThermalDriver) Detect(dir string) bool {
	return d.fs.Exists(filepath.Join(dir, "temp"))
}

func (d *ThermalDriver) Summarize(dir string) Summary {
	summary := Summary{Kind: d.Name()}

	raw := d.fs.ReadLine(filepath.Join(dir, "temp"))
	milli, err := strconv.Atoi(raw)
	if err != nil {
		// Covers unreadable and empty temp files too: ReadLine
		// degrades those to "", which fails the parse.
		summary.Lines = append(summary.Lines, Line{Value: "Parse Error", Severity: SeverityAlert})
		return summary
	}

	degrees := float64(milli) / 1000.0
	severity := SeverityOK
	if degrees > thermalAlertC {
		severity = SeverityAlert
	}
	summary.Lines = append(summary.Lines, Line{
		Label:    "Temperature",
		Value:    fmt.Sprintf("%.1f °C", degrees),
		Severity: severity,
	})

	if sensorType := d.fs.ReadLine(filepath.Join(dir, "type")); sensorType != "" {
		summary.Lines = append(summary.Lines, Line{Label: "Sensor Type", Value: sensorType})
	}

	return summary
}
