package metric

import (
	"path/filepath"

	"github.com/rileyhilliard/kmon/internal/sysfs"
)

// NetworkDriver summarizes network interfaces: devices exposing an
// operstate attribute.
type NetworkDriver struct {
	fs sysfs.FS
}

func NewNetworkDriver(fs sysfs.FS) *NetworkDriver {
	return &NetworkDriver{fs: fs}
}

func (d *NetworkDriver) Name() string {
	return "network"
}

func (d *NetworkDriver) Detect(dir string) bool {
	return d.fs.Exists(filepath.Join(dir, "operstate"))
}

func (d *NetworkDriver) Summarize(dir string) Summary {
	summary := Summary{Kind: d.Name()}

	// Anything other than exactly "up" counts as down, including an
	// empty or unreadable operstate.
	state := d.fs.ReadLine(filepath.Join(dir, "operstate"))
	severity := SeverityAlert
	if state == "up" {
		severity = SeverityOK
	}
	summary.Lines = append(summary.Lines, Line{Label: "Link State", Value: state, Severity: severity})

	if mac := d.fs.ReadLine(filepath.Join(dir, "address")); mac != "" {
		summary.Lines = append(summary.Lines, Line{Label: "MAC", Value: mac})
	}

	if rx := d.fs.ReadLine(filepath.Join(dir, "statistics", "rx_bytes")); rx != "" {
		summary.Lines = append(summary.Lines, Line{Label: "Data Rx", Value: rx + " bytes"})
	}

	return summary
}
