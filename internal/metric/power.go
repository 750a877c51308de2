package metric

import (
	"path/filepath"

	"github.com/rileyhilliard/kmon/internal/sysfs"
)

// PowerDriver summarizes power supplies: devices exposing a capacity
// attribute.
type PowerDriver struct {
	fs sysfs.FS
}

func NewPowerDriver(fs sysfs.FS) *PowerDriver {
	return &PowerDriver{fs: fs}
}

func (d *PowerDriver) Name() string {
	return "power"
}

func (d *PowerDriver) Detect(dir string) bool {
	return d.fs.Exists(filepath.Join(dir, "capacity"))
}

// Summarize always emits both lines. Capacity and status are free
// text with no parse step, so an absent attribute shows as an empty
// value rather than an error.
func (d *PowerDriver) Summarize(dir string) Summary {
	capacity := d.fs.ReadLine(filepath.Join(dir, "capacity"))
	status := d.fs.ReadLine(filepath.Join(dir, "status"))

	return Summary{
		Kind: d.Name(),
		Lines: []Line{
			{Label: "Battery Level", Value: capacity + "%"},
			{Label: "Status", Value: status},
		},
	}
}
