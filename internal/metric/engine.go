package metric

import (
	"github.com/rileyhilliard/kmon/internal/sysfs"
)

// Driver is the classification and summarization logic for one device
// kind. Detect probes marker attributes only; content problems are
// Summarize's job.
type Driver interface {
	// Name identifies the driver in logs and machine-readable output.
	Name() string

	// Detect reports whether the device directory at dir belongs to
	// this kind.
	Detect(dir string) bool

	// Summarize reads the kind's attributes under dir and formats
	// them. It must recover every failure into placeholder text or
	// severity; it never returns an error and never panics.
	Summarize(dir string) Summary
}

// Engine pairs an attribute filesystem with the fixed driver list.
type Engine struct {
	fs      sysfs.FS
	drivers []Driver
}

// NewEngine constructs the engine over fs. The driver slice order is
// the classification priority: when a device exposes marker files of
// more than one kind, the earliest driver wins and the rest are never
// consulted.
func NewEngine(fs sysfs.FS) *Engine {
	return &Engine{
		fs: fs,
		drivers: []Driver{
			NewThermalDriver(fs),
			NewNetworkDriver(fs),
			NewPowerDriver(fs),
		},
	}
}

// Drivers returns the ordered driver list.
func (e *Engine) Drivers() []Driver {
	return e.drivers
}

// Classify returns the first driver that claims the device directory
// at dir, or (nil, false) when none does.
func (e *Engine) Classify(dir string) (Driver, bool) {
	for _, d := range e.drivers {
		if d.Detect(dir) {
			return d, true
		}
	}
	return nil, false
}

// Summarize classifies dir and returns the claiming driver's summary,
// or the neutral placeholder when no driver matches. It cannot fail:
// the worst outcome is a summary made of placeholder text.
func (e *Engine) Summarize(dir string) Summary {
	driver, ok := e.Classify(dir)
	if !ok {
		return Placeholder()
	}
	return driver.Summarize(dir)
}
