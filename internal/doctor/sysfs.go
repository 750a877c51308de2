package doctor

import (
	"fmt"
	"os"

	"github.com/prometheus/procfs"
	"golang.org/x/term"

	"github.com/rileyhilliard/kmon/internal/catalog"
	"github.com/rileyhilliard/kmon/internal/metric"
	"github.com/rileyhilliard/kmon/internal/sysfs"
	"github.com/rileyhilliard/kmon/internal/util"
)

// ClassRootCheck verifies the sysfs class root exists at all. Every
// other check is noise when this one fails.
type ClassRootCheck struct {
	FS   sysfs.FS
	Root string
}

// Name returns the check identifier.
func (c *ClassRootCheck) Name() string {
	return "class_root"
}

// Category returns the check category.
func (c *ClassRootCheck) Category() string {
	return "SYSFS"
}

// Run executes the class root check.
func (c *ClassRootCheck) Run() CheckResult {
	if !c.FS.Exists(c.Root) {
		return CheckResult{
			Name:       c.Name(),
			Category:   c.Category(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("sysfs class root missing: %s", c.Root),
			Suggestion: "Mount sysfs or point --sysfs-root (KMON_SYSFS_ROOT) at a class directory",
		}
	}
	return CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   StatusPass,
		Message:  fmt.Sprintf("sysfs class root: %s", c.Root),
	}
}

// CategoryCheck reports whether one device category is present and how
// many devices it exposes. Absent categories are normal on many machines
// (a desktop has no battery), so absence warns instead of failing.
type CategoryCheck struct {
	FS  sysfs.FS
	Cat catalog.Category
}

// Name returns the check identifier.
func (c *CategoryCheck) Name() string {
	return fmt.Sprintf("category_%s", c.Cat.Base())
}

// Category returns the check category.
func (c *CategoryCheck) Category() string {
	return "CATEGORIES"
}

// Run executes the category presence check.
func (c *CategoryCheck) Run() CheckResult {
	devices := catalog.ListDevices(c.FS, c.Cat.Root)
	if len(devices) == 1 && devices[0].Sentinel {
		return CheckResult{
			Name:       c.Name(),
			Category:   c.Category(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s (%s): not present on this system", c.Cat.Label, c.Cat.Base()),
			Suggestion: "Device classes vary by hardware; absent categories show a placeholder entry",
		}
	}
	return CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   StatusPass,
		Message: fmt.Sprintf("%s (%s): %d %s", c.Cat.Label, c.Cat.Base(),
			len(devices), util.Pluralize(len(devices), "device", "devices")),
	}
}

// DriverCoverageCheck classifies every enumerable device and reports how
// many a driver claims. Zero coverage usually means --sysfs-root points
// at the wrong tree.
type DriverCoverageCheck struct {
	FS         sysfs.FS
	Engine     *metric.Engine
	Categories []catalog.Category
}

// Name returns the check identifier.
func (c *DriverCoverageCheck) Name() string {
	return "driver_coverage"
}

// Category returns the check category.
func (c *DriverCoverageCheck) Category() string {
	return "DRIVERS"
}

// Run executes the driver coverage check.
func (c *DriverCoverageCheck) Run() CheckResult {
	total := 0
	claimed := 0
	for _, cat := range c.Categories {
		for _, device := range catalog.ListDevices(c.FS, cat.Root) {
			if device.Sentinel {
				continue
			}
			total++
			if _, ok := c.Engine.Classify(device.Path(cat.Root)); ok {
				claimed++
			}
		}
	}

	if total == 0 {
		return CheckResult{
			Name:       c.Name(),
			Category:   c.Category(),
			Status:     StatusWarn,
			Message:    "no devices found in any category",
			Suggestion: "Check that --sysfs-root points at a populated class directory",
		}
	}
	if claimed == 0 {
		return CheckResult{
			Name:       c.Name(),
			Category:   c.Category(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("0 of %d devices matched a driver", total),
			Suggestion: "Drivers detect devices by their temp, operstate, and capacity attributes",
		}
	}
	return CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   StatusPass,
		Message:  fmt.Sprintf("%d of %d devices matched a driver", claimed, total),
	}
}

// ProcfsCheck verifies the proc mount that feeds the dashboard host line.
// The dashboard degrades gracefully without it, so failure is a warning.
type ProcfsCheck struct {
	Mount string // defaults to /proc
}

// Name returns the check identifier.
func (c *ProcfsCheck) Name() string {
	return "procfs"
}

// Category returns the check category.
func (c *ProcfsCheck) Category() string {
	return "HOST"
}

// Run executes the procfs check.
func (c *ProcfsCheck) Run() CheckResult {
	mount := c.Mount
	if mount == "" {
		mount = procfs.DefaultMountPoint
	}

	warn := func(err error) CheckResult {
		return CheckResult{
			Name:       c.Name(),
			Category:   c.Category(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("procfs unavailable: %v", err),
			Suggestion: "The dashboard hides the host info line without /proc",
		}
	}

	fs, err := procfs.NewFS(mount)
	if err != nil {
		return warn(err)
	}
	load, err := fs.LoadAvg()
	if err != nil {
		return warn(err)
	}
	return CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   StatusPass,
		Message:  fmt.Sprintf("procfs available: load average %.2f", load.Load1),
	}
}

// TerminalCheck verifies stdout is an interactive terminal. Probe is
// injectable for tests; nil probes the real stdout.
type TerminalCheck struct {
	Probe func() bool
}

// Name returns the check identifier.
func (c *TerminalCheck) Name() string {
	return "terminal"
}

// Category returns the check category.
func (c *TerminalCheck) Category() string {
	return "TERMINAL"
}

// Run executes the terminal check.
func (c *TerminalCheck) Run() CheckResult {
	probe := c.Probe
	if probe == nil {
		probe = func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		}
	}

	if !probe() {
		return CheckResult{
			Name:       c.Name(),
			Category:   c.Category(),
			Status:     StatusWarn,
			Message:    "stdout is not a terminal",
			Suggestion: "The dashboard needs an interactive terminal; use 'kmon show --json' in scripts",
		}
	}
	return CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   StatusPass,
		Message:  "stdout is a terminal",
	}
}

// NewChecks builds the standard diagnostic set for the given class root,
// in display order.
func NewChecks(fs sysfs.FS, classRoot string) []Check {
	checks := []Check{
		&ClassRootCheck{FS: fs, Root: classRoot},
	}
	categories := catalog.Categories(classRoot)
	for _, cat := range categories {
		checks = append(checks, &CategoryCheck{FS: fs, Cat: cat})
	}
	checks = append(checks,
		&DriverCoverageCheck{FS: fs, Engine: metric.NewEngine(fs), Categories: categories},
		&ProcfsCheck{},
		&TerminalCheck{},
	)
	return checks
}
