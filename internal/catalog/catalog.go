// Package catalog holds the fixed category table and enumerates the
// devices under each category root.
package catalog

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/rileyhilliard/kmon/internal/logger"
	"github.com/rileyhilliard/kmon/internal/sysfs"
)

// Category maps a display label to one class subtree.
type Category struct {
	Label string
	Root  string
}

// Base returns the last element of the category root ("thermal",
// "net", ...), the short name accepted on the command line.
func (c Category) Base() string {
	return filepath.Base(c.Root)
}

// Categories returns the fixed category list rooted at classRoot.
// The set is closed at build time. LEDs has no driver, so its devices
// always summarize to the placeholder; it stays in the table to keep
// that path reachable.
func Categories(classRoot string) []Category {
	return []Category{
		{Label: "Thermals", Root: filepath.Join(classRoot, "thermal")},
		{Label: "Network", Root: filepath.Join(classRoot, "net")},
		{Label: "Power", Root: filepath.Join(classRoot, "power_supply")},
		{Label: "LEDs", Root: filepath.Join(classRoot, "leds")},
	}
}

// FindCategory resolves a user-supplied name against categories,
// matching either the label or the root's base name, ignoring case.
func FindCategory(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Label, name) || strings.EqualFold(c.Base(), name) {
			return c, true
		}
	}
	return Category{}, false
}

// SentinelName is the single pseudo-device listed when a category
// root is absent, so the device menu is never silently blank.
const SentinelName = "(category not found on this system)"

// Device is one enumerated entry under a category root. Sentinel
// entries stand in for an unavailable category and must never be
// handed to the classifier.
type Device struct {
	Name     string
	Sentinel bool
}

// Path derives the device's attribute directory under root. Never
// meaningful for sentinels.
func (d Device) Path(root string) string {
	return filepath.Join(root, d.Name)
}

// ListDevices enumerates the immediate children of root, sorted by
// name. A missing or unreadable root yields exactly one sentinel
// entry. An existing but empty root yields an empty list.
func ListDevices(fs sysfs.FS, root string) []Device {
	if !fs.Exists(root) {
		logger.Default().Debug("category root %s missing, listing sentinel", root)
		return []Device{{Name: SentinelName, Sentinel: true}}
	}

	names, err := fs.ListDir(root)
	if err != nil {
		logger.Default().Debug("enumerating %s failed, listing sentinel", root)
		return []Device{{Name: SentinelName, Sentinel: true}}
	}
	sort.Strings(names)

	devices := make([]Device, 0, len(names))
	for _, name := range names {
		devices = append(devices, Device{Name: name})
	}
	return devices
}
