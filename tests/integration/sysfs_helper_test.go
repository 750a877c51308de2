package integration

import (
	"os"
	"path/filepath"
	"testing"
)

// RealSysfsRoot is the live class tree used by the skippable tests.
const RealSysfsRoot = "/sys/class"

// SkipIfNoRealSysfs skips tests that read the live /sys/class tree.
// Set KMON_TEST_SKIP_SYSFS=1 to skip them unconditionally, e.g. in
// containers where sysfs is masked.
func SkipIfNoRealSysfs(t *testing.T) {
	t.Helper()
	if os.Getenv("KMON_TEST_SKIP_SYSFS") == "1" {
		t.Skip("Skipping: KMON_TEST_SKIP_SYSFS=1")
	}
	if _, err := os.Stat(RealSysfsRoot); err != nil {
		t.Skipf("Skipping: %s not available (%v)", RealSysfsRoot, err)
	}
}

// WriteAttr creates one attribute file under dir, creating parent
// directories as needed. Values get a trailing newline, matching how
// the kernel exposes sysfs attributes.
func WriteAttr(t *testing.T, dir, name, value string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create attribute dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(value+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write attribute %s: %v", path, err)
	}
}

// FullSysfsTree builds a class tree with every category populated,
// shaped like a small laptop: two thermal zones, one NIC, one battery
// plus AC adapter, and one LED.
func FullSysfsTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	WriteAttr(t, root, "thermal/thermal_zone0/temp", "41000")
	WriteAttr(t, root, "thermal/thermal_zone0/type", "x86_pkg_temp")
	WriteAttr(t, root, "thermal/thermal_zone1/temp", "75500")
	WriteAttr(t, root, "thermal/thermal_zone1/type", "acpitz")

	WriteAttr(t, root, "net/eth0/operstate", "up")
	WriteAttr(t, root, "net/eth0/address", "aa:bb:cc:dd:ee:ff")
	WriteAttr(t, root, "net/eth0/statistics/rx_bytes", "1048576")

	WriteAttr(t, root, "power_supply/BAT0/capacity", "85")
	WriteAttr(t, root, "power_supply/BAT0/status", "Charging")
	WriteAttr(t, root, "power_supply/AC/online", "1")

	WriteAttr(t, root, "leds/input0::capslock/brightness", "0")

	return root
}

// SparseSysfsTree builds a class tree with only the thermal category,
// the shape of a headless VM with no NICs exposed, no battery, and no
// LEDs. The other three categories are absent entirely.
func SparseSysfsTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	WriteAttr(t, root, "thermal/thermal_zone0/temp", "38000")
	WriteAttr(t, root, "thermal/thermal_zone0/type", "virtual")

	return root
}
