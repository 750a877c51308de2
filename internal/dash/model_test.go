package dash

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/kmon/internal/catalog"
	"github.com/rileyhilliard/kmon/internal/logger"
	"github.com/rileyhilliard/kmon/internal/metric"
	"github.com/rileyhilliard/kmon/internal/sysfs"
)

func writeAttr(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newTestRoot builds a class tree with thermal, net, and power devices.
// LEDs is deliberately absent so its sentinel path is exercised.
func newTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeAttr(t, filepath.Join(root, "thermal", "thermal_zone0"), "temp", "41000\n")
	writeAttr(t, filepath.Join(root, "thermal", "thermal_zone0"), "type", "x86_pkg_temp\n")
	writeAttr(t, filepath.Join(root, "thermal", "thermal_zone1"), "temp", "75500\n")
	writeAttr(t, filepath.Join(root, "net", "eth0"), "operstate", "up\n")
	writeAttr(t, filepath.Join(root, "net", "eth0"), "address", "aa:bb:cc:dd:ee:ff\n")
	writeAttr(t, filepath.Join(root, "net", "eth0", "statistics"), "rx_bytes", "1024\n")
	writeAttr(t, filepath.Join(root, "power_supply", "BAT0"), "capacity", "85\n")
	writeAttr(t, filepath.Join(root, "power_supply", "BAT0"), "status", "Charging\n")
	return root
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(sysfs.NewOSWithLogger(logger.Noop()), newTestRoot(t), 2*time.Second)
}

// press runs one key message through Update and returns the new model.
func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		msg = tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok, "Update should return a Model")
	return next, cmd
}

func deviceNames(devices []catalog.Device) []string {
	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = d.Name
	}
	return names
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	require.Len(t, m.categories, 4)
	assert.Equal(t, PaneCategories, m.focus)
	assert.Equal(t, 2*time.Second, m.interval)

	// First category enumerated up front
	assert.Equal(t, "Thermals", m.lastCategory)
	assert.Equal(t, []string{"thermal_zone0", "thermal_zone1"}, deviceNames(m.devices))
	assert.Equal(t, 0, m.deviceIdx)
}

func TestPane_String(t *testing.T) {
	assert.Equal(t, "categories", PaneCategories.String())
	assert.Equal(t, "devices", PaneDevices.String())
	assert.Equal(t, "unknown", Pane(99).String())
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t)
	require.NotNil(t, m.Init())
}

func TestCategoryChangeRefreshesDevices(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "j")

	assert.Equal(t, 1, m.categoryIdx)
	assert.Equal(t, "Network", m.lastCategory)
	assert.Equal(t, []string{"eth0"}, deviceNames(m.devices))
	assert.Equal(t, 0, m.deviceIdx)
}

func TestCategoryChangeResetsDeviceSelection(t *testing.T) {
	m := newTestModel(t)

	// Move to the second thermal zone
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "j")
	require.Equal(t, 1, m.deviceIdx)

	// Switching category rebuilds the list and resets the selection
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "j")

	assert.Equal(t, "Network", m.lastCategory)
	assert.Equal(t, 0, m.deviceIdx)
}

func TestSelectionClamping(t *testing.T) {
	m := newTestModel(t)

	// Up at the top stays put
	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.categoryIdx)

	// Down stops at the last category
	for i := 0; i < 10; i++ {
		m, _ = press(t, m, "j")
	}
	assert.Equal(t, 3, m.categoryIdx)
}

func TestHomeEndJump(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "end")
	assert.Equal(t, 3, m.categoryIdx)

	m, _ = press(t, m, "home")
	assert.Equal(t, 0, m.categoryIdx)

	// Device pane jumps operate on the device list
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "end")
	assert.Equal(t, 1, m.deviceIdx)
	m, _ = press(t, m, "home")
	assert.Equal(t, 0, m.deviceIdx)
}

func TestFocusSwitching(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "tab")
	assert.Equal(t, PaneDevices, m.focus)

	m, _ = press(t, m, "tab")
	assert.Equal(t, PaneCategories, m.focus)

	m, _ = press(t, m, "l")
	assert.Equal(t, PaneDevices, m.focus)

	m, _ = press(t, m, "h")
	assert.Equal(t, PaneCategories, m.focus)

	m, _ = press(t, m, "right")
	assert.Equal(t, PaneDevices, m.focus)

	m, _ = press(t, m, "left")
	assert.Equal(t, PaneCategories, m.focus)
}

func TestForceRefreshPicksUpNewDevices(t *testing.T) {
	root := newTestRoot(t)
	m := NewModel(sysfs.NewOSWithLogger(logger.Noop()), root, time.Second)
	require.Len(t, m.devices, 2)

	writeAttr(t, filepath.Join(root, "thermal", "thermal_zone2"), "temp", "30000\n")

	m, _ = press(t, m, "r")

	assert.Equal(t, []string{"thermal_zone0", "thermal_zone1", "thermal_zone2"}, deviceNames(m.devices))
	assert.Equal(t, "Thermals", m.lastCategory)
	assert.Equal(t, 0, m.deviceIdx)
}

func TestSentinelSelectionShortCircuits(t *testing.T) {
	m := newTestModel(t)

	// LEDs is the fourth category and absent from the fixture tree
	m, _ = press(t, m, "end")
	require.Equal(t, "LEDs", m.CurrentCategory().Label)

	require.Len(t, m.devices, 1)
	assert.True(t, m.devices[0].Sentinel)
	assert.Equal(t, catalog.SentinelName, m.devices[0].Name)

	summary, path := m.selectedSummary()
	assert.Empty(t, path)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, metric.PlaceholderText, summary.Lines[0].Value)
	assert.Equal(t, metric.SeverityMuted, summary.Lines[0].Severity)
}

func TestSelectedSummaryReadsLiveValues(t *testing.T) {
	root := newTestRoot(t)
	m := NewModel(sysfs.NewOSWithLogger(logger.Noop()), root, time.Second)

	summary, path := m.selectedSummary()
	assert.Equal(t, filepath.Join(root, "thermal", "thermal_zone0"), path)
	assert.Equal(t, "thermal", summary.Kind)
	require.NotEmpty(t, summary.Lines)
	assert.Equal(t, "41.0 °C", summary.Lines[0].Value)

	// No caching: a new value shows up on the next call
	writeAttr(t, filepath.Join(root, "thermal", "thermal_zone0"), "temp", "62000\n")
	summary, _ = m.selectedSummary()
	assert.Equal(t, "62.0 °C", summary.Lines[0].Value)
	assert.Equal(t, metric.SeverityAlert, summary.Lines[0].Severity)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, "q")

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", m.View())
}

func TestQuitCtrlC(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, "ctrl+c")

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "?")
	assert.True(t, m.showHelp)

	// Navigation is swallowed while help is open
	m, _ = press(t, m, "j")
	assert.Equal(t, 0, m.categoryIdx)

	m, _ = press(t, m, "esc")
	assert.False(t, m.showHelp)

	m, _ = press(t, m, "?")
	m, _ = press(t, m, "?")
	assert.False(t, m.showHelp)
}

func TestQuitWhileHelpOpen(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "?")
	m, cmd := press(t, m, "q")

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestTickSchedulesNext(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
}

func TestSelectedDevice(t *testing.T) {
	m := newTestModel(t)

	device, ok := m.SelectedDevice()
	require.True(t, ok)
	assert.Equal(t, "thermal_zone0", device.Name)

	m.deviceIdx = 99
	_, ok = m.SelectedDevice()
	assert.False(t, ok)
}

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		name                     string
		total, selected, visible int
		wantStart, wantEnd       int
	}{
		{"all fit", 4, 0, 10, 0, 4},
		{"zero visible shows all", 4, 2, 0, 0, 4},
		{"selection centered", 20, 10, 5, 8, 13},
		{"clamped at top", 20, 0, 5, 0, 5},
		{"clamped at bottom", 20, 19, 5, 15, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := windowBounds(tt.total, tt.selected, tt.visible)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))
	assert.Equal(t, "ab", truncate("ab", 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-1, 0, 3))
	assert.Equal(t, 3, clamp(9, 0, 3))
	assert.Equal(t, 2, clamp(2, 0, 3))
	assert.Equal(t, 0, clamp(1, 0, -1))
}
