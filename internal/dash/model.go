package dash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/kmon/internal/catalog"
	"github.com/rileyhilliard/kmon/internal/metric"
	"github.com/rileyhilliard/kmon/internal/sysfs"
)

// Pane identifies which menu owns keyboard focus. The metric pane only
// displays and is never focused.
type Pane int

const (
	PaneCategories Pane = iota
	PaneDevices
)

// String returns a human-readable pane name.
func (p Pane) String() string {
	switch p {
	case PaneCategories:
		return "categories"
	case PaneDevices:
		return "devices"
	default:
		return "unknown"
	}
}

// Model is the Bubble Tea model for the metrics dashboard.
type Model struct {
	fs         sysfs.FS
	engine     *metric.Engine
	categories []catalog.Category
	host       HostInfo

	categoryIdx int
	deviceIdx   int
	focus       Pane
	devices     []catalog.Device

	// lastCategory is the category label the device list was last built
	// for. Update compares it against the current selection every cycle;
	// a mismatch triggers re-enumeration. Clearing it forces a refresh.
	lastCategory string

	width    int
	height   int
	interval time.Duration
	showHelp bool
	quitting bool
}

// tickMsg signals a periodic repaint.
type tickMsg time.Time

// NewModel creates a dashboard model over the given class root. The
// first category's devices are enumerated immediately so the initial
// frame is complete.
func NewModel(fs sysfs.FS, classRoot string, interval time.Duration) Model {
	m := Model{
		fs:         fs,
		engine:     metric.NewEngine(fs),
		categories: catalog.Categories(classRoot),
		host:       ProbeHost(),
		focus:      PaneCategories,
		interval:   interval,
	}
	m.refreshDevices()
	return m
}

// Init starts the repaint timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var handled bool
		handled, cmd = m.handleKey(msg)
		if !handled {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Repaint only. View re-reads live attribute values each frame.
		cmd = m.tickCmd()
	}

	// Re-enumerate when the selected category changed since the last
	// cycle. Key handlers never touch the device list directly; they
	// change the selection (or clear lastCategory) and this comparison
	// does the rest.
	if m.CurrentCategory().Label != m.lastCategory {
		m.refreshDevices()
	}

	return m, cmd
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshDevices rebuilds the device list for the selected category.
// The whole slice is replaced and the selection resets to the top.
func (m *Model) refreshDevices() {
	cat := m.CurrentCategory()
	m.devices = catalog.ListDevices(m.fs, cat.Root)
	m.deviceIdx = 0
	m.lastCategory = cat.Label
}

// CurrentCategory returns the selected category.
func (m Model) CurrentCategory() catalog.Category {
	return m.categories[m.categoryIdx]
}

// SelectedDevice returns the selected device, if any.
func (m Model) SelectedDevice() (catalog.Device, bool) {
	if m.deviceIdx < 0 || m.deviceIdx >= len(m.devices) {
		return catalog.Device{}, false
	}
	return m.devices[m.deviceIdx], true
}

// selectedSummary resolves the metric summary and attribute path for the
// selected device. Sentinels short-circuit to the placeholder without
// touching the filesystem.
func (m Model) selectedSummary() (metric.Summary, string) {
	device, ok := m.SelectedDevice()
	if !ok {
		return metric.Placeholder(), ""
	}
	if device.Sentinel {
		return metric.Placeholder(), ""
	}
	path := device.Path(m.CurrentCategory().Root)
	return m.engine.Summarize(path), path
}

// moveSelection moves the selection in the focused pane by delta,
// clamped to the list bounds.
func (m *Model) moveSelection(delta int) {
	switch m.focus {
	case PaneCategories:
		m.categoryIdx = clamp(m.categoryIdx+delta, 0, len(m.categories)-1)
	case PaneDevices:
		m.deviceIdx = clamp(m.deviceIdx+delta, 0, len(m.devices)-1)
	}
}

// jumpSelection moves the selection in the focused pane to the first or
// last entry.
func (m *Model) jumpSelection(toEnd bool) {
	switch m.focus {
	case PaneCategories:
		if toEnd {
			m.categoryIdx = len(m.categories) - 1
		} else {
			m.categoryIdx = 0
		}
	case PaneDevices:
		if len(m.devices) == 0 {
			return
		}
		if toEnd {
			m.deviceIdx = len(m.devices) - 1
		} else {
			m.deviceIdx = 0
		}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
