package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/kmon/internal/errors"
)

// DeviceItem is one selectable device in the picker.
type DeviceItem struct {
	Name    string // Device directory name (e.g. "thermal_zone0")
	Driver  string // Claiming driver, empty when none matched
	Preview string // First summary line
}

// deviceListItem implements list.Item for the Bubbles list component.
type deviceListItem struct {
	device DeviceItem
}

func (i deviceListItem) Title() string {
	return i.device.Name
}

func (i deviceListItem) Description() string {
	var parts []string

	if i.device.Driver != "" {
		parts = append(parts, i.device.Driver)
	}
	if i.device.Preview != "" {
		parts = append(parts, i.device.Preview)
	}

	return strings.Join(parts, " | ")
}

func (i deviceListItem) FilterValue() string {
	// Allow searching by name and by driver kind
	return i.device.Name + " " + i.device.Driver
}

// DevicePickerModel is a Bubble Tea model for selecting a device.
type DevicePickerModel struct {
	list     list.Model
	devices  []DeviceItem
	selected *DeviceItem
	quitting bool
	width    int
	height   int
}

// devicePickerKeyMap defines key bindings for the device picker.
type devicePickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var devicePickerKeys = devicePickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// NewDevicePickerModel creates a new device picker model.
func NewDevicePickerModel(category string, devices []DeviceItem) DevicePickerModel {
	items := make([]list.Item, len(devices))
	for i, d := range devices {
		items[i] = deviceListItem{device: d}
	}

	// Create list with custom delegate for styling
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).
		BorderForeground(ColorNeonPink)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorMuted)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select a device: " + category
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	return DevicePickerModel{
		list:    l,
		devices: devices,
		width:   80,
		height:  15,
	}
}

// Init implements tea.Model.
func (m DevicePickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DevicePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, devicePickerKeys.Enter):
			if item, ok := m.list.SelectedItem().(deviceListItem); ok {
				m.selected = &item.device
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, devicePickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m DevicePickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the selected device, or nil if cancelled.
func (m DevicePickerModel) Selected() *DeviceItem {
	return m.selected
}

// PickDevice displays an interactive device picker and returns the
// selection. Returns nil if the user cancels (ESC/q/Ctrl+C).
func PickDevice(category string, devices []DeviceItem) (*DeviceItem, error) {
	return PickDeviceWithOutput(category, devices, os.Stdout, os.Stdin)
}

// PickDeviceWithOutput displays the device picker using custom I/O.
func PickDeviceWithOutput(category string, devices []DeviceItem, output io.Writer, input io.Reader) (*DeviceItem, error) {
	if len(devices) == 0 {
		return nil, errors.New(errors.ErrSysfs,
			"No devices to pick from in "+category,
			"The category root may be empty; run 'kmon doctor' to inspect the tree.")
	}

	if len(devices) == 1 {
		// Only one device, no need to pick
		return &devices[0], nil
	}

	model := NewDevicePickerModel(category, devices)

	p := tea.NewProgram(
		model,
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrRender, "Device picker failed",
			"Pass the device name directly: kmon show <category> <device>")
	}

	if m, ok := finalModel.(DevicePickerModel); ok {
		return m.Selected(), nil
	}

	return nil, nil
}
