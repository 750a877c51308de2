// Package dash implements the interactive device metrics dashboard.
//
// The dashboard browses the four device categories exposed under the
// sysfs class root and renders a live, type-specific metric summary for
// the selected device.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds all dashboard state (category/device selection,
//     focused pane, enumerated devices, terminal size)
//   - Update: Processes messages (keystrokes, tick events, resizes)
//   - View: Renders the current state to a string for display
//
// # Layout
//
// Three panes side by side: the category menu, the device menu for the
// selected category, and the metric pane for the selected device. A
// header above shows the title and a best-effort host info line; a
// footer below shows the selected device path and key hints.
//
// # Refresh Model
//
// Everything is read live, synchronously, inside the update/view cycle:
//
//  1. Each Update compares the selected category against the one it last
//     enumerated; on change the device list is rebuilt and the selection
//     resets to the top.
//  2. Each View re-reads the selected device's attributes through the
//     metric engine. Nothing is cached between frames.
//  3. tickMsg fires at the configured interval (default 2s) so values
//     stay fresh without input.
//
// # Keyboard Shortcuts
//
// Bindings are defined in keybindings.go using bubbles/key:
//
//	q, Ctrl+C   - Quit
//	Tab         - Switch pane focus
//	←/h, →/l    - Focus categories / devices pane
//	j/k, ↑/↓    - Move selection in the focused pane
//	Home/End    - Jump to first/last entry
//	r           - Re-enumerate the device list
//	?           - Toggle help overlay
package dash
