// Package ui provides terminal UI components for kmon's CLI output.
//
// The package includes table renderers, the interactive device picker,
// and styled text output using the Lip Gloss library for consistent
// terminal styling across all commands.
//
// # Components Overview
//
//	Tables        - Simple column tables, device listings, doctor checks
//	DevicePicker  - Interactive device selection using the Bubbles list
//	SeverityStyle - Maps engine severities to display styles
//	Header        - Branded header block for version output
//
// # Color Scheme
//
// Colors are hex values from the electric synthwave palette:
//
//	ColorSuccess   (neon green)  - Healthy values
//	ColorError     (red-pink)    - Failures and alerts
//	ColorWarning   (amber)       - Warnings and degraded states
//	ColorInfo      (neon cyan)   - Informational messages
//	ColorMuted     (purple-gray) - Secondary text, placeholders
//	ColorSecondary (lavender)    - Labels and annotations
//
// Use DisableColors() to switch to monochrome output (for --no-color).
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (dotted circle) - Completed successfully
//	SymbolFail     (cross)         - Failed
//	SymbolPending  (diamond)       - Not yet started / unclaimed
//	SymbolComplete (filled)        - Done (alternative)
//	SymbolWarning  (warning sign)  - Needs attention
//
// # Device Picker
//
// PickDevice shows a filterable list and returns the chosen device,
// or nil when the user cancels:
//
//	item, err := ui.PickDevice("Thermals", items)
//
// A single-element list short-circuits without drawing the picker.
package ui
