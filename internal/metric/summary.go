// Package metric turns a device's attribute directory into a
// structured, renderable summary. It owns device classification and
// the per-kind drivers; it never touches terminal styling, so the
// same summaries back the dashboard, plain text output, and JSON.
package metric

// Severity tags a line for the rendering layer. The engine decides
// severity; renderers decide what it looks like.
type Severity int

const (
	// SeverityNone is a plain informational line.
	SeverityNone Severity = iota
	// SeverityOK marks a healthy value.
	SeverityOK
	// SeverityAlert marks a value needing attention.
	SeverityAlert
	// SeverityMuted marks placeholder text.
	SeverityMuted
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityAlert:
		return "alert"
	case SeverityMuted:
		return "muted"
	default:
		return "none"
	}
}

// Line is one display row of a summary.
type Line struct {
	Label    string
	Value    string
	Severity Severity
}

// Display returns the line's text form: "Label: Value", or just the
// value for label-less lines such as placeholders.
func (l Line) Display() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// Summary is the ordered set of lines describing one device at one
// point in time. It is rebuilt on every render and never cached.
type Summary struct {
	// Kind is the claiming driver's name, or "" when no driver
	// matched.
	Kind  string
	Lines []Line
}

// PlaceholderText is shown when a device exposes none of the known
// marker attributes.
const PlaceholderText = "No standard metrics found."

// Placeholder returns the summary for an unclaimed device.
func Placeholder() Summary {
	return Summary{
		Lines: []Line{{Value: PlaceholderText, Severity: SeverityMuted}},
	}
}
