package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "◉" // Completed successfully
	SymbolFail     = "✕" // Failed
	SymbolPending  = "◇" // Not yet started
	SymbolProgress = "◆" // In progress
	SymbolComplete = "●" // Done (alternative to success)
	SymbolSkipped  = "⊖" // Skipped
	SymbolWarning  = "⚠" // Needs attention
)
