package diag

import "lox/internal/source"

// Diagnostic is the single shape every scan, parse, resolve, and runtime
// error takes before being rendered: a severity, the primary span it
// points at, and a one-line message — no error codes, no multi-note
// explanations, no suggested fixes — trimmed to exactly what the four
// wire forms need.
type Diagnostic struct {
	Severity Severity
	Primary  source.Span
	Message  string
}
