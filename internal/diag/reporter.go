package diag

import "lox/internal/source"

// Reporter is the minimal contract every phase (scanner, parser, resolver)
// reports diagnostics through. BagReporter is the only implementation the
// core needs — one *Bag per Program per run.
type Reporter interface {
	Report(sev Severity, primary source.Span, msg string)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct{ Bag *Bag }

// Report appends a diagnostic to the bound Bag.
func (r BagReporter) Report(sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Severity: sev, Primary: primary, Message: msg})
}

// ReportError is a shortcut for emitting a SevError diagnostic.
func ReportError(r Reporter, primary source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(SevError, primary, msg)
}

// ReportWarning is a shortcut for emitting a SevWarning diagnostic.
func ReportWarning(r Reporter, primary source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(SevWarning, primary, msg)
}
