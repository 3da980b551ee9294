package diag

import "fmt"

// RuntimeError is the single error the evaluator surfaces: execution stops at the first one, so unlike scan/
// parse/resolve diagnostics it is never accumulated in a Bag.
type RuntimeError struct {
	Line    uint32
	Message string
}

func (e *RuntimeError) Error() string { return FormatRuntime(e.Line, e.Message) }

// NewRuntimeError builds a RuntimeError anchored at line, formatting its
// message like fmt.Sprintf.
func NewRuntimeError(line uint32, format string, a ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, a...)}
}
