package eval

import "lox/internal/diag"

func runtimeErrorf(line uint32, format string, a ...any) *diag.RuntimeError {
	return diag.NewRuntimeError(line, format, a...)
}
