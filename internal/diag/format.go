package diag

import (
	"fmt"

	"lox/internal/token"
)

// FormatAtToken renders a parse/resolve diagnostic in one of two
// "Error at" wire forms, selecting the form by the offending token's
// kind:
//
//	[line N] Error at end: MESSAGE          (tok.Kind == token.EOF)
//	[line N] Error at 'LEXEME': MESSAGE     (otherwise)
func FormatAtToken(tok token.Token, msg string) string {
	if tok.Kind == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", tok.Line, msg)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Lexeme, msg)
}

// FormatAtLine renders a scan-phase diagnostic, which has no offending
// token.
func FormatAtLine(line uint32, msg string) string {
	return fmt.Sprintf("[line %d] Error: %s", line, msg)
}

// FormatRuntime renders a runtime error in the fourth wire
// form: the message, then the line on its own line.
func FormatRuntime(line uint32, msg string) string {
	return fmt.Sprintf("%s\n[line %d]", msg, line)
}
