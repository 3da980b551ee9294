package lexer

import (
	"golang.org/x/text/unicode/norm"

	"lox/internal/diag"
	"lox/internal/token"
)

// scanString consumes a `"…"` literal. An embedded newline is legal and
// merely advances the line counter (the reference Lox scanner allows
// multi-line strings); reaching EOF before the closing quote is the only
// "unterminated string" scan error, reported on the opening line.
func (lx *Lexer) scanString(mark Mark) (token.Token, bool) {
	for lx.cursor.Peek() != '"' && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(mark)
		diag.ReportError(lx.reporter, sp, diag.FormatAtLine(mark.Line, "Unterminated string."))
		return token.Token{}, false
	}

	lx.cursor.Bump() // closing quote
	sp := lx.cursor.SpanFrom(mark)
	lexeme := lx.cursor.Lexeme(sp)
	inner := lexeme[1 : len(lexeme)-1]
	// Normalize to NFC so two byte-distinct source encodings of the same
	// visible string (composed vs. decomposed accents) yield the same
	// value and compare equal under Lox's structural string equality.
	value := norm.NFC.String(inner)

	return token.Token{
		Kind:    token.String,
		Span:    sp,
		Lexeme:  lexeme,
		Literal: token.Literal{Kind: token.StringLit, Str: value},
		Line:    mark.Line,
	}, true
}
