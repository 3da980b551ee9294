package lexer

import (
	"strconv"

	"lox/internal/token"
)

// scanNumber consumes a digit run, optionally followed by '.' and another
// digit run, and parses it as an IEEE-754 double. The
// grammar never allows a trailing '.' with no following digit (`1.` is
// lexed as NUMBER "1" then DOT), which is why the lookahead checks
// PeekNext before consuming the dot.
func (lx *Lexer) scanNumber(mark Mark) token.Token {
	for isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' && isDigit(lx.cursor.PeekNext()) {
		lx.cursor.Bump() // consume '.'
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(mark)
	text := lx.cursor.Lexeme(sp)
	// The lexeme is a well-formed decimal by construction, so the parse
	// error here is unreachable; a zero value on failure would only mask
	// a scanner bug.
	value, _ := strconv.ParseFloat(text, 64)
	return token.Token{
		Kind:    token.Number,
		Span:    sp,
		Lexeme:  text,
		Literal: token.Literal{Kind: token.NumberLit, Num: value},
		Line:    mark.Line,
	}
}
