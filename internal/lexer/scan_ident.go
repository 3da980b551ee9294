package lexer

import "lox/internal/token"

// scanIdentifier consumes an [A-Za-z_][A-Za-z0-9_]* run and classifies it
// as a keyword or a plain identifier via the fixed keyword table.
func (lx *Lexer) scanIdentifier(mark Mark) token.Token {
	for isAlphaNumeric(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(mark)
	text := lx.cursor.Lexeme(sp)

	kind := token.Ident
	if k, ok := token.LookupKeyword(text); ok {
		kind = k
	}
	return token.Token{Kind: kind, Span: sp, Lexeme: text, Line: mark.Line}
}
