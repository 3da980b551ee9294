// Package lexer implements the Lox scanner: a single forward pass over a
// source file's bytes producing a flat token stream.
package lexer

import (
	"lox/internal/diag"
	"lox/internal/source"
	"lox/internal/token"
)

// Lexer turns one source.File into a token stream. It never backtracks
// past the one-byte lookahead allows for two-char operators.
type Lexer struct {
	cursor   Cursor
	reporter diag.Reporter
}

// New creates a Lexer over file, reporting scan errors to reporter.
func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{cursor: NewCursor(file), reporter: reporter}
}

// ScanTokens consumes the whole file and returns its token stream. The
// last element is always token.EOF; scanning is total, so this never fails — errors are
// reported through the Reporter, and the offending input is skipped.
func (lx *Lexer) ScanTokens() []token.Token {
	toks := make([]token.Token, 0, 64)
	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			break
		}
		tok, ok := lx.scanToken()
		if ok {
			toks = append(toks, tok)
		}
	}
	m := lx.cursor.Mark()
	toks = append(toks, token.Token{
		Kind: token.EOF,
		Span: lx.cursor.SpanFrom(m),
		Line: lx.cursor.Line,
	})
	return toks
}

// skipTrivia consumes whitespace and `//` line comments; neither ever
// becomes a token.
func (lx *Lexer) skipTrivia() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		case '/':
			if lx.cursor.PeekNext() != '/' {
				return
			}
			for lx.cursor.Peek() != '\n' && !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

// scanToken scans exactly one token starting at the cursor's current
// position. ok is false when the input at this position produced no
// token (an unknown character, reported and skipped).
func (lx *Lexer) scanToken() (token.Token, bool) {
	mark := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	switch ch {
	case '(':
		return lx.emit(token.LParen, mark), true
	case ')':
		return lx.emit(token.RParen, mark), true
	case '{':
		return lx.emit(token.LBrace, mark), true
	case '}':
		return lx.emit(token.RBrace, mark), true
	case ',':
		return lx.emit(token.Comma, mark), true
	case '.':
		return lx.emit(token.Dot, mark), true
	case '-':
		return lx.emit(token.Minus, mark), true
	case '+':
		return lx.emit(token.Plus, mark), true
	case ';':
		return lx.emit(token.Semicolon, mark), true
	case '*':
		return lx.emit(token.Star, mark), true
	case '/':
		return lx.emit(token.Slash, mark), true
	case '!':
		if lx.cursor.Eat('=') {
			return lx.emit(token.BangEqual, mark), true
		}
		return lx.emit(token.Bang, mark), true
	case '=':
		if lx.cursor.Eat('=') {
			return lx.emit(token.EqualEqual, mark), true
		}
		return lx.emit(token.Equal, mark), true
	case '<':
		if lx.cursor.Eat('=') {
			return lx.emit(token.LessEqual, mark), true
		}
		return lx.emit(token.Less, mark), true
	case '>':
		if lx.cursor.Eat('=') {
			return lx.emit(token.GreaterEqual, mark), true
		}
		return lx.emit(token.Greater, mark), true
	case '"':
		return lx.scanString(mark)
	default:
		switch {
		case isDigit(ch):
			return lx.scanNumber(mark), true
		case isAlpha(ch):
			return lx.scanIdentifier(mark), true
		default:
			sp := lx.cursor.SpanFrom(mark)
			diag.ReportError(lx.reporter, sp, diag.FormatAtLine(mark.Line, "Unexpected character."))
			return token.Token{}, false
		}
	}
}

func (lx *Lexer) emit(kind token.Kind, mark Mark) token.Token {
	sp := lx.cursor.SpanFrom(mark)
	return token.Token{
		Kind:   kind,
		Span:   sp,
		Lexeme: lx.cursor.Lexeme(sp),
		Line:   mark.Line,
	}
}
