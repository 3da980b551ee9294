package token

import (
	"lox/internal/source"
)

// LitKind tags the pre-parsed literal value carried by a token so the
// parser never has to re-lex a NUMBER or STRING lexeme.
type LitKind uint8

const (
	// NoLit marks a token with no pre-parsed literal payload.
	NoLit LitKind = iota
	NumberLit
	StringLit
)

// Literal holds a scanned literal's value without boxing it in an
// interface{}: a number's value lives in Num, a string's in Str.
type Literal struct {
	Kind LitKind
	Num  float64
	Str  string
}

// Token represents a single scanned token, its source location, and its
// lexeme borrowed (by value, since Go strings are immutable views) from
// the source file's content.
type Token struct {
	Kind    Kind
	Span    source.Span
	Lexeme  string
	Literal Literal
	Line    uint32 // 1-based
}

// IsLiteral reports whether the token is a number or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }
