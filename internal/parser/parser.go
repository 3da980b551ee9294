// Package parser implements Lox's recursive-descent parser: single-token
// lookahead, precedence encoded as the call chain.
package parser

import (
	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/source"
	"lox/internal/token"
)

// Parser walks a flat token stream and builds arena-allocated statement
// and expression nodes into the Program it was handed.
type Parser struct {
	tokens   []token.Token
	pos      int
	reporter diag.Reporter
	exprs    *ast.Exprs
	stmts    *ast.Stmts
}

// parseError is panicked by consume/errorAt to unwind to the nearest
// per-declaration recovery point, where synchronize() resumes scanning
// for the next statement boundary: panic/recover bounded to exactly one
// function, never escaping Parse itself.
type parseError struct{}

// Parse scans prog's token stream into top-level statements, appending
// them to prog.Statements. Parse errors are recovered via synchronize()
// so later, independent declarations still get parsed and reported; the
// caller checks the shared diag.Bag's HasErrors() to decide whether to
// run the resolver and evaluator at all.
func Parse(prog *ast.Program, tokens []token.Token, reporter diag.Reporter) {
	p := &Parser{tokens: tokens, reporter: reporter, exprs: prog.Exprs, stmts: prog.Stmts}
	for !p.isAtEnd() {
		if id, ok := p.safeDeclaration(); ok {
			prog.Statements = append(prog.Statements, id)
		}
	}
}

func (p *Parser) safeDeclaration() (id ast.StmtID, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				p.synchronize()
				ok = false
				return
			}
			panic(r)
		}
	}()
	id = p.declaration()
	return id, true
}

// synchronize discards tokens until the next statement boundary: a
// consumed ';' or a lookahead that starts a new declaration/statement.
// A failed declaration has always consumed at least its first token, so
// stopping at once on such a lookahead cannot loop.
func (p *Parser) synchronize() {
	switch p.peek().Kind {
	case token.KwClass, token.KwFun, token.KwVar, token.KwFor,
		token.KwIf, token.KwWhile, token.KwPrint, token.KwReturn:
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.KwClass, token.KwFun, token.KwVar, token.KwFor,
			token.KwIf, token.KwWhile, token.KwPrint, token.KwReturn:
			return
		}
		p.advance()
	}
}

func (p *Parser) peek() token.Token     { return p.tokens[p.pos] }
func (p *Parser) previous() token.Token { return p.tokens[p.pos-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return k == token.EOF
	}
	return p.peek().Kind == k
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of kind k, or panics a parseError after
// reporting msg at the current (unexpected) token.
func (p *Parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), msg))
}

// errorAt reports msg at tok and returns the sentinel to panic with.
func (p *Parser) errorAt(tok token.Token, msg string) parseError {
	diag.ReportError(p.reporter, tok.Span, diag.FormatAtToken(tok, msg))
	return parseError{}
}

// errorHere reports msg at tok without unwinding — used for the errors
// that should report and continue rather than synchronize: the
// 255-argument/parameter cap, and an invalid assignment target.
func (p *Parser) errorHere(tok token.Token, msg string) {
	diag.ReportError(p.reporter, tok.Span, diag.FormatAtToken(tok, msg))
}

// spanFrom returns the span covering from start's token through the most
// recently consumed token.
func (p *Parser) spanFrom(start token.Token) source.Span {
	end := p.previous()
	return source.Span{File: start.Span.File, Start: start.Span.Start, End: end.Span.End}
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.exprs.Get(id).Span
}

// spanJoin returns the smallest span covering both a and b, assuming
// both belong to the file currently being parsed.
func spanJoin(a, b source.Span) source.Span {
	return a.Cover(b)
}
