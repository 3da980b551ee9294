package parser

import (
	"lox/internal/ast"
	"lox/internal/token"
)

// declaration parses one top-level or block-level declaration: `class`,
// `fun`, `var`, or a fallthrough to statement().
func (p *Parser) declaration() ast.StmtID {
	switch {
	case p.match(token.KwClass):
		return p.classDeclaration()
	case p.match(token.KwFun):
		return p.function("function")
	case p.match(token.KwVar):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// varDeclaration parses `var NAME (= EXPR)? ;`. The `var` keyword has
// already been consumed by the caller's match().
func (p *Parser) varDeclaration() ast.StmtID {
	start := p.previous()
	name := p.consume(token.Ident, "Expect variable name.")

	init := ast.NoExprID
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")

	return p.stmts.NewVarDecl(p.spanFrom(start), ast.StmtVarDeclData{Name: name, Init: init})
}

// function parses a function or method declaration's name, parameter
// list, and body. kind names the declaration for error messages
// ("function" or "method"); unlike varDeclaration, there is no leading
// keyword for methods, so the span starts at the name token itself.
func (p *Parser) function(kind string) ast.StmtID {
	name := p.consume(token.Ident, "Expect "+kind+" name.")
	start := name

	p.consume(token.LParen, "Expect '(' after "+kind+" name.")
	var params []token.Token
	if !p.check(token.RParen) {
		for {
			if len(params) >= 255 {
				p.errorHere(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Ident, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RParen, "Expect ')' after parameters.")

	openBrace := p.consume(token.LBrace, "Expect '{' before "+kind+" body.")
	body := p.block(openBrace)

	return p.stmts.NewFunctionDecl(p.spanFrom(start), ast.StmtFunctionDeclData{
		Name:   name,
		Params: params,
		Body:   body,
	})
}

// classDeclaration parses `class NAME { method* }`. The `class` keyword
// has already been consumed.
func (p *Parser) classDeclaration() ast.StmtID {
	start := p.previous()
	name := p.consume(token.Ident, "Expect class name.")
	p.consume(token.LBrace, "Expect '{' before class body.")

	var methods []ast.StmtID
	for !p.check(token.RBrace) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RBrace, "Expect '}' after class body.")

	return p.stmts.NewClassDecl(p.spanFrom(start), ast.StmtClassDeclData{Name: name, Methods: methods})
}
