package parser

import (
	"lox/internal/ast"
	"lox/internal/token"
)

// expression is the entry point of the precedence chain: assignment is
// the lowest-precedence production.
func (p *Parser) expression() ast.ExprID {
	return p.assignment()
}

// assignment parses the LHS as a general expression and, if it resolves
// to a Variable or Get node, rewrites it to Assignment/Set; any other LHS
// reports "Invalid assignment target." and returns the LHS unchanged,
// without throwing.
func (p *Parser) assignment() ast.ExprID {
	expr := p.or()

	if !p.match(token.Equal) {
		return expr
	}
	equals := p.previous()
	value := p.assignment()

	target := p.exprs.Get(expr)
	switch target.Kind {
	case ast.ExprVariable:
		v := p.exprs.Variable(target)
		span := spanJoin(target.Span, p.exprSpan(value))
		return p.exprs.NewAssign(span, ast.ExprAssignData{Name: v.Name, Value: value})
	case ast.ExprGet:
		g := p.exprs.GetData(target)
		span := spanJoin(target.Span, p.exprSpan(value))
		return p.exprs.NewSet(span, ast.ExprSetData{Object: g.Object, Name: g.Name, Value: value})
	default:
		p.errorHere(equals, "Invalid assignment target.")
		return expr
	}
}

func (p *Parser) or() ast.ExprID {
	expr := p.and()
	for p.match(token.KwOr) {
		op := p.previous()
		right := p.and()
		expr = p.exprs.NewLogical(spanJoin(p.exprSpan(expr), p.exprSpan(right)), ast.ExprLogicalData{Op: op, Left: expr, Right: right})
	}
	return expr
}

func (p *Parser) and() ast.ExprID {
	expr := p.equality()
	for p.match(token.KwAnd) {
		op := p.previous()
		right := p.equality()
		expr = p.exprs.NewLogical(spanJoin(p.exprSpan(expr), p.exprSpan(right)), ast.ExprLogicalData{Op: op, Left: expr, Right: right})
	}
	return expr
}

func (p *Parser) equality() ast.ExprID {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = p.exprs.NewBinary(spanJoin(p.exprSpan(expr), p.exprSpan(right)), ast.ExprBinaryData{Op: op, Left: expr, Right: right})
	}
	return expr
}

func (p *Parser) comparison() ast.ExprID {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = p.exprs.NewBinary(spanJoin(p.exprSpan(expr), p.exprSpan(right)), ast.ExprBinaryData{Op: op, Left: expr, Right: right})
	}
	return expr
}

func (p *Parser) term() ast.ExprID {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = p.exprs.NewBinary(spanJoin(p.exprSpan(expr), p.exprSpan(right)), ast.ExprBinaryData{Op: op, Left: expr, Right: right})
	}
	return expr
}

func (p *Parser) factor() ast.ExprID {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = p.exprs.NewBinary(spanJoin(p.exprSpan(expr), p.exprSpan(right)), ast.ExprBinaryData{Op: op, Left: expr, Right: right})
	}
	return expr
}

func (p *Parser) unary() ast.ExprID {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand := p.unary()
		return p.exprs.NewUnary(spanJoin(op.Span, p.exprSpan(operand)), ast.ExprUnaryData{Op: op, Operand: operand})
	}
	return p.call()
}

// call parses a primary expression followed by any number of `(args)` and
// `.name` postfixes.
func (p *Parser) call() ast.ExprID {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Ident, "Expect property name after '.'.")
			expr = p.exprs.NewGet(spanJoin(p.exprSpan(expr), name.Span), ast.ExprGetData{Object: expr, Name: name})
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.ExprID) ast.ExprID {
	var args []ast.ExprID
	if !p.check(token.RParen) {
		for {
			if len(args) >= 255 {
				p.errorHere(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RParen, "Expect ')' after arguments.")
	return p.exprs.NewCall(spanJoin(p.exprSpan(callee), paren.Span), ast.ExprCallData{Callee: callee, Paren: paren, Args: args})
}

// primary parses the grammar's terminals: literals, `this`, identifiers,
// and parenthesized expressions. A parenthesized expression has no
// dedicated AST node — the expression table has no Grouping
// variant, since the recursive-descent structure already resolves
// precedence; `(expr)` simply yields expr's own node.
func (p *Parser) primary() ast.ExprID {
	switch {
	case p.match(token.KwFalse):
		tok := p.previous()
		return p.exprs.NewLiteral(tok.Span, ast.ExprLiteralData{Kind: ast.LitBool, Bool: false})
	case p.match(token.KwTrue):
		tok := p.previous()
		return p.exprs.NewLiteral(tok.Span, ast.ExprLiteralData{Kind: ast.LitBool, Bool: true})
	case p.match(token.KwNil):
		tok := p.previous()
		return p.exprs.NewLiteral(tok.Span, ast.ExprLiteralData{Kind: ast.LitNil})
	case p.match(token.Number):
		tok := p.previous()
		return p.exprs.NewLiteral(tok.Span, ast.ExprLiteralData{Kind: ast.LitNumber, Num: tok.Literal.Num})
	case p.match(token.String):
		tok := p.previous()
		return p.exprs.NewLiteral(tok.Span, ast.ExprLiteralData{Kind: ast.LitString, Str: tok.Literal.Str})
	case p.match(token.KwThis):
		tok := p.previous()
		return p.exprs.NewThis(tok.Span, ast.ExprThisData{Keyword: tok})
	case p.match(token.Ident):
		tok := p.previous()
		return p.exprs.NewVariable(tok.Span, ast.ExprVariableData{Name: tok})
	case p.match(token.LParen):
		expr := p.expression()
		p.consume(token.RParen, "Expect ')' after expression.")
		return expr
	default:
		panic(p.errorAt(p.peek(), "Expect expression."))
	}
}
