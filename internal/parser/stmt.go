package parser

import (
	"lox/internal/ast"
	"lox/internal/token"
)

// statement parses one non-declaration statement.
func (p *Parser) statement() ast.StmtID {
	switch {
	case p.match(token.KwPrint):
		return p.printStatement()
	case p.match(token.KwReturn):
		return p.returnStatement()
	case p.match(token.KwBreak):
		return p.breakStatement()
	case p.match(token.KwIf):
		return p.ifStatement()
	case p.match(token.KwWhile):
		return p.whileStatement()
	case p.match(token.KwFor):
		return p.forStatement()
	case p.match(token.LBrace):
		return p.block(p.previous())
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.StmtID {
	start := p.previous()
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return p.stmts.NewPrint(p.spanFrom(start), ast.StmtPrintData{Value: value})
}

func (p *Parser) expressionStatement() ast.StmtID {
	start := p.peek()
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return p.stmts.NewExpr(p.spanFrom(start), ast.StmtExprData{Value: value})
}

func (p *Parser) returnStatement() ast.StmtID {
	keyword := p.previous()
	value := ast.NoExprID
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return p.stmts.NewReturn(p.spanFrom(keyword), ast.StmtReturnData{Keyword: keyword, Value: value})
}

func (p *Parser) breakStatement() ast.StmtID {
	keyword := p.previous()
	p.consume(token.Semicolon, "Expect ';' after 'break'.")
	return p.stmts.NewBreak(p.spanFrom(keyword), ast.StmtBreakData{Keyword: keyword})
}

// block parses statements up to and including the closing '}'. openBrace
// is the already-consumed '{' token.
func (p *Parser) block(openBrace token.Token) ast.StmtID {
	var stmts []ast.StmtID
	for !p.check(token.RBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RBrace, "Expect '}' after block.")
	return p.stmts.NewBlock(p.spanFrom(openBrace), ast.StmtBlockData{Stmts: stmts})
}

func (p *Parser) ifStatement() ast.StmtID {
	start := p.previous()
	p.consume(token.LParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	elseBranch := ast.NoStmtID
	if p.match(token.KwElse) {
		elseBranch = p.statement()
	}

	return p.stmts.NewIf(p.spanFrom(start), ast.StmtIfData{Cond: cond, Then: thenBranch, Else: elseBranch})
}

func (p *Parser) whileStatement() ast.StmtID {
	start := p.previous()
	p.consume(token.LParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RParen, "Expect ')' after condition.")
	body := p.statement()

	return p.stmts.NewWhile(p.spanFrom(start), ast.StmtWhileData{Cond: cond, Body: body})
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }` at parse time, so the
// resolver and evaluator never need a distinct for-loop construct.
func (p *Parser) forStatement() ast.StmtID {
	start := p.previous()
	p.consume(token.LParen, "Expect '(' after 'for'.")

	init := ast.NoStmtID
	switch {
	case p.match(token.Semicolon):
		// no initializer
	case p.match(token.KwVar):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	cond := ast.NoExprID
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	incr := ast.NoExprID
	if !p.check(token.RParen) {
		incr = p.expression()
	}
	p.consume(token.RParen, "Expect ')' after for clauses.")

	body := p.statement()

	if incr.IsValid() {
		incrSpan := p.exprSpan(incr)
		incrStmt := p.stmts.NewExpr(incrSpan, ast.StmtExprData{Value: incr})
		body = p.stmts.NewBlock(p.spanFrom(start), ast.StmtBlockData{Stmts: []ast.StmtID{body, incrStmt}})
	}

	if !cond.IsValid() {
		cond = p.exprs.NewLiteral(start.Span, ast.ExprLiteralData{Kind: ast.LitBool, Bool: true})
	}
	body = p.stmts.NewWhile(p.spanFrom(start), ast.StmtWhileData{Cond: cond, Body: body})

	if init.IsValid() {
		body = p.stmts.NewBlock(p.spanFrom(start), ast.StmtBlockData{Stmts: []ast.StmtID{init, body}})
	}

	return body
}
