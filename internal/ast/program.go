package ast

import (
	"lox/internal/source"
	"lox/internal/token"
)

// Program is the root of one parsed source file (or REPL line): the
// source it was scanned from, its flat token stream, the expression and
// statement arenas, and the ordered list of top-level statements.
type Program struct {
	File       *source.File
	Tokens     []token.Token
	Exprs      *Exprs
	Stmts      *Stmts
	Statements []StmtID
}

// NewProgram creates an empty Program over file, sized for roughly
// tokenHint tokens.
func NewProgram(file *source.File, tokenHint uint) *Program {
	return &Program{
		File:       file,
		Exprs:      NewExprs(tokenHint),
		Stmts:      NewStmts(tokenHint),
		Statements: make([]StmtID, 0, tokenHint/4),
	}
}
