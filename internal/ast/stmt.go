package ast

import (
	"lox/internal/source"
	"lox/internal/token"
)

// StmtKind enumerates the closed set of statement node variants the
// grammar produces.
type StmtKind uint8

const (
	StmtPrint StmtKind = iota
	StmtExpr
	StmtVarDecl
	StmtBlock
	StmtIf
	StmtWhile
	StmtBreak
	StmtReturn
	StmtFunctionDecl
	StmtClassDecl
)

// Stmt is a single AST statement node: its variant tag, source span, and
// an index into the payload arena selected by Kind.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload uint32
}

// StmtPrintData is the payload of a StmtPrint node.
type StmtPrintData struct{ Value ExprID }

// StmtExprData is the payload of a StmtExpr node.
type StmtExprData struct{ Value ExprID }

// StmtVarDeclData is the payload of a StmtVarDecl node. Init is NoExprID
// when the declaration has no initialiser (`var x;`).
type StmtVarDeclData struct {
	Name token.Token
	Init ExprID
}

// StmtBlockData is the payload of a StmtBlock node.
type StmtBlockData struct{ Stmts []StmtID }

// StmtIfData is the payload of a StmtIf node. Else is NoStmtID when there
// is no else branch.
type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

// StmtWhileData is the payload of a StmtWhile node.
type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

// StmtBreakData is the payload of a StmtBreak node; Keyword is kept for
// error reporting.
type StmtBreakData struct{ Keyword token.Token }

// StmtReturnData is the payload of a StmtReturn node. Value is NoExprID
// for a bare `return;`.
type StmtReturnData struct {
	Keyword token.Token
	Value   ExprID
}

// StmtFunctionDeclData is the payload of a StmtFunctionDecl node. Body is
// always a StmtBlock node.
type StmtFunctionDeclData struct {
	Name   token.Token
	Params []token.Token
	Body   StmtID
}

// StmtClassDeclData is the payload of a StmtClassDecl node. Each entry of
// Methods is itself a StmtFunctionDecl node.
type StmtClassDeclData struct {
	Name    token.Token
	Methods []StmtID
}

// Stmts owns every statement node and its per-variant payload arena for
// one Program.
type Stmts struct {
	nodes     *Arena[Stmt]
	prints    *Arena[StmtPrintData]
	exprs     *Arena[StmtExprData]
	varDecls  *Arena[StmtVarDeclData]
	blocks    *Arena[StmtBlockData]
	ifs       *Arena[StmtIfData]
	whiles    *Arena[StmtWhileData]
	breaks    *Arena[StmtBreakData]
	returns   *Arena[StmtReturnData]
	functions *Arena[StmtFunctionDeclData]
	classes   *Arena[StmtClassDeclData]
}

// NewStmts creates an empty Stmts store sized for a program of roughly
// capHint statements.
func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		nodes:     NewArena[Stmt](capHint),
		prints:    NewArena[StmtPrintData](capHint / 8),
		exprs:     NewArena[StmtExprData](capHint / 4),
		varDecls:  NewArena[StmtVarDeclData](capHint / 4),
		blocks:    NewArena[StmtBlockData](capHint / 8),
		ifs:       NewArena[StmtIfData](capHint / 8),
		whiles:    NewArena[StmtWhileData](capHint / 16),
		breaks:    NewArena[StmtBreakData](capHint / 32),
		returns:   NewArena[StmtReturnData](capHint / 16),
		functions: NewArena[StmtFunctionDeclData](capHint / 16),
		classes:   NewArena[StmtClassDeclData](capHint / 32),
	}
}

// Get returns the node at id.
func (s *Stmts) Get(id StmtID) *Stmt { return s.nodes.Get(uint32(id)) }

// Len returns the number of statement nodes allocated.
func (s *Stmts) Len() uint32 { return s.nodes.Len() }

func (s *Stmts) alloc(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.nodes.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

// NewPrint allocates a StmtPrint node.
func (s *Stmts) NewPrint(span source.Span, data StmtPrintData) StmtID {
	return s.alloc(StmtPrint, span, s.prints.Allocate(data))
}

// Print returns the payload of a, which must be a StmtPrint node.
func (s *Stmts) Print(a *Stmt) *StmtPrintData { return s.prints.Get(a.Payload) }

// NewExpr allocates a StmtExpr node.
func (s *Stmts) NewExpr(span source.Span, data StmtExprData) StmtID {
	return s.alloc(StmtExpr, span, s.exprs.Allocate(data))
}

// Expr returns the payload of a, which must be a StmtExpr node.
func (s *Stmts) Expr(a *Stmt) *StmtExprData { return s.exprs.Get(a.Payload) }

// NewVarDecl allocates a StmtVarDecl node.
func (s *Stmts) NewVarDecl(span source.Span, data StmtVarDeclData) StmtID {
	return s.alloc(StmtVarDecl, span, s.varDecls.Allocate(data))
}

// VarDecl returns the payload of a, which must be a StmtVarDecl node.
func (s *Stmts) VarDecl(a *Stmt) *StmtVarDeclData { return s.varDecls.Get(a.Payload) }

// NewBlock allocates a StmtBlock node.
func (s *Stmts) NewBlock(span source.Span, data StmtBlockData) StmtID {
	return s.alloc(StmtBlock, span, s.blocks.Allocate(data))
}

// Block returns the payload of a, which must be a StmtBlock node.
func (s *Stmts) Block(a *Stmt) *StmtBlockData { return s.blocks.Get(a.Payload) }

// NewIf allocates a StmtIf node.
func (s *Stmts) NewIf(span source.Span, data StmtIfData) StmtID {
	return s.alloc(StmtIf, span, s.ifs.Allocate(data))
}

// If returns the payload of a, which must be a StmtIf node.
func (s *Stmts) If(a *Stmt) *StmtIfData { return s.ifs.Get(a.Payload) }

// NewWhile allocates a StmtWhile node.
func (s *Stmts) NewWhile(span source.Span, data StmtWhileData) StmtID {
	return s.alloc(StmtWhile, span, s.whiles.Allocate(data))
}

// While returns the payload of a, which must be a StmtWhile node.
func (s *Stmts) While(a *Stmt) *StmtWhileData { return s.whiles.Get(a.Payload) }

// NewBreak allocates a StmtBreak node.
func (s *Stmts) NewBreak(span source.Span, data StmtBreakData) StmtID {
	return s.alloc(StmtBreak, span, s.breaks.Allocate(data))
}

// Break returns the payload of a, which must be a StmtBreak node.
func (s *Stmts) Break(a *Stmt) *StmtBreakData { return s.breaks.Get(a.Payload) }

// NewReturn allocates a StmtReturn node.
func (s *Stmts) NewReturn(span source.Span, data StmtReturnData) StmtID {
	return s.alloc(StmtReturn, span, s.returns.Allocate(data))
}

// Return returns the payload of a, which must be a StmtReturn node.
func (s *Stmts) Return(a *Stmt) *StmtReturnData { return s.returns.Get(a.Payload) }

// NewFunctionDecl allocates a StmtFunctionDecl node.
func (s *Stmts) NewFunctionDecl(span source.Span, data StmtFunctionDeclData) StmtID {
	return s.alloc(StmtFunctionDecl, span, s.functions.Allocate(data))
}

// FunctionDecl returns the payload of a, which must be a StmtFunctionDecl node.
func (s *Stmts) FunctionDecl(a *Stmt) *StmtFunctionDeclData { return s.functions.Get(a.Payload) }

// NewClassDecl allocates a StmtClassDecl node.
func (s *Stmts) NewClassDecl(span source.Span, data StmtClassDeclData) StmtID {
	return s.alloc(StmtClassDecl, span, s.classes.Allocate(data))
}

// ClassDecl returns the payload of a, which must be a StmtClassDecl node.
func (s *Stmts) ClassDecl(a *Stmt) *StmtClassDeclData { return s.classes.Get(a.Payload) }

// String returns a human-readable name for the kind, used in debug dumps.
func (k StmtKind) String() string {
	switch k {
	case StmtPrint:
		return "Print"
	case StmtExpr:
		return "Expr"
	case StmtVarDecl:
		return "VarDecl"
	case StmtBlock:
		return "Block"
	case StmtIf:
		return "If"
	case StmtWhile:
		return "While"
	case StmtBreak:
		return "Break"
	case StmtReturn:
		return "Return"
	case StmtFunctionDecl:
		return "FunctionDecl"
	case StmtClassDecl:
		return "ClassDecl"
	default:
		return "?"
	}
}
