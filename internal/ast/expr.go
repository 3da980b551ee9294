package ast

import (
	"lox/internal/source"
	"lox/internal/token"
)

// ExprKind enumerates the closed set of expression node variants the
// grammar produces.
type ExprKind uint8

const (
	// ExprLiteral is a literal value: nil, a bool, a number, or a string.
	ExprLiteral ExprKind = iota
	// ExprUnary is a prefix `-` or `!` applied to an operand.
	ExprUnary
	// ExprBinary is an infix arithmetic, comparison, or equality operator.
	ExprBinary
	// ExprLogical is `and`/`or`, which short-circuits and is not a normal
	// binary operator (it never evaluates its right operand eagerly).
	ExprLogical
	// ExprVariable reads a named variable.
	ExprVariable
	// ExprAssign stores into a named variable.
	ExprAssign
	// ExprCall invokes a callable with zero or more arguments.
	ExprCall
	// ExprGet reads a property off an instance.
	ExprGet
	// ExprSet stores into a property on an instance.
	ExprSet
	// ExprThis is a `this` reference inside a method body.
	ExprThis
)

// Expr is a single AST expression node: its variant tag, source span, and
// an index into the payload arena selected by Kind. ExprID (the arena
// index under which this Expr itself is stored) is the node's stable
// identity, used by the resolver as a side-table key.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload uint32
}

// LiteralKind enumerates Lox's four literal value shapes: nil, bool,
// number, and string.
type LiteralKind uint8

const (
	LitNil LiteralKind = iota
	LitBool
	LitNumber
	LitString
)

// ExprLiteralData is the payload of an ExprLiteral node.
type ExprLiteralData struct {
	Kind LiteralKind
	Bool bool
	Num  float64
	Str  string
}

// ExprUnaryData is the payload of an ExprUnary node.
type ExprUnaryData struct {
	Op      token.Token
	Operand ExprID
}

// ExprBinaryData is the payload of an ExprBinary node.
type ExprBinaryData struct {
	Op    token.Token
	Left  ExprID
	Right ExprID
}

// ExprLogicalData is the payload of an ExprLogical node.
type ExprLogicalData struct {
	Op    token.Token
	Left  ExprID
	Right ExprID
}

// ExprVariableData is the payload of an ExprVariable node.
type ExprVariableData struct {
	Name token.Token
}

// ExprAssignData is the payload of an ExprAssign node.
type ExprAssignData struct {
	Name  token.Token
	Value ExprID
}

// ExprCallData is the payload of an ExprCall node.
type ExprCallData struct {
	Callee ExprID
	Paren  token.Token // the closing ')' token, for error-reporting location
	Args   []ExprID
}

// ExprGetData is the payload of an ExprGet node.
type ExprGetData struct {
	Object ExprID
	Name   token.Token
}

// ExprSetData is the payload of an ExprSet node.
type ExprSetData struct {
	Object ExprID
	Name   token.Token
	Value  ExprID
}

// ExprThisData is the payload of an ExprThis node.
type ExprThisData struct {
	Keyword token.Token
}

// Exprs owns every expression node and its per-variant payload arena for
// one Program.
type Exprs struct {
	nodes     *Arena[Expr]
	literals  *Arena[ExprLiteralData]
	unaries   *Arena[ExprUnaryData]
	binaries  *Arena[ExprBinaryData]
	logicals  *Arena[ExprLogicalData]
	variables *Arena[ExprVariableData]
	assigns   *Arena[ExprAssignData]
	calls     *Arena[ExprCallData]
	gets      *Arena[ExprGetData]
	sets      *Arena[ExprSetData]
	thises    *Arena[ExprThisData]
}

// NewExprs creates an empty Exprs store sized for a program of roughly
// capHint expressions.
func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		nodes:     NewArena[Expr](capHint),
		literals:  NewArena[ExprLiteralData](capHint / 4),
		unaries:   NewArena[ExprUnaryData](capHint / 8),
		binaries:  NewArena[ExprBinaryData](capHint / 4),
		logicals:  NewArena[ExprLogicalData](capHint / 16),
		variables: NewArena[ExprVariableData](capHint / 4),
		assigns:   NewArena[ExprAssignData](capHint / 16),
		calls:     NewArena[ExprCallData](capHint / 8),
		gets:      NewArena[ExprGetData](capHint / 16),
		sets:      NewArena[ExprSetData](capHint / 16),
		thises:    NewArena[ExprThisData](capHint / 16),
	}
}

// Get returns the node at id.
func (e *Exprs) Get(id ExprID) *Expr { return e.nodes.Get(uint32(id)) }

// Len returns the number of expression nodes allocated.
func (e *Exprs) Len() uint32 { return e.nodes.Len() }

func (e *Exprs) alloc(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.nodes.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// NewLiteral allocates an ExprLiteral node.
func (e *Exprs) NewLiteral(span source.Span, data ExprLiteralData) ExprID {
	return e.alloc(ExprLiteral, span, e.literals.Allocate(data))
}

// Literal returns the payload of a, which must be an ExprLiteral node.
func (e *Exprs) Literal(a *Expr) *ExprLiteralData { return e.literals.Get(a.Payload) }

// NewUnary allocates an ExprUnary node.
func (e *Exprs) NewUnary(span source.Span, data ExprUnaryData) ExprID {
	return e.alloc(ExprUnary, span, e.unaries.Allocate(data))
}

// Unary returns the payload of a, which must be an ExprUnary node.
func (e *Exprs) Unary(a *Expr) *ExprUnaryData { return e.unaries.Get(a.Payload) }

// NewBinary allocates an ExprBinary node.
func (e *Exprs) NewBinary(span source.Span, data ExprBinaryData) ExprID {
	return e.alloc(ExprBinary, span, e.binaries.Allocate(data))
}

// Binary returns the payload of a, which must be an ExprBinary node.
func (e *Exprs) Binary(a *Expr) *ExprBinaryData { return e.binaries.Get(a.Payload) }

// NewLogical allocates an ExprLogical node.
func (e *Exprs) NewLogical(span source.Span, data ExprLogicalData) ExprID {
	return e.alloc(ExprLogical, span, e.logicals.Allocate(data))
}

// Logical returns the payload of a, which must be an ExprLogical node.
func (e *Exprs) Logical(a *Expr) *ExprLogicalData { return e.logicals.Get(a.Payload) }

// NewVariable allocates an ExprVariable node.
func (e *Exprs) NewVariable(span source.Span, data ExprVariableData) ExprID {
	return e.alloc(ExprVariable, span, e.variables.Allocate(data))
}

// Variable returns the payload of a, which must be an ExprVariable node.
func (e *Exprs) Variable(a *Expr) *ExprVariableData { return e.variables.Get(a.Payload) }

// NewAssign allocates an ExprAssign node.
func (e *Exprs) NewAssign(span source.Span, data ExprAssignData) ExprID {
	return e.alloc(ExprAssign, span, e.assigns.Allocate(data))
}

// Assign returns the payload of a, which must be an ExprAssign node.
func (e *Exprs) Assign(a *Expr) *ExprAssignData { return e.assigns.Get(a.Payload) }

// NewCall allocates an ExprCall node.
func (e *Exprs) NewCall(span source.Span, data ExprCallData) ExprID {
	return e.alloc(ExprCall, span, e.calls.Allocate(data))
}

// Call returns the payload of a, which must be an ExprCall node.
func (e *Exprs) Call(a *Expr) *ExprCallData { return e.calls.Get(a.Payload) }

// NewGet allocates an ExprGet node.
func (e *Exprs) NewGet(span source.Span, data ExprGetData) ExprID {
	return e.alloc(ExprGet, span, e.gets.Allocate(data))
}

// GetData returns the payload of a, which must be an ExprGet node.
func (e *Exprs) GetData(a *Expr) *ExprGetData { return e.gets.Get(a.Payload) }

// NewSet allocates an ExprSet node.
func (e *Exprs) NewSet(span source.Span, data ExprSetData) ExprID {
	return e.alloc(ExprSet, span, e.sets.Allocate(data))
}

// SetData returns the payload of a, which must be an ExprSet node.
func (e *Exprs) SetData(a *Expr) *ExprSetData { return e.sets.Get(a.Payload) }

// NewThis allocates an ExprThis node.
func (e *Exprs) NewThis(span source.Span, data ExprThisData) ExprID {
	return e.alloc(ExprThis, span, e.thises.Allocate(data))
}

// This returns the payload of a, which must be an ExprThis node.
func (e *Exprs) This(a *Expr) *ExprThisData { return e.thises.Get(a.Payload) }

// String returns a human-readable name for the kind, used in debug dumps.
func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "Literal"
	case ExprUnary:
		return "Unary"
	case ExprBinary:
		return "Binary"
	case ExprLogical:
		return "Logical"
	case ExprVariable:
		return "Variable"
	case ExprAssign:
		return "Assign"
	case ExprCall:
		return "Call"
	case ExprGet:
		return "Get"
	case ExprSet:
		return "Set"
	case ExprThis:
		return "This"
	default:
		return "?"
	}
}
