package eval

import (
	"lox/internal/ast"
	"lox/internal/token"
	"lox/internal/value"
)

// evalExpr evaluates id and returns its value, or the first runtime
// error encountered.
func (ev *Evaluator) evalExpr(id ast.ExprID) (value.Value, error) {
	e := ev.exprs.Get(id)
	switch e.Kind {
	case ast.ExprLiteral:
		return ev.evalLiteral(ev.exprs.Literal(e)), nil
	case ast.ExprUnary:
		return ev.evalUnary(ev.exprs.Unary(e))
	case ast.ExprBinary:
		return ev.evalBinary(ev.exprs.Binary(e))
	case ast.ExprLogical:
		return ev.evalLogical(ev.exprs.Logical(e))
	case ast.ExprVariable:
		d := ev.exprs.Variable(e)
		return ev.lookupVariable(id, d.Name.Lexeme, d.Name.Line)
	case ast.ExprAssign:
		return ev.evalAssign(id, ev.exprs.Assign(e))
	case ast.ExprCall:
		return ev.evalCall(ev.exprs.Call(e))
	case ast.ExprGet:
		return ev.evalGet(ev.exprs.GetData(e))
	case ast.ExprSet:
		return ev.evalSet(ev.exprs.SetData(e))
	case ast.ExprThis:
		d := ev.exprs.This(e)
		return ev.lookupVariable(id, d.Keyword.Lexeme, d.Keyword.Line)
	default:
		return value.Value{}, runtimeErrorf(0, "unreachable expression kind")
	}
}

func (ev *Evaluator) evalLiteral(d *ast.ExprLiteralData) value.Value {
	switch d.Kind {
	case ast.LitNil:
		return value.Nil
	case ast.LitBool:
		return value.MakeBool(d.Bool)
	case ast.LitNumber:
		return value.MakeNumber(d.Num)
	case ast.LitString:
		return value.MakeString(d.Str)
	default:
		return value.Nil
	}
}

func (ev *Evaluator) evalUnary(d *ast.ExprUnaryData) (value.Value, error) {
	operand, err := ev.evalExpr(d.Operand)
	if err != nil {
		return value.Value{}, err
	}
	switch d.Op.Kind {
	case token.Minus:
		if operand.Kind != value.KindNumber {
			return value.Value{}, runtimeErrorf(d.Op.Line, "Operand must be a number.")
		}
		return value.MakeNumber(-operand.Num), nil
	case token.Bang:
		return value.MakeBool(!operand.IsTruthy()), nil
	default:
		return value.Value{}, runtimeErrorf(d.Op.Line, "unreachable unary operator")
	}
}

func (ev *Evaluator) evalBinary(d *ast.ExprBinaryData) (value.Value, error) {
	left, err := ev.evalExpr(d.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := ev.evalExpr(d.Right)
	if err != nil {
		return value.Value{}, err
	}

	switch d.Op.Kind {
	case token.Plus:
		if left.Kind == value.KindNumber && right.Kind == value.KindNumber {
			return value.MakeNumber(left.Num + right.Num), nil
		}
		if left.Kind == value.KindString && right.Kind == value.KindString {
			return value.MakeString(*left.Str + *right.Str), nil
		}
		return value.Value{}, runtimeErrorf(d.Op.Line, "Binary operator values not compatible")
	case token.Minus:
		a, b, err := bothNumbers(d.Op.Line, left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeNumber(a - b), nil
	case token.Star:
		a, b, err := bothNumbers(d.Op.Line, left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeNumber(a * b), nil
	case token.Slash:
		a, b, err := bothNumbers(d.Op.Line, left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeNumber(a / b), nil // IEEE-754 passthrough on zero
	case token.Greater:
		a, b, err := bothNumbers(d.Op.Line, left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeBool(a > b), nil
	case token.GreaterEqual:
		a, b, err := bothNumbers(d.Op.Line, left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeBool(a >= b), nil
	case token.Less:
		a, b, err := bothNumbers(d.Op.Line, left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeBool(a < b), nil
	case token.LessEqual:
		a, b, err := bothNumbers(d.Op.Line, left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.MakeBool(a <= b), nil
	case token.EqualEqual:
		return value.MakeBool(left.Equals(right)), nil
	case token.BangEqual:
		return value.MakeBool(!left.Equals(right)), nil
	default:
		return value.Value{}, runtimeErrorf(d.Op.Line, "unreachable binary operator")
	}
}

func bothNumbers(line uint32, a, b value.Value) (float64, float64, error) {
	if a.Kind != value.KindNumber || b.Kind != value.KindNumber {
		return 0, 0, runtimeErrorf(line, "Operands must be numbers.")
	}
	return a.Num, b.Num, nil
}

func (ev *Evaluator) evalLogical(d *ast.ExprLogicalData) (value.Value, error) {
	left, err := ev.evalExpr(d.Left)
	if err != nil {
		return value.Value{}, err
	}
	if d.Op.Kind == token.KwOr {
		if left.IsTruthy() {
			return left, nil
		}
		return ev.evalExpr(d.Right)
	}
	// and
	if !left.IsTruthy() {
		return left, nil
	}
	return ev.evalExpr(d.Right)
}

func (ev *Evaluator) evalAssign(id ast.ExprID, d *ast.ExprAssignData) (value.Value, error) {
	v, err := ev.evalExpr(d.Value)
	if err != nil {
		return value.Value{}, err
	}
	if b, ok := ev.bindings[id]; ok {
		ev.env.Ancestor(b.Depth).SetSlot(b.Slot, v)
		return v, nil
	}
	if !ev.globals.AssignGlobal(d.Name.Lexeme, v) {
		return value.Value{}, runtimeErrorf(d.Name.Line, "Undefined variable '%s'.", d.Name.Lexeme)
	}
	return v, nil
}

func (ev *Evaluator) evalCall(d *ast.ExprCallData) (value.Value, error) {
	callee, err := ev.evalExpr(d.Callee)
	if err != nil {
		return value.Value{}, err
	}

	args := make([]value.Value, 0, len(d.Args))
	for _, argID := range d.Args {
		v, err := ev.evalExpr(argID)
		if err != nil {
			return value.Value{}, err
		}
		args = append(args, v)
	}

	if callee.Kind != value.KindObject {
		return value.Value{}, runtimeErrorf(d.Paren.Line, "Can only call functions and classes.")
	}
	callable, ok := callee.Obj.(value.Callable)
	if !ok {
		return value.Value{}, runtimeErrorf(d.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return value.Value{}, runtimeErrorf(d.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(ev, args)
}

func (ev *Evaluator) evalGet(d *ast.ExprGetData) (value.Value, error) {
	obj, err := ev.evalExpr(d.Object)
	if err != nil {
		return value.Value{}, err
	}
	instance, ok := asInstance(obj)
	if !ok {
		return value.Value{}, runtimeErrorf(d.Name.Line, "Only instances have properties")
	}
	v, ok := instance.Get(d.Name.Lexeme)
	if !ok {
		return value.Value{}, runtimeErrorf(d.Name.Line, "Undefined property '%s'.", d.Name.Lexeme)
	}
	return v, nil
}

func (ev *Evaluator) evalSet(d *ast.ExprSetData) (value.Value, error) {
	obj, err := ev.evalExpr(d.Object)
	if err != nil {
		return value.Value{}, err
	}
	instance, ok := asInstance(obj)
	if !ok {
		return value.Value{}, runtimeErrorf(d.Name.Line, "Only instances have fields")
	}
	v, err := ev.evalExpr(d.Value)
	if err != nil {
		return value.Value{}, err
	}
	instance.Set(d.Name.Lexeme, v)
	return v, nil
}

func asInstance(v value.Value) (*value.Instance, bool) {
	if v.Kind != value.KindObject {
		return nil, false
	}
	inst, ok := v.Obj.(*value.Instance)
	return inst, ok
}
