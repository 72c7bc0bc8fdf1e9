package evaluator

import (
	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/config"
)

func (e *Evaluator) evalAssignment(n *bound.AssignmentExpression) Value {
	v := e.eval(n.Value)
	if v.IsError() {
		return v
	}
	e.heap.Set(n.Symbol.ID, v)
	return v
}

// evalCall evaluates arguments left-to-right, binds each into the
// heap under its parameter's symbol id (dynamic-scope-like, since every
// declaration got a unique id from the binder), then either asks the I/O
// capability for a line (the `input` built-in) or runs the declared
// body. The caller's values under those ids are restored when the call
// returns, so a recursive call does not clobber its caller's parameters.
func (e *Evaluator) evalCall(n *bound.CallExpression) Value {
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v := e.eval(a)
		if v.IsError() {
			return v
		}
		args[i] = v
	}
	saved := make([]Value, len(n.Symbol.Parameters))
	had := make([]bool, len(n.Symbol.Parameters))
	for i, p := range n.Symbol.Parameters {
		saved[i], had[i] = e.heap.Get(p.ID)
		e.heap.Set(p.ID, args[i])
	}
	defer func() {
		for i, p := range n.Symbol.Parameters {
			if had[i] {
				e.heap.Set(p.ID, saved[i])
			}
		}
	}()

	if n.Symbol.Name == config.InputFuncName {
		return Str(e.io.Input())
	}

	body, ok := e.heap.Func(n.Symbol.ID)
	if !ok {
		return Void
	}

	e.depth++
	if e.depth > config.MaxCallStackDepth {
		e.io.RuntimeError("call stack depth exceeded")
		e.depth--
		return Error
	}
	result := e.evalBlock(body)
	e.depth--

	if result.IsReturn() {
		return *result.Inner
	}
	return result
}

func (e *Evaluator) evalUnary(n *bound.UnaryExpression) Value {
	rhs := e.eval(n.Rhs)
	if rhs.IsError() {
		return rhs
	}
	switch n.Operator {
	case "!":
		return Bool(!rhs.Bool)
	case "-":
		return Int(-rhs.Int)
	case "+":
		return Int(rhs.Int)
	default:
		return Void
	}
}

func (e *Evaluator) evalBinary(n *bound.BinaryExpression) Value {
	lhs := e.eval(n.Lhs)
	if lhs.IsError() {
		return lhs
	}
	rhs := e.eval(n.Rhs)
	if rhs.IsError() {
		return rhs
	}

	switch n.Operator {
	case "+":
		if lhs.Kind == VString || rhs.Kind == VString {
			return Str(lhs.ToString() + rhs.ToString())
		}
		return Int(lhs.Int + rhs.Int)
	case "-":
		return Int(lhs.Int - rhs.Int)
	case "*":
		return Int(lhs.Int * rhs.Int)
	case "/":
		if rhs.Int == 0 {
			e.io.RuntimeError("division by zero")
			return Error
		}
		return Int(lhs.Int / rhs.Int)
	case "<":
		return Bool(lhs.Int < rhs.Int)
	case ">":
		return Bool(lhs.Int > rhs.Int)
	case "==":
		return Bool(lhs.Equals(rhs))
	default:
		return Void
	}
}
