package evaluator

import "github.com/ibcompiler/ib/internal/bound"

func (e *Evaluator) evalOutput(n *bound.OutputStatement) Value {
	v := e.eval(n.Expr)
	if v.IsError() {
		return v
	}
	e.io.Output(v.ToString() + "\n")
	return Void
}

func (e *Evaluator) evalReturn(n *bound.ReturnStatement) Value {
	if n.Expr == nil {
		return Return(Void)
	}
	v := e.eval(n.Expr)
	if v.IsError() {
		return v
	}
	return Return(v)
}

func (e *Evaluator) evalIf(n *bound.IfStatement) Value {
	cond := e.eval(n.Cond)
	if cond.IsError() {
		return cond
	}
	if cond.Bool {
		return e.evalBlock(n.Block)
	}
	if n.Else != nil {
		return e.evalBlock(n.Else)
	}
	return Void
}

func (e *Evaluator) evalForLoop(n *bound.ForLoop) Value {
	lower := e.eval(n.Lower)
	upper := e.eval(n.Upper)
	if lower.IsError() {
		return lower
	}
	if upper.IsError() {
		return upper
	}
	for i := lower.Int; i < upper.Int; i++ {
		e.heap.Set(n.Symbol.ID, Int(i))
		v := e.evalBlock(n.Block)
		if v.IsReturn() || v.IsError() {
			return v
		}
	}
	return Void
}

func (e *Evaluator) evalWhileLoop(n *bound.WhileLoop) Value {
	for {
		cond := e.eval(n.Cond)
		if cond.IsError() {
			return cond
		}
		if !cond.Bool {
			return Void
		}
		v := e.evalBlock(n.Block)
		if v.IsReturn() || v.IsError() {
			return v
		}
	}
}
