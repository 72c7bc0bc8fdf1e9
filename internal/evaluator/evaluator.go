// Package evaluator is the tree-walking interpreter that runs a bound
// IB module against an I/O capability, following the teacher's
// evaluator/object split of tagged runtime values plus heap-addressed
// mutable state.
package evaluator

import "github.com/ibcompiler/ib/internal/bound"

// Evaluator walks a bound tree once, against one Heap and one IO
// capability, recording each function's body as it's declared so later
// calls can find it.
type Evaluator struct {
	heap  *Heap
	io    IO
	depth int
}

// New builds an Evaluator with a fresh heap.
func New(io IO) *Evaluator {
	return &Evaluator{heap: NewHeap(), io: io}
}

// Run evaluates a whole module. Observable effects occur only through
// the IO capability supplied at construction.
func (e *Evaluator) Run(module *bound.Module) {
	e.evalBlock(module.Block)
}

func (e *Evaluator) eval(node bound.Node) Value {
	switch n := node.(type) {
	case *bound.Block:
		return e.evalBlock(n)
	case *bound.OutputStatement:
		return e.evalOutput(n)
	case *bound.ReturnStatement:
		return e.evalReturn(n)
	case *bound.IfStatement:
		return e.evalIf(n)
	case *bound.FunctionDeclaration:
		e.heap.DeclareFunc(n.Symbol.ID, n.Body)
		return Void
	case *bound.ForLoop:
		return e.evalForLoop(n)
	case *bound.WhileLoop:
		return e.evalWhileLoop(n)
	case *bound.AssignmentExpression:
		return e.evalAssignment(n)
	case *bound.ReferenceExpression:
		v, _ := e.heap.Get(n.Symbol.ID)
		return v
	case *bound.CallExpression:
		return e.evalCall(n)
	case *bound.BinaryExpression:
		return e.evalBinary(n)
	case *bound.UnaryExpression:
		return e.evalUnary(n)
	case *bound.ObjectExpression:
		return Obj(NewObject(n.Type()))
	case *bound.ObjectMemberExpression:
		return e.evalObjectMember(n)
	case *bound.NumberLiteral:
		return Int(n.Value)
	case *bound.BooleanLiteral:
		return Bool(n.Value)
	case *bound.StringLiteral:
		return Str(n.Value)
	default:
		return Void
	}
}

// evalBlock evaluates children in order, stopping and propagating the
// instant any child yields Return or Error — no sibling after it runs.
func (e *Evaluator) evalBlock(b *bound.Block) Value {
	for _, child := range b.Children {
		v := e.eval(child)
		if v.IsReturn() || v.IsError() {
			return v
		}
	}
	return Void
}
