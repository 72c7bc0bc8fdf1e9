// Package bound defines the typed tree the binder produces: syntax
// nodes with names replaced by resolved symbols and types attached.
package bound

import (
	"github.com/ibcompiler/ib/internal/span"
	"github.com/ibcompiler/ib/internal/symbols"
	"github.com/ibcompiler/ib/internal/typesystem"
)

// Node is any bound tree node.
type Node interface {
	Span() span.Span
	Type() typesystem.Type
}

type base struct {
	Sp span.Span
	Ty typesystem.Type
}

func (b base) Span() span.Span      { return b.Sp }
func (b base) Type() typesystem.Type { return b.Ty }

type Module struct {
	base
	Block *Block
}

type Block struct {
	base
	Children []Node
}

type OutputStatement struct {
	base
	Expr Node
}

// ReturnStatement's Expr is nil for a bare `return`.
type ReturnStatement struct {
	base
	Expr Node
}

type IfStatement struct {
	base
	Cond  Node
	Block *Block
	Else  *Block // nil when there is no else clause
}

// FunctionDeclaration's Body is shared with the evaluator's heap of
// function bodies once evaluated.
type FunctionDeclaration struct {
	base
	Symbol symbols.Function
	Body   *Block
}

type ForLoop struct {
	base
	Symbol symbols.Variable
	Lower  Node
	Upper  Node
	Block  *Block
}

type WhileLoop struct {
	base
	Cond  Node
	Block *Block
}

type BinaryExpression struct {
	base
	Lhs      Node
	Operator string
	Rhs      Node
}

type UnaryExpression struct {
	base
	Operator string
	Rhs      Node
}

type AssignmentExpression struct {
	base
	Symbol symbols.Variable
	Value  Node
}

// CallExpression invokes a declared or built-in function.
type CallExpression struct {
	base
	Symbol symbols.Function
	Args   []Node
}

type ReferenceExpression struct {
	base
	Symbol symbols.Variable
}

// ObjectExpression is the result of `new Type[<Param>]()`.
type ObjectExpression struct {
	base
}

// ObjectMemberExpression's Next is always a CallExpression against the
// method table derived from Base's type.
type ObjectMemberExpression struct {
	base
	Base Node
	Next *CallExpression
}

type NumberLiteral struct {
	base
	Value int64
}

type BooleanLiteral struct {
	base
	Value bool
}

type StringLiteral struct {
	base
	Value string
}

// Constructors set base fields so callers don't repeat the embedding.

func NewModule(sp span.Span, block *Block) *Module {
	return &Module{base: base{Sp: sp, Ty: typesystem.TVoid}, Block: block}
}

func NewBlock(sp span.Span, children []Node) *Block {
	return &Block{base: base{Sp: sp, Ty: typesystem.TVoid}, Children: children}
}

func NewOutputStatement(sp span.Span, expr Node) *OutputStatement {
	return &OutputStatement{base: base{Sp: sp, Ty: typesystem.TVoid}, Expr: expr}
}

// NewReturnStatement's Ty mirrors the returned expression's type (Void
// for a bare `return`), since the control-flow stage reads it back off
// to check the enclosing function's declared return type.
func NewReturnStatement(sp span.Span, expr Node) *ReturnStatement {
	ty := typesystem.TVoid
	if expr != nil {
		ty = expr.Type()
	}
	return &ReturnStatement{base: base{Sp: sp, Ty: ty}, Expr: expr}
}

func NewIfStatement(sp span.Span, cond Node, block, elseBlock *Block) *IfStatement {
	return &IfStatement{base: base{Sp: sp, Ty: typesystem.TVoid}, Cond: cond, Block: block, Else: elseBlock}
}

func NewFunctionDeclaration(sp span.Span, sym symbols.Function, body *Block) *FunctionDeclaration {
	return &FunctionDeclaration{base: base{Sp: sp, Ty: typesystem.TVoid}, Symbol: sym, Body: body}
}

func NewForLoop(sp span.Span, sym symbols.Variable, lower, upper Node, block *Block) *ForLoop {
	return &ForLoop{base: base{Sp: sp, Ty: typesystem.TVoid}, Symbol: sym, Lower: lower, Upper: upper, Block: block}
}

func NewWhileLoop(sp span.Span, cond Node, block *Block) *WhileLoop {
	return &WhileLoop{base: base{Sp: sp, Ty: typesystem.TVoid}, Cond: cond, Block: block}
}

func NewBinaryExpression(sp span.Span, ty typesystem.Type, lhs Node, op string, rhs Node) *BinaryExpression {
	return &BinaryExpression{base: base{Sp: sp, Ty: ty}, Lhs: lhs, Operator: op, Rhs: rhs}
}

func NewUnaryExpression(sp span.Span, ty typesystem.Type, op string, rhs Node) *UnaryExpression {
	return &UnaryExpression{base: base{Sp: sp, Ty: ty}, Operator: op, Rhs: rhs}
}

func NewAssignmentExpression(sp span.Span, sym symbols.Variable, value Node) *AssignmentExpression {
	return &AssignmentExpression{base: base{Sp: sp, Ty: sym.Type}, Symbol: sym, Value: value}
}

func NewCallExpression(sp span.Span, sym symbols.Function, args []Node) *CallExpression {
	return &CallExpression{base: base{Sp: sp, Ty: sym.ReturnType}, Symbol: sym, Args: args}
}

func NewReferenceExpression(sp span.Span, sym symbols.Variable) *ReferenceExpression {
	return &ReferenceExpression{base: base{Sp: sp, Ty: sym.Type}, Symbol: sym}
}

func NewObjectExpression(sp span.Span, ty typesystem.Type) *ObjectExpression {
	return &ObjectExpression{base: base{Sp: sp, Ty: ty}}
}

func NewObjectMemberExpression(sp span.Span, base_ Node, next *CallExpression) *ObjectMemberExpression {
	return &ObjectMemberExpression{base: base{Sp: sp, Ty: next.Type()}, Base: base_, Next: next}
}

func NewNumberLiteral(sp span.Span, value int64) *NumberLiteral {
	return &NumberLiteral{base: base{Sp: sp, Ty: typesystem.TInt}, Value: value}
}

func NewBooleanLiteral(sp span.Span, value bool) *BooleanLiteral {
	return &BooleanLiteral{base: base{Sp: sp, Ty: typesystem.TBoolean}, Value: value}
}

func NewStringLiteral(sp span.Span, value string) *StringLiteral {
	return &StringLiteral{base: base{Sp: sp, Ty: typesystem.TString}, Value: value}
}
