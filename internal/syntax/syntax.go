// Package syntax defines the untyped syntax tree the parser produces:
// SyntaxToken nodes carrying spans, names and child nodes, pre-binding.
package syntax

import "github.com/ibcompiler/ib/internal/span"

// Node is any syntax tree token. Every concrete kind below implements it.
type Node interface {
	Span() span.Span
}

// Scope is a sequence of statements delimited by the caller's keyword
// (function body, if/loop body, or the top-level module).
type Scope struct {
	Sp         span.Span
	Statements []Node
}

func (n *Scope) Span() span.Span { return n.Sp }

type OutputStatement struct {
	Sp   span.Span
	Expr Node
}

func (n *OutputStatement) Span() span.Span { return n.Sp }

// ReturnStatement's Expr is nil for a bare `return`.
type ReturnStatement struct {
	Sp   span.Span
	Expr Node
}

func (n *ReturnStatement) Span() span.Span { return n.Sp }

// IfStatement's Else is nil when there is no else clause.
type IfStatement struct {
	Sp   span.Span
	Cond Node
	Body *Scope
	Else *Scope
}

func (n *IfStatement) Span() span.Span { return n.Sp }

type Parameter struct {
	Sp       span.Span
	Name     string
	TypeName string
	Generic  string // non-empty for a parameterised type name, e.g. Array<Int>
}

func (n *Parameter) Span() span.Span { return n.Sp }

// FunctionDeclaration's ReturnType is "" when omitted (implies Void).
type FunctionDeclaration struct {
	Sp         span.Span
	Name       string
	Params     []*Parameter
	ReturnType string
	Generic    string
	Body       *Scope
}

func (n *FunctionDeclaration) Span() span.Span { return n.Sp }

type ForLoop struct {
	Sp    span.Span
	Name  string
	Lower Node
	Upper Node
	Body  *Scope
}

func (n *ForLoop) Span() span.Span { return n.Sp }

type WhileLoop struct {
	Sp   span.Span
	Cond Node
	Body *Scope
}

func (n *WhileLoop) Span() span.Span { return n.Sp }

type BinaryExpression struct {
	Sp       span.Span
	Lhs      Node
	Operator string
	Rhs      Node
}

func (n *BinaryExpression) Span() span.Span { return n.Sp }

type UnaryExpression struct {
	Sp       span.Span
	Operator string
	Rhs      Node
}

func (n *UnaryExpression) Span() span.Span { return n.Sp }

type ParenthesizedExpression struct {
	Sp    span.Span
	Inner Node
}

func (n *ParenthesizedExpression) Span() span.Span { return n.Sp }

type AssignmentExpression struct {
	Sp    span.Span
	Name  string
	Value Node
}

func (n *AssignmentExpression) Span() span.Span { return n.Sp }

type CallExpression struct {
	Sp   span.Span
	Name string
	Args []Node
}

func (n *CallExpression) Span() span.Span { return n.Sp }

type ReferenceExpression struct {
	Sp   span.Span
	Name string
}

func (n *ReferenceExpression) Span() span.Span { return n.Sp }

// ObjectMemberExpression chains through Next for multi-hop access
// (a.b.c); Next is itself a reference-based expression (Reference, Call
// or another ObjectMemberExpression).
type ObjectMemberExpression struct {
	Sp   span.Span
	Base Node
	Next Node
}

func (n *ObjectMemberExpression) Span() span.Span { return n.Sp }

// InstantiationExpression is `new TypeName[<TypeParam>](args...)`.
// TypeParam is "" when the type isn't generic.
type InstantiationExpression struct {
	Sp        span.Span
	TypeName  string
	TypeParam string
	Args      []Node
}

func (n *InstantiationExpression) Span() span.Span { return n.Sp }

type IntegerLiteralExpression struct {
	Sp    span.Span
	Value int64
}

func (n *IntegerLiteralExpression) Span() span.Span { return n.Sp }

type BooleanLiteralExpression struct {
	Sp    span.Span
	Value bool
}

func (n *BooleanLiteralExpression) Span() span.Span { return n.Sp }

type StringLiteralExpression struct {
	Sp    span.Span
	Value string
}

func (n *StringLiteralExpression) Span() span.Span { return n.Sp }
