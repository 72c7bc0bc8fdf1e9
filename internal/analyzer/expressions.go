package analyzer

import (
	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/span"
	"github.com/ibcompiler/ib/internal/symbols"
	"github.com/ibcompiler/ib/internal/syntax"
	"github.com/ibcompiler/ib/internal/typesystem"
)

func (a *Analyzer) bindExpression(scope *symbols.Scope, node syntax.Node) (bound.Node, bool) {
	switch n := node.(type) {
	case *syntax.IntegerLiteralExpression:
		return bound.NewNumberLiteral(n.Sp, n.Value), true

	case *syntax.BooleanLiteralExpression:
		return bound.NewBooleanLiteral(n.Sp, n.Value), true

	case *syntax.StringLiteralExpression:
		return bound.NewStringLiteral(n.Sp, n.Value), true

	case *syntax.ParenthesizedExpression:
		return a.bindExpression(scope, n.Inner)

	case *syntax.ReferenceExpression:
		sym, ok := scope.LookupVariable(n.Name)
		if !ok {
			a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.CannotFindValue, n.Sp, n.Name))
			return nil, false
		}
		return bound.NewReferenceExpression(n.Sp, sym), true

	case *syntax.AssignmentExpression:
		value, ok := a.bindExpression(scope, n.Value)
		if !ok {
			return nil, false
		}
		sym, assignOk := scope.Assign(n.Name, value.Type())
		if !assignOk {
			a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.AssignMismatchedTypes, n.Sp, n.Name))
			return nil, false
		}
		return bound.NewAssignmentExpression(n.Sp, sym, value), true

	case *syntax.CallExpression:
		return a.bindCall(scope, n.Sp, n.Name, n.Args)

	case *syntax.BinaryExpression:
		return a.bindBinary(scope, n)

	case *syntax.UnaryExpression:
		return a.bindUnary(scope, n)

	case *syntax.InstantiationExpression:
		return a.bindInstantiation(scope, n)

	case *syntax.ObjectMemberExpression:
		return a.bindObjectMember(scope, n)

	default:
		return nil, false
	}
}

func (a *Analyzer) bindCall(scope *symbols.Scope, sp span.Span, name string, argNodes []syntax.Node) (bound.Node, bool) {
	sym, ok := scope.LookupFunction(name)
	if !ok {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.CannotFindFunction, sp, name))
		return nil, false
	}
	if len(argNodes) != len(sym.Parameters) {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.MismatchedNumberOfArgs, sp, name, len(sym.Parameters), len(argNodes)))
		return nil, false
	}
	args := make([]bound.Node, 0, len(argNodes))
	for i, an := range argNodes {
		bn, aok := a.bindExpression(scope, an)
		if !aok {
			return nil, false
		}
		if !bn.Type().Equals(sym.Parameters[i].Type) {
			a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.MismatchedArgTypes, an.Span(), name, sym.Parameters[i].Type.String(), bn.Type().String()))
			return nil, false
		}
		args = append(args, bn)
	}
	return bound.NewCallExpression(sp, sym, args), true
}

func (a *Analyzer) bindBinary(scope *symbols.Scope, n *syntax.BinaryExpression) (bound.Node, bool) {
	lhs, lok := a.bindExpression(scope, n.Lhs)
	rhs, rok := a.bindExpression(scope, n.Rhs)
	if !lok || !rok {
		return nil, false
	}
	ty, ok := a.typeBinary(n.Sp, n.Operator, lhs.Type(), rhs.Type())
	if !ok {
		return nil, false
	}
	return bound.NewBinaryExpression(n.Sp, ty, lhs, n.Operator, rhs), true
}

func (a *Analyzer) bindUnary(scope *symbols.Scope, n *syntax.UnaryExpression) (bound.Node, bool) {
	rhs, ok := a.bindExpression(scope, n.Rhs)
	if !ok {
		return nil, false
	}
	ty, ok := a.typeUnary(n.Sp, n.Operator, rhs.Type())
	if !ok {
		return nil, false
	}
	return bound.NewUnaryExpression(n.Sp, ty, n.Operator, rhs), true
}

// typeUnary implements the unary operator typing rules of the operator
// model: `!` on Boolean, unary `-`/`+` on Int.
func (a *Analyzer) typeUnary(sp span.Span, op string, rhs typesystem.Type) (typesystem.Type, bool) {
	switch op {
	case "!":
		if rhs.Equals(typesystem.TBoolean) {
			return typesystem.TBoolean, true
		}
	case "-", "+":
		if rhs.Equals(typesystem.TInt) {
			return typesystem.TInt, true
		}
	}
	a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.UnaryOperatorNotDefinedOnType, sp, op, rhs.String()))
	return typesystem.Type{}, false
}

// typeBinary implements the binary operator typing rules of the
// operator model (§4.4): arithmetic, string concatenation via `+`,
// relational comparisons, and equality (rejecting containers entirely,
// per the resolved open question on container equality).
func (a *Analyzer) typeBinary(sp span.Span, op string, lhs, rhs typesystem.Type) (typesystem.Type, bool) {
	switch op {
	case "-", "*", "/":
		if lhs.Equals(typesystem.TInt) && rhs.Equals(typesystem.TInt) {
			return typesystem.TInt, true
		}
	case "+":
		if lhs.Equals(typesystem.TString) || rhs.Equals(typesystem.TString) {
			return typesystem.TString, true
		}
		if lhs.Equals(typesystem.TInt) && rhs.Equals(typesystem.TInt) {
			return typesystem.TInt, true
		}
	case "<", ">":
		if lhs.Equals(typesystem.TInt) && rhs.Equals(typesystem.TInt) {
			return typesystem.TBoolean, true
		}
	case "==":
		if isContainerType(lhs) || isContainerType(rhs) {
			a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.BinaryOperatorNotDefinedOnType, sp, op, lhs.String(), rhs.String()))
			return typesystem.Type{}, false
		}
		if lhs.Equals(rhs) {
			return typesystem.TBoolean, true
		}
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.EqualityNonMatchingTypes, sp, lhs.String(), rhs.String()))
		return typesystem.Type{}, false
	}
	a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.BinaryOperatorNotDefinedOnType, sp, op, lhs.String(), rhs.String()))
	return typesystem.Type{}, false
}

func isContainerType(t typesystem.Type) bool {
	return t.Elem != nil
}

func (a *Analyzer) bindInstantiation(scope *symbols.Scope, n *syntax.InstantiationExpression) (bound.Node, bool) {
	if len(n.Args) != 0 {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.MismatchedNumberOfArgs, n.Sp, n.TypeName, 0, len(n.Args)))
		return nil, false
	}
	t, ok := a.resolveType(n.Sp, n.TypeName, n.TypeParam)
	if !ok {
		return nil, false
	}
	return bound.NewObjectExpression(n.Sp, t), true
}

// bindObjectMember resolves a.method(args) by building a transient
// scope containing exactly the reflection methods of a's type, then
// binding Next (always a call) against it.
func (a *Analyzer) bindObjectMember(scope *symbols.Scope, n *syntax.ObjectMemberExpression) (bound.Node, bool) {
	base, ok := a.bindExpression(scope, n.Base)
	if !ok {
		return nil, false
	}
	methods := base.Type().ReflectionMethods()
	transient := symbols.Transient(scope, methods)

	call, callOk := n.Next.(*syntax.CallExpression)
	if !callOk {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.CannotFindFunction, n.Next.Span(), "<member access>"))
		return nil, false
	}
	if _, found := base.Type().Method(call.Name); !found {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.CannotFindFunction, call.Sp, call.Name))
		return nil, false
	}
	next, nOk := a.bindCall(transient, call.Sp, call.Name, call.Args)
	if !nOk {
		return nil, false
	}
	return bound.NewObjectMemberExpression(n.Sp, base, next.(*bound.CallExpression)), true
}
