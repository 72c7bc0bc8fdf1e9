package analyzer

import (
	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/symbols"
	"github.com/ibcompiler/ib/internal/syntax"
	"github.com/ibcompiler/ib/internal/typesystem"
)

// bindStatement binds one syntax statement (or, for anything that isn't
// a dedicated statement keyword, falls through to expression binding).
func (a *Analyzer) bindStatement(scope *symbols.Scope, stmt syntax.Node, trackFunctions bool) (bound.Node, bool) {
	switch s := stmt.(type) {
	case *syntax.OutputStatement:
		expr, ok := a.bindExpression(scope, s.Expr)
		if !ok {
			return nil, false
		}
		return bound.NewOutputStatement(s.Sp, expr), true

	case *syntax.ReturnStatement:
		var expr bound.Node
		if s.Expr != nil {
			e, ok := a.bindExpression(scope, s.Expr)
			if !ok {
				return nil, false
			}
			expr = e
		}
		return bound.NewReturnStatement(s.Sp, expr), true

	case *syntax.IfStatement:
		return a.bindIfStatement(scope, s, trackFunctions)

	case *syntax.FunctionDeclaration:
		return a.bindFunctionDeclaration(scope, s, trackFunctions)

	case *syntax.ForLoop:
		return a.bindForLoop(scope, s)

	case *syntax.WhileLoop:
		return a.bindWhileLoop(scope, s)

	default:
		return a.bindExpression(scope, stmt)
	}
}

func (a *Analyzer) bindIfStatement(scope *symbols.Scope, s *syntax.IfStatement, trackFunctions bool) (bound.Node, bool) {
	cond, condOk := a.bindExpression(scope, s.Cond)
	ok := condOk
	if condOk && !cond.Type().Equals(typesystem.TBoolean) {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.ConditionMustBeBoolean, s.Cond.Span(), cond.Type().String()))
		ok = false
	}

	body, bodyOk := a.bindBlock(scope, s.Body, false, trackFunctions)
	ok = ok && bodyOk

	var elseBlock *bound.Block
	if s.Else != nil {
		eb, eOk := a.bindBlock(scope, s.Else, false, trackFunctions)
		elseBlock = eb
		ok = ok && eOk
	}

	if !condOk {
		return nil, false
	}
	return bound.NewIfStatement(s.Sp, cond, body, elseBlock), ok
}

func (a *Analyzer) bindFunctionDeclaration(scope *symbols.Scope, s *syntax.FunctionDeclaration, trackFunctions bool) (bound.Node, bool) {
	childScope := scope.Child()

	var paramVars []symbols.Variable
	ok := true
	for _, p := range s.Params {
		t, tOk := a.resolveType(p.Sp, p.TypeName, p.Generic)
		if !tOk {
			ok = false
			continue
		}
		v, declOk := childScope.DeclareParameter(p.Name, t)
		if !declOk {
			a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.ParamMismatchedTypes, p.Sp, p.Name))
			ok = false
			continue
		}
		paramVars = append(paramVars, v)
	}

	retType := typesystem.TVoid
	if s.ReturnType != "" {
		t, tOk := a.resolveType(s.Sp, s.ReturnType, s.Generic)
		if !tOk {
			ok = false
		} else {
			retType = t
		}
	}

	funcSym, declOk := scope.DeclareFunction(s.Name, paramVars, retType)
	if !declOk {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.CannotDeclareFunction, s.Sp, s.Name))
		return nil, false
	}

	// The body binds into the same child scope that hosts the
	// parameters, not a fresh nested one, and never contributes nested
	// function declarations to the control-flow scan.
	body, bodyOk := a.bindBlock(childScope, s.Body, true, false)

	decl := bound.NewFunctionDeclaration(s.Sp, funcSym, body)
	if trackFunctions {
		*a.functions = append(*a.functions, decl)
	}
	return decl, ok && bodyOk
}

func (a *Analyzer) bindForLoop(scope *symbols.Scope, s *syntax.ForLoop) (bound.Node, bool) {
	child := scope.Child()
	lower, lOk := a.bindExpression(child, s.Lower)
	upper, uOk := a.bindExpression(child, s.Upper)
	iter := child.DeclareLoopVariable(s.Name, typesystem.TInt)
	body, bOk := a.bindBlock(child, s.Body, true, false)

	if !lOk || !uOk {
		return nil, false
	}
	return bound.NewForLoop(s.Sp, iter, lower, upper, body), bOk
}

func (a *Analyzer) bindWhileLoop(scope *symbols.Scope, s *syntax.WhileLoop) (bound.Node, bool) {
	cond, condOk := a.bindExpression(scope, s.Cond)
	ok := condOk
	if condOk && !cond.Type().Equals(typesystem.TBoolean) {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.ConditionMustBeBoolean, s.Cond.Span(), cond.Type().String()))
		ok = false
	}

	// The body binds in the current scope, not a fresh child one.
	body, bodyOk := a.bindBlock(scope, s.Body, true, false)
	ok = ok && bodyOk

	if !condOk {
		return nil, false
	}
	return bound.NewWhileLoop(s.Sp, cond, body), ok
}
