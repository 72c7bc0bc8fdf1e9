// Package analyzer is the binder: it walks a syntax tree, resolving
// names to symbols and checking/inferring types, producing a bound
// tree ready for control-flow analysis and evaluation.
package analyzer

import (
	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/config"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/span"
	"github.com/ibcompiler/ib/internal/symbols"
	"github.com/ibcompiler/ib/internal/syntax"
	"github.com/ibcompiler/ib/internal/typesystem"
)

// Analyzer carries the diagnostic bag and the running list of bound
// function declarations discovered along the way, mirroring the
// module/block/if-statement scan the control-flow stage needs.
type Analyzer struct {
	bag       *diagnostics.Bag
	functions *[]*bound.FunctionDeclaration
}

// Bind binds root against a fresh root scope pre-populated with the
// `input` builtin. It always returns the function declarations collected
// before binding stopped (including one whose own body failed to bind),
// even when the module itself fails to bind (a
// missing root means "too broken to evaluate", but earlier diagnostics
// and earlier functions are still reported/analysed).
func Bind(root *syntax.Scope, bag *diagnostics.Bag) (*bound.Module, []*bound.FunctionDeclaration) {
	var functions []*bound.FunctionDeclaration
	a := &Analyzer{bag: bag, functions: &functions}

	rootScope := symbols.NewRoot()
	rootScope.DeclareBuiltinFunction(config.InputFuncName, nil, typesystem.TString)

	block, ok := a.bindBlock(rootScope, root, true, true)
	if !ok {
		return nil, functions
	}
	return bound.NewModule(root.Sp, block), functions
}

// bindBlock binds a syntax Scope's statements. inline suppresses the
// fresh child scope a Block normally gets (function bodies and while
// loops bind into the scope their caller already set up).
// trackFunctions mirrors the original scanner's refusal to descend into
// loop bodies or a function's own body when collecting the function
// list the control-flow stage analyses.
func (a *Analyzer) bindBlock(scope *symbols.Scope, sc *syntax.Scope, inline, trackFunctions bool) (*bound.Block, bool) {
	child := scope
	if !inline {
		child = scope.Child()
	}
	var nodes []bound.Node
	ok := true
	for _, stmt := range sc.Statements {
		n, sOk := a.bindStatement(child, stmt, trackFunctions)
		if n != nil {
			nodes = append(nodes, n)
		}
		if !sOk {
			ok = false
			break
		}
	}
	return bound.NewBlock(sc.Sp, nodes), ok
}

// resolveType resolves a type keyword plus optional generic parameter
// name into a concrete Type, emitting UndefinedType/ExpectsGenericTypeParam
// diagnostics as needed. The generic parameter itself must resolve to a
// primitive.
func (a *Analyzer) resolveType(sp span.Span, typeName, genericName string) (typesystem.Type, bool) {
	var generic *typesystem.Type
	if genericName != "" {
		g, ok := a.resolveType(sp, genericName, "")
		if !ok {
			return typesystem.Type{}, false
		}
		generic = &g
	}
	t, needsGeneric, ok := typesystem.FromName(typeName, generic)
	if !ok {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.UndefinedType, sp, typeName))
		return typesystem.Type{}, false
	}
	if needsGeneric {
		a.bag.Add(diagnostics.New(diagnostics.PhaseAnalyzer, diagnostics.ExpectsGenericTypeParam, sp, typeName))
		return typesystem.Type{}, false
	}
	return t, true
}
