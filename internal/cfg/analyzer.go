package cfg

import (
	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/span"
	"github.com/ibcompiler/ib/internal/typesystem"
)

// AnalyzeFunc verifies that every path through root either reaches <End>
// via a return statement whose type matches retType, or (for a Void
// function) simply runs off the end of the graph.
func AnalyzeFunc(root *Node, sp span.Span, retType typesystem.Type, bag *diagnostics.Bag) {
	analyzeFuncRec(root, sp, retType, bag)
}

func analyzeFuncRec(node *Node, sp span.Span, retType typesystem.Type, bag *diagnostics.Bag) {
	if node.IsEnd {
		return
	}

	if node.OnCondition != nil {
		analyzeFuncRec(node.OnCondition, sp, retType, bag)
	}

	if node.Next != nil {
		if node.Next.IsEnd {
			if node.RetType == nil {
				return
			}
			if node.RetType.Equals(retType) {
				return
			}
			bag.Add(diagnostics.New(diagnostics.PhaseCFG, diagnostics.ReturnTypeMismatch, sp, node.RetType.String(), retType.String()))
			return
		}
		analyzeFuncRec(node.Next, sp, retType, bag)
		return
	}

	if retType.Equals(typesystem.TVoid) {
		return
	}
	bag.Add(diagnostics.New(diagnostics.PhaseCFG, diagnostics.NotAllCodePathsReturn, sp))
}

// AnalyzeFunctions builds and verifies the control-flow graph for every
// function the binder discovered, returning one graph root per function
// in the same order (for `ibc graph` rendering).
func AnalyzeFunctions(functions []*bound.FunctionDeclaration, bag *diagnostics.Bag) []*Node {
	graphs := make([]*Node, 0, len(functions))
	for _, fn := range functions {
		root := Build(fn.Body)
		AnalyzeFunc(root, fn.Span(), fn.Symbol.ReturnType, bag)
		graphs = append(graphs, root)
	}
	return graphs
}
