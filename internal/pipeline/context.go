package pipeline

import (
	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/syntax"
	"github.com/ibcompiler/ib/internal/token"
)

// PipelineContext carries everything one analyze() invocation threads
// between lex, parse, bind and control-flow stages.
type PipelineContext struct {
	Source string

	Tokens []token.Token
	Syntax *syntax.Scope
	Bound  *bound.Module

	// Functions collects every FunctionDeclaration bound, in declaration
	// order, so the control-flow stage can analyse each independently of
	// tree shape.
	Functions []*bound.FunctionDeclaration

	Bag *diagnostics.Bag
}

// NewContext creates a fresh PipelineContext over source.
func NewContext(source string) *PipelineContext {
	return &PipelineContext{Source: source, Bag: &diagnostics.Bag{}}
}
