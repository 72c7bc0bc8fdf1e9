package parser

import "github.com/ibcompiler/ib/internal/pipeline"

// Processor is the parse stage of the analysis pipeline: tokens -> a
// syntax tree.
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) {
	ctx.Syntax = Parse(ctx.Tokens, ctx.Bag)
}
