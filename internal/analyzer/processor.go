package analyzer

import "github.com/ibcompiler/ib/internal/pipeline"

// Processor is the bind stage of the analysis pipeline: a syntax tree
// -> a bound tree plus the flat function list the control-flow stage
// analyses.
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) {
	ctx.Bound, ctx.Functions = Bind(ctx.Syntax, ctx.Bag)
}
