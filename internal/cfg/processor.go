package cfg

import "github.com/ibcompiler/ib/internal/pipeline"

// Processor is the control-flow stage of the analysis pipeline: it
// verifies every bound function returns on all paths and stashes the
// constructed graphs on the context for `ibc graph` to render.
type Processor struct {
	Graphs *[]*Node
}

func (p Processor) Process(ctx *pipeline.PipelineContext) {
	graphs := AnalyzeFunctions(ctx.Functions, ctx.Bag)
	if p.Graphs != nil {
		*p.Graphs = graphs
	}
}
