package evaluator

import "github.com/ibcompiler/ib/internal/pipeline"

// Processor is the evaluate stage: it only runs when the pipeline's
// earlier stages produced a bound module with no diagnostics, since a
// broken tree cannot be safely walked.
type Processor struct {
	IO IO
}

func (p Processor) Process(ctx *pipeline.PipelineContext) {
	if ctx.Bound == nil || !ctx.Bag.Empty() {
		return
	}
	New(p.IO).Run(ctx.Bound)
}
