// Package pipeline wires the lex -> parse -> bind -> control-flow
// stages together behind the embedding API's analyze() façade.
package pipeline

// Pipeline is a sequence of processing stages run in order over one
// PipelineContext.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from stages, run in the given order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage against ctx in order. Stages never abort the
// pipeline on error; diagnostics accumulate in ctx.Bag and later stages
// degrade gracefully (e.g. the evaluate stage does not run once any
// diagnostic has been recorded).
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, proc := range p.processors {
		proc.Process(ctx)
	}
	return ctx
}
