package pipeline

// Processor is one pipeline stage: it mutates a PipelineContext in
// place and hands it to the next stage.
type Processor interface {
	Process(ctx *PipelineContext)
}
