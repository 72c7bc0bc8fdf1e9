package lexer

import "github.com/ibcompiler/ib/internal/pipeline"

// Processor is the lex stage of the analysis pipeline: source -> tokens.
type Processor struct{}

func (Processor) Process(ctx *pipeline.PipelineContext) {
	ctx.Tokens = Tokenize(ctx.Source, ctx.Bag)
}
