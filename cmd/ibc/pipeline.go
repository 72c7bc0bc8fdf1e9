package main

import (
	"github.com/ibcompiler/ib/internal/analyzer"
	"github.com/ibcompiler/ib/internal/cfg"
	"github.com/ibcompiler/ib/internal/lexer"
	"github.com/ibcompiler/ib/internal/parser"
	"github.com/ibcompiler/ib/internal/pipeline"
)

// analyze runs every stage through control-flow verification, without
// evaluating. graphs, if non-nil, receives the constructed CFG roots in
// function-declaration order.
func analyze(source string, graphs *[]*cfg.Node) *pipeline.PipelineContext {
	ctx := pipeline.NewContext(source)
	p := pipeline.New(
		lexer.Processor{},
		parser.Processor{},
		analyzer.Processor{},
		cfg.Processor{Graphs: graphs},
	)
	p.Run(ctx)
	return ctx
}
