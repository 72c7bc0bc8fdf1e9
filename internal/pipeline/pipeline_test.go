package pipeline_test

import (
	"testing"

	"github.com/ibcompiler/ib/internal/analyzer"
	"github.com/ibcompiler/ib/internal/cfg"
	"github.com/ibcompiler/ib/internal/evaluator"
	"github.com/ibcompiler/ib/internal/lexer"
	"github.com/ibcompiler/ib/internal/parser"
	"github.com/ibcompiler/ib/internal/pipeline"
)

type recordingIO struct {
	out []string
}

func (r *recordingIO) Output(message string)      { r.out = append(r.out, message) }
func (r *recordingIO) Input() string               { return "" }
func (r *recordingIO) RuntimeError(message string) {}

func runSource(src string) (*pipeline.PipelineContext, *recordingIO) {
	ctx := pipeline.NewContext(src)
	io := &recordingIO{}
	p := pipeline.New(
		lexer.Processor{},
		parser.Processor{},
		analyzer.Processor{},
		cfg.Processor{},
		evaluator.Processor{IO: io},
	)
	p.Run(ctx)
	return ctx, io
}

// TestPipelineFibonacciEndToEnd exercises every stage of the pipeline
// against a recursive function with a loop driver, one of the
// representative end-to-end scenarios.
func TestPipelineFibonacciEndToEnd(t *testing.T) {
	ctx, io := runSource(`
function fib(n: Int) -> Int
  if n < 2 then
    return n
  end
  return fib(n - 1) + fib(n - 2)
end

loop i from 0 to 6
  output fib(i)
end`)
	if !ctx.Bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Bag.Errors())
	}
	want := []string{"0\n", "1\n", "1\n", "2\n", "3\n", "5\n"}
	if len(io.out) != len(want) {
		t.Fatalf("want %v, got %v", want, io.out)
	}
	for i := range want {
		if io.out[i] != want[i] {
			t.Fatalf("want %v, got %v", want, io.out)
		}
	}
}

// TestPipelineContainerWorkflowEndToEnd drives a Stack through
// instantiation, mutation and iteration-adjacent method calls.
func TestPipelineContainerWorkflowEndToEnd(t *testing.T) {
	ctx, io := runSource(`
s = new Stack<String>()
s.push("a")
s.push("b")
output s.pop()
output s.isEmpty()
output s.pop()
output s.isEmpty()`)
	if !ctx.Bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Bag.Errors())
	}
	want := []string{"b\n", "false\n", "a\n", "true\n"}
	if len(io.out) != len(want) {
		t.Fatalf("want %v, got %v", want, io.out)
	}
	for i := range want {
		if io.out[i] != want[i] {
			t.Fatalf("want %v, got %v", want, io.out)
		}
	}
}

// TestPipelineStopsAtDiagnosticsBeforeEvaluating verifies the
// evaluator stage refuses to run a module with any outstanding
// diagnostic, per the "broken tree is never walked" invariant.
func TestPipelineStopsAtDiagnosticsBeforeEvaluating(t *testing.T) {
	ctx, io := runSource(`output missing`)
	if ctx.Bag.Empty() {
		t.Fatal("expected a CannotFindValue diagnostic")
	}
	if len(io.out) != 0 {
		t.Fatalf("evaluator must not run against a broken tree, got output %v", io.out)
	}
}

// TestPipelineIdempotentAnalysis checks that analysing the same source
// twice from scratch produces the same diagnostics and the same
// control-flow verdict, i.e. analysis has no hidden global state that
// leaks between runs.
func TestPipelineIdempotentAnalysis(t *testing.T) {
	src := `
function half(n: Int) -> Int
  return n / 2
end
output half(10)`
	ctx1, io1 := runSource(src)
	ctx2, io2 := runSource(src)
	if len(ctx1.Bag.Errors()) != len(ctx2.Bag.Errors()) {
		t.Fatalf("diagnostic count differs between runs: %d vs %d", len(ctx1.Bag.Errors()), len(ctx2.Bag.Errors()))
	}
	if len(io1.out) != len(io2.out) || io1.out[0] != io2.out[0] {
		t.Fatalf("output differs between runs: %v vs %v", io1.out, io2.out)
	}
}

// TestPipelineNotAllPathsReturnBlocksEvaluation exercises the
// control-flow stage's refusal to let an incomplete function reach
// the evaluator.
func TestPipelineNotAllPathsReturnBlocksEvaluation(t *testing.T) {
	ctx, io := runSource(`
function maybe(n: Int) -> Int
  if n < 0 then
    return 0
  end
end
output maybe(5)`)
	if ctx.Bag.Empty() {
		t.Fatal("expected a NotAllCodePathsReturn diagnostic")
	}
	if len(io.out) != 0 {
		t.Fatalf("evaluator must not run, got output %v", io.out)
	}
}

// TestPipelineDivisionByZeroPropagatesWithoutPanicking verifies a
// runtime error during evaluation surfaces as a clean halt rather than
// a panic, and that no output after the failure point is observed.
func TestPipelineDivisionByZeroPropagatesWithoutPanicking(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("evaluator panicked: %v", r)
		}
	}()
	_, io := runSource(`
output "before"
output 1 / 0
output "after"`)
	if len(io.out) != 1 || io.out[0] != "before\n" {
		t.Fatalf("want only the pre-error output, got %v", io.out)
	}
}
