package cfg_test

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/ibcompiler/ib/internal/analyzer"
	"github.com/ibcompiler/ib/internal/cfg"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/lexer"
	"github.com/ibcompiler/ib/internal/parser"
)

func bindFunctions(t *testing.T, src string) ([]*cfg.Node, *diagnostics.Bag) {
	t.Helper()
	bag := &diagnostics.Bag{}
	toks := lexer.Tokenize(src, bag)
	scope := parser.Parse(toks, bag)
	_, functions := analyzer.Bind(scope, bag)
	graphs := cfg.AnalyzeFunctions(functions, bag)
	return graphs, bag
}

func TestAnalyzeFuncAllPathsReturn(t *testing.T) {
	_, bag := bindFunctions(t, `
function abs(x: Int) -> Int
  if x < 0 then
    return x
  else
    return x
  end
end`)
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
}

func TestAnalyzeFuncMissingReturnOnSomePath(t *testing.T) {
	_, bag := bindFunctions(t, `
function abs(x: Int) -> Int
  if x < 0 then
    return x
  end
end`)
	if bag.Empty() {
		t.Fatal("expected a NotAllCodePathsReturn diagnostic")
	}
	if bag.Errors()[0].Code != diagnostics.NotAllCodePathsReturn {
		t.Fatalf("got code %s, want NotAllCodePathsReturn", bag.Errors()[0].Code)
	}
}

func TestAnalyzeFuncReturnTypeMismatch(t *testing.T) {
	_, bag := bindFunctions(t, `
function greet() -> Int
  return "hi"
end`)
	if bag.Empty() {
		t.Fatal("expected a ReturnTypeMismatch diagnostic")
	}
	if bag.Errors()[0].Code != diagnostics.ReturnTypeMismatch {
		t.Fatalf("got code %s, want ReturnTypeMismatch", bag.Errors()[0].Code)
	}
}

func TestAnalyzeFuncVoidNeedsNoReturn(t *testing.T) {
	_, bag := bindFunctions(t, `
function greet() -> Void
  output "hi"
end`)
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
}

func TestAnalyzeFuncWhileLoopIsOpaqueAndDoesNotSatisfyReturn(t *testing.T) {
	_, bag := bindFunctions(t, `
function f() -> Int
  loop while true
    return 1
  end
end`)
	if bag.Empty() {
		t.Fatal("expected a NotAllCodePathsReturn diagnostic since the loop body is never walked into")
	}
	if bag.Errors()[0].Code != diagnostics.NotAllCodePathsReturn {
		t.Fatalf("got code %s, want NotAllCodePathsReturn", bag.Errors()[0].Code)
	}
}

func TestAnalyzeFuncReportsExactlyOneDiagnosticRecord(t *testing.T) {
	_, bag := bindFunctions(t, `
function greet() -> Int
  return "hi"
end`)
	want := []diagnostics.Record{
		{Message: `returned String, expected Int`, OffsetStart: bag.Errors()[0].Span.Start.Offset, OffsetEnd: bag.Errors()[0].Span.End.Offset},
	}
	if diff := deep.Equal(want, bag.ToRecords()); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestDigraphRendersEveryFunction(t *testing.T) {
	graphs, bag := bindFunctions(t, `
function a() -> Void
  output "a"
end
function b() -> Void
  output "b"
end`)
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
	dot := cfg.Digraph(graphs)
	if !strings.HasPrefix(dot, "digraph controlflow {") {
		t.Fatalf("expected a wrapping digraph block, got: %s", dot)
	}
	if !strings.Contains(dot, "}") {
		t.Fatalf("expected a closing brace, got: %s", dot)
	}
}
