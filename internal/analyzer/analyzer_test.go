package analyzer_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/ibcompiler/ib/internal/analyzer"
	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/lexer"
	"github.com/ibcompiler/ib/internal/parser"
	"github.com/ibcompiler/ib/internal/symbols"
	"github.com/ibcompiler/ib/internal/typesystem"
)

func bind(t *testing.T, src string) (*bound.Module, []*bound.FunctionDeclaration, *diagnostics.Bag) {
	t.Helper()
	bag := &diagnostics.Bag{}
	toks := lexer.Tokenize(src, bag)
	scope := parser.Parse(toks, bag)
	module, functions := analyzer.Bind(scope, bag)
	return module, functions, bag
}

func TestBindOutputInfersStringType(t *testing.T) {
	module, _, bag := bind(t, `output "hello"`)
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
	stmt := module.Block.Children[0].(*bound.OutputStatement)
	if !stmt.Expr.Type().Equals(typesystem.TString) {
		t.Fatalf("want String, got %s", stmt.Expr.Type())
	}
}

func TestBindUndefinedValueReportsDiagnostic(t *testing.T) {
	_, _, bag := bind(t, `output missing`)
	if bag.Empty() {
		t.Fatal("expected a CannotFindValue diagnostic")
	}
	if bag.Errors()[0].Code != diagnostics.CannotFindValue {
		t.Fatalf("got code %s, want CannotFindValue", bag.Errors()[0].Code)
	}
}

func TestBindAssignmentTypeMismatch(t *testing.T) {
	_, _, bag := bind(t, "x = 1\nx = \"oops\"")
	if bag.Empty() {
		t.Fatal("expected an AssignMismatchedTypes diagnostic")
	}
	found := false
	for _, e := range bag.Errors() {
		if e.Code == diagnostics.AssignMismatchedTypes {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected AssignMismatchedTypes among %v", bag.Errors())
	}
}

func TestBindFunctionDeclarationIsCollected(t *testing.T) {
	_, functions, bag := bind(t, `
function add(a: Int, b: Int) -> Int
  return a + b
end`)
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
	if len(functions) != 1 {
		t.Fatalf("want 1 function, got %d", len(functions))
	}
	if functions[0].Symbol.Name != "add" {
		t.Fatalf("want function named add, got %q", functions[0].Symbol.Name)
	}
	if !functions[0].Symbol.ReturnType.Equals(typesystem.TInt) {
		t.Fatalf("want Int return type, got %s", functions[0].Symbol.ReturnType)
	}
}

func TestBindIfConditionMustBeBoolean(t *testing.T) {
	_, _, bag := bind(t, "if 1 then\n  output 1\nend")
	if bag.Empty() {
		t.Fatal("expected a ConditionMustBeBoolean diagnostic")
	}
	if bag.Errors()[0].Code != diagnostics.ConditionMustBeBoolean {
		t.Fatalf("got code %s, want ConditionMustBeBoolean", bag.Errors()[0].Code)
	}
}

func TestBindCallArityMismatch(t *testing.T) {
	_, _, bag := bind(t, `
function add(a: Int, b: Int) -> Int
  return a + b
end
output add(1)`)
	found := false
	for _, e := range bag.Errors() {
		if e.Code == diagnostics.MismatchedNumberOfArgs {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected MismatchedNumberOfArgs among %v", bag.Errors())
	}
}

func TestBindContainerInstantiationAndMethodCall(t *testing.T) {
	_, _, bag := bind(t, `
stack = new Stack<Int>()
stack.push(1)
output stack.pop()`)
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
}

func TestBindFunctionSignatureShape(t *testing.T) {
	_, functions, bag := bind(t, `
function add(a: Int, b: Int) -> Int
  return a + b
end`)
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
	got := functions[0].Symbol
	want := symbols.Function{
		ID:   got.ID, // allocator-assigned, not asserted
		Name: "add",
		Parameters: []symbols.Variable{
			{ID: got.Parameters[0].ID, Name: "a", Type: typesystem.TInt},
			{ID: got.Parameters[1].ID, Name: "b", Type: typesystem.TInt},
		},
		ReturnType: typesystem.TInt,
	}
	if diff := deep.Equal(want, got); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestBindUnknownContainerMethodReportsDiagnostic(t *testing.T) {
	_, _, bag := bind(t, `
stack = new Stack<Int>()
output stack.bogus()`)
	if bag.Empty() {
		t.Fatal("expected a CannotFindFunction diagnostic")
	}
	if bag.Errors()[0].Code != diagnostics.CannotFindFunction {
		t.Fatalf("got code %s, want CannotFindFunction", bag.Errors()[0].Code)
	}
}
