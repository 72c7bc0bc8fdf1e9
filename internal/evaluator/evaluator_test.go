package evaluator_test

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/ibcompiler/ib/internal/analyzer"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/ibcompiler/ib/internal/evaluator"
	"github.com/ibcompiler/ib/internal/lexer"
	"github.com/ibcompiler/ib/internal/parser"
)

// fakeIO records Output calls and feeds Input from a fixed queue, so
// tests can assert observable effects without touching stdio.
type fakeIO struct {
	in      []string
	out     []string
	errs    []string
}

func (f *fakeIO) Output(message string) { f.out = append(f.out, message) }

func (f *fakeIO) Input() string {
	if len(f.in) == 0 {
		return ""
	}
	v := f.in[0]
	f.in = f.in[1:]
	return v
}

func (f *fakeIO) RuntimeError(message string) { f.errs = append(f.errs, message) }

func run(t *testing.T, src string, in ...string) *fakeIO {
	t.Helper()
	bag := &diagnostics.Bag{}
	toks := lexer.Tokenize(src, bag)
	scope := parser.Parse(toks, bag)
	module, _ := analyzer.Bind(scope, bag)
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
	io := &fakeIO{in: in}
	evaluator.New(io).Run(module)
	return io
}

func TestEvalOutputLiteral(t *testing.T) {
	io := run(t, `output "hello"`)
	want := "hello\n"
	if len(io.out) != 1 || io.out[0] != want {
		t.Fatalf("want %q, got %v", want, io.out)
	}
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	io := run(t, "output 1 + 2 * 3")
	if len(io.out) != 1 || io.out[0] != "7\n" {
		t.Fatalf("want 7, got %v", io.out)
	}
}

func TestEvalStringConcatenationCoercion(t *testing.T) {
	io := run(t, `output "n=" + 5`)
	if len(io.out) != 1 || io.out[0] != "n=5\n" {
		t.Fatalf("want n=5, got %v", io.out)
	}
}

func TestEvalIfElseBranches(t *testing.T) {
	io := run(t, `
if 1 < 2 then
  output "yes"
else
  output "no"
end`)
	if len(io.out) != 1 || io.out[0] != "yes\n" {
		t.Fatalf("want yes, got %v", io.out)
	}
}

func TestEvalForLoopBounds(t *testing.T) {
	io := run(t, `
loop i from 0 to 3
  output i
end`)
	want := []string{"0\n", "1\n", "2\n"}
	if diff := deep.Equal(want, io.out); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestEvalWhileLoopAndAssignment(t *testing.T) {
	io := run(t, `
x = 0
loop while x < 3
  output x
  x = x + 1
end`)
	want := []string{"0\n", "1\n", "2\n"}
	if diff := deep.Equal(want, io.out); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestEvalFunctionCallAndReturn(t *testing.T) {
	io := run(t, `
function add(a: Int, b: Int) -> Int
  return a + b
end
output add(2, 3)`)
	if len(io.out) != 1 || io.out[0] != "5\n" {
		t.Fatalf("want 5, got %v", io.out)
	}
}

func TestEvalRecursiveFunction(t *testing.T) {
	io := run(t, `
function fact(n: Int) -> Int
  if n < 2 then
    return 1
  end
  return n * fact(n - 1)
end
output fact(5)`)
	if len(io.out) != 1 || io.out[0] != "120\n" {
		t.Fatalf("want 120, got %v", io.out)
	}
}

func TestEvalDivisionByZeroRaisesRuntimeError(t *testing.T) {
	io := run(t, "output 1 / 0")
	if len(io.errs) != 1 {
		t.Fatalf("expected one runtime error, got %v", io.errs)
	}
	if !strings.Contains(io.errs[0], "division by zero") {
		t.Fatalf("got %q", io.errs[0])
	}
	if len(io.out) != 0 {
		t.Fatalf("expected no output after the error propagated, got %v", io.out)
	}
}

func TestEvalInputBuiltin(t *testing.T) {
	io := run(t, `output input()`, "typed line")
	if len(io.out) != 1 || io.out[0] != "typed line\n" {
		t.Fatalf("want typed line, got %v", io.out)
	}
}

func TestEvalArrayPushGetLen(t *testing.T) {
	io := run(t, `
a = new Array<Int>()
a.push(10)
a.push(20)
output a.len()
output a.get(1)`)
	want := []string{"2\n", "20\n"}
	if diff := deep.Equal(want, io.out); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestEvalArrayGetOutOfBoundsRaisesRuntimeError(t *testing.T) {
	io := run(t, `
a = new Array<Int>()
output a.get(0)`)
	if len(io.errs) != 1 {
		t.Fatalf("expected one runtime error, got %v", io.errs)
	}
}

func TestEvalStackPushPopIsLIFO(t *testing.T) {
	io := run(t, `
s = new Stack<Int>()
s.push(1)
s.push(2)
output s.pop()
output s.pop()`)
	want := []string{"2\n", "1\n"}
	if diff := deep.Equal(want, io.out); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestEvalQueueEnqueueDequeueIsFIFO(t *testing.T) {
	io := run(t, `
q = new Queue<Int>()
q.enqueue(1)
q.enqueue(2)
output q.dequeue()
output q.dequeue()`)
	want := []string{"1\n", "2\n"}
	if diff := deep.Equal(want, io.out); diff != nil {
		for _, d := range diff {
			t.Error(d)
		}
	}
}

func TestEvalCollectionIterationProtocol(t *testing.T) {
	io := run(t, `
c = new Collection<Int>()
c.addItem(1)
c.addItem(2)
loop while c.hasNext()
  output c.getItem()
end`)
	want := []string{"1\n", "2\n"}
	if len(io.out) != 2 || io.out[0] != want[0] || io.out[1] != want[1] {
		t.Fatalf("want %v, got %v", want, io.out)
	}
}

func TestEvalEmptyStackPopRaisesRuntimeError(t *testing.T) {
	io := run(t, `
s = new Stack<Int>()
output s.pop()`)
	if len(io.errs) != 1 || !strings.Contains(io.errs[0], "empty stack") {
		t.Fatalf("expected an empty stack runtime error, got %v", io.errs)
	}
}
