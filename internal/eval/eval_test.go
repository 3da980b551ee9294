package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/eval"
	"lox/internal/lexer"
	"lox/internal/parser"
	"lox/internal/resolve"
	"lox/internal/source"
)

type testReporter struct {
	messages []string
}

func (r *testReporter) Report(sev diag.Severity, primary source.Span, msg string) {
	r.messages = append(r.messages, msg)
}

// run scans, parses, resolves, and evaluates src, failing the test if any
// static diagnostic is reported, and returns everything written to stdout.
func run(t *testing.T, src string) string {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lox", src)
	file := fs.Get(fileID)

	reporter := &testReporter{}
	tokens := lexer.New(file, reporter).ScanTokens()
	prog := ast.NewProgram(file, uint(len(tokens)))
	prog.Tokens = tokens
	parser.Parse(prog, tokens, reporter)
	if len(reporter.messages) != 0 {
		t.Fatalf("unexpected static diagnostics: %v", reporter.messages)
	}

	res := resolve.New(prog, reporter).Resolve(prog)
	if len(reporter.messages) != 0 {
		t.Fatalf("unexpected resolve diagnostics: %v", reporter.messages)
	}

	var out bytes.Buffer
	ev := eval.New(prog, res, &out, false)
	if err := ev.Interpret(prog); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	return out.String()
}

// runErr is like run but expects the evaluator itself to fail, returning
// the error's message.
func runErr(t *testing.T, src string) string {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lox", src)
	file := fs.Get(fileID)

	reporter := &testReporter{}
	tokens := lexer.New(file, reporter).ScanTokens()
	prog := ast.NewProgram(file, uint(len(tokens)))
	prog.Tokens = tokens
	parser.Parse(prog, tokens, reporter)
	res := resolve.New(prog, reporter).Resolve(prog)

	var out bytes.Buffer
	ev := eval.New(prog, res, &out, false)
	err := ev.Interpret(prog)
	if err == nil {
		t.Fatalf("expected a runtime error, got none (output: %q)", out.String())
	}
	return err.Error()
}

func TestArithmeticAndPrecedence(t *testing.T) {
	if got := run(t, `print 1 + 2 * 3;`); got != "7\n" {
		t.Errorf("got %q, want %q", got, "7\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	if got := run(t, `print "foo" + "bar";`); got != "foobar\n" {
		t.Errorf("got %q, want %q", got, "foobar\n")
	}
}

func TestIntegralNumberPrintsWithoutFraction(t *testing.T) {
	if got := run(t, `print 6 / 2;`); got != "3\n" {
		t.Errorf("got %q, want %q", got, "3\n")
	}
}

func TestVariableScopingAndShadowing(t *testing.T) {
	src := `
var a = "outer";
{
  var a = "inner";
  print a;
}
print a;
`
	if got := run(t, src); got != "inner\nouter\n" {
		t.Errorf("got %q, want inner/outer", got)
	}
}

func TestIfElse(t *testing.T) {
	src := `
if (1 < 2) print "yes"; else print "no";
if (1 > 2) print "yes"; else print "no";
`
	if got := run(t, src); got != "yes\nno\n" {
		t.Errorf("got %q", got)
	}
}

func TestWhileAndBreak(t *testing.T) {
	src := `
var i = 0;
while (true) {
  if (i >= 3) break;
  print i;
  i = i + 1;
}
`
	if got := run(t, src); got != "0\n1\n2\n" {
		t.Errorf("got %q", got)
	}
}

func TestFunctionCallAndReturn(t *testing.T) {
	src := `
fun add(a, b) {
  return a + b;
}
print add(2, 3);
`
	if got := run(t, src); got != "5\n" {
		t.Errorf("got %q", got)
	}
}

func TestClosureCapturesEnclosingVariable(t *testing.T) {
	src := `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}
var counter = makeCounter();
print counter();
print counter();
print counter();
`
	if got := run(t, src); got != "1\n2\n3\n" {
		t.Errorf("got %q", got)
	}
}

func TestRecursiveFunction(t *testing.T) {
	src := `
fun fib(n) {
  if (n <= 1) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(10);
`
	if got := run(t, src); got != "55\n" {
		t.Errorf("got %q, want 55", got)
	}
}

func TestClassInstantiationAndMethods(t *testing.T) {
	src := `
class Greeter {
  init(name) {
    this.name = name;
  }
  greet() {
    print "hi " + this.name;
  }
}
var g = Greeter("Ada");
g.greet();
`
	if got := run(t, src); got != "hi Ada\n" {
		t.Errorf("got %q", got)
	}
}

func TestFieldAssignmentOnInstance(t *testing.T) {
	src := `
class Box {}
var b = Box();
b.value = 42;
print b.value;
`
	if got := run(t, src); got != "42\n" {
		t.Errorf("got %q", got)
	}
}

func TestNativeClock(t *testing.T) {
	src := `print clock() > 0;`
	if got := run(t, src); got != "true\n" {
		t.Errorf("got %q, want true", got)
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	msg := runErr(t, `print doesNotExist;`)
	if !strings.Contains(msg, "Undefined variable") {
		t.Errorf("got %q, want it to mention an undefined variable", msg)
	}
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	msg := runErr(t, `var x = 1; x();`)
	if !strings.Contains(msg, "Can only call") {
		t.Errorf("got %q", msg)
	}
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	msg := runErr(t, `fun f(a, b) { return a + b; } f(1);`)
	if !strings.Contains(msg, "Expected 2 arguments") {
		t.Errorf("got %q", msg)
	}
}

func TestAddingNumberAndStringIsRuntimeError(t *testing.T) {
	msg := runErr(t, `print 1 + "a";`)
	if msg == "" {
		t.Error("expected a runtime error")
	}
}
