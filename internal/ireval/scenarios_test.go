package ireval_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/irfold/internal/builtins"
	"github.com/cwbudde/irfold/internal/config"
	"github.com/cwbudde/irfold/internal/demo"
	"github.com/cwbudde/irfold/internal/ir"
	"github.com/cwbudde/irfold/internal/ireval"
)

func run(t *testing.T, demoName string) ir.Expression {
	t.Helper()
	prog, err := demo.Build(demoName)
	if err != nil {
		t.Fatalf("demo.Build(%q): %v", demoName, err)
	}
	in := ireval.NewInterpreter(prog.Module, config.DefaultBounds(), builtins.NewTables(), nil)
	return in.Interpret(prog.Expr)
}

// fib(10) == 55, exercising recursive default-body call dispatch and the
// Return/ReturnTarget match in invokeFunction.
func TestFib10(t *testing.T) {
	result := run(t, "fib")
	c, ok := result.(*ir.Const)
	if !ok {
		t.Fatalf("expected *ir.Const, got %T (%v)", result, result)
	}
	if c.Value != int64(55) {
		t.Fatalf("fib(10) = %v, want 55", c.Value)
	}
}

// addWithDefault(5) == 11: the call site omits b, whose default
// expression (a + 1) reads the already-bound a, so it must be evaluated
// in the callee's own frame rather than the caller's.
func TestDefaultArgument(t *testing.T) {
	result := run(t, "default-arg")
	c, ok := result.(*ir.Const)
	if !ok {
		t.Fatalf("expected *ir.Const, got %T (%v)", result, result)
	}
	if c.Value != int64(11) {
		t.Fatalf("addWithDefault(5) = %v, want 11", c.Value)
	}
}

// enumValueOf<Color>("RED").ordinal == 0.
func TestEnumValueOf_Ordinal(t *testing.T) {
	result := run(t, "enum-ordinal")
	c, ok := result.(*ir.Const)
	if !ok {
		t.Fatalf("expected *ir.Const, got %T (%v)", result, result)
	}
	if c.Value != int64(0) {
		t.Fatalf("RED.ordinal = %v, want 0", c.Value)
	}
}

// enumValueOf<Color>("PURPLE") raises IllegalArgumentException naming the
// missing constant, with a closest-match suggestion.
func TestEnumValueOf_Invalid(t *testing.T) {
	result := run(t, "enum-invalid")
	e, ok := result.(*ir.ErrorExpr)
	if !ok {
		t.Fatalf("expected *ir.ErrorExpr, got %T (%v)", result, result)
	}
	if !strings.Contains(e.Message, "IllegalArgumentException") || !strings.Contains(e.Message, "PURPLE") {
		t.Fatalf("unexpected message: %q", e.Message)
	}
}

// (1..5).sum() == 15, exercising the rangeTo carve-out and a While-loop
// accumulator.
func TestRangeSum(t *testing.T) {
	result := run(t, "range-sum")
	c, ok := result.(*ir.Const)
	if !ok {
		t.Fatalf("expected *ir.Const, got %T (%v)", result, result)
	}
	if c.Value != int64(15) {
		t.Fatalf("(1..5).sum() = %v, want 15", c.Value)
	}
}

// "x=" + Point(1, 2) == "x=Point(x=1, y=2)".
func TestDataClassConcat(t *testing.T) {
	result := run(t, "data-class-concat")
	c, ok := result.(*ir.Const)
	if !ok {
		t.Fatalf("expected *ir.Const, got %T (%v)", result, result)
	}
	if c.Value != "x=Point(x=1, y=2)" {
		t.Fatalf("got %v, want \"x=Point(x=1, y=2)\"", c.Value)
	}
}

// try { 1/0 } catch (ArithmeticException) { -1 } finally { 42 } settles on
// -1: finally runs for effect only and does not override a Next result.
func TestTryCatchFinally(t *testing.T) {
	result := run(t, "try-catch-finally")
	c, ok := result.(*ir.Const)
	if !ok {
		t.Fatalf("expected *ir.Const, got %T (%v)", result, result)
	}
	if c.Value != int64(-1) {
		t.Fatalf("got %v, want -1", c.Value)
	}
}

// Recursion past the configured stack-depth bound raises a
// StackOverflowError IR error with at least one formatted "at ..." frame.
func TestStackOverflow(t *testing.T) {
	result := run(t, "stack-overflow")
	e, ok := result.(*ir.ErrorExpr)
	if !ok {
		t.Fatalf("expected *ir.ErrorExpr, got %T (%v)", result, result)
	}
	if !strings.Contains(e.Message, "StackOverflowError") {
		t.Fatalf("unexpected message: %q", e.Message)
	}
	if !strings.Contains(e.Message, "at ") {
		t.Fatalf("expected at least one formatted stack frame, got: %q", e.Message)
	}
}

func TestAllDemoNamesBuild(t *testing.T) {
	for _, name := range demo.Names() {
		if _, err := demo.Build(name); err != nil {
			t.Errorf("demo.Build(%q): %v", name, err)
		}
	}
}
