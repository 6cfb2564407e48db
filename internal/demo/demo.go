// Package demo builds the handful of fixed IR programs used by the
// evaluator's own tests and by the irfold CLI's "eval" subcommand.
// Building IR trees is the frontend's job and out of scope for the
// evaluator itself; this package plays that frontend role only far
// enough to exercise the evaluator's scenario suite end to end, through
// fixed hand-built IR fixtures rather than a generated one.
package demo

import (
	"github.com/cwbudde/irfold/internal/ir"
)

var (
	intType    = ir.PrimitiveType(ir.KindInt)
	boolType   = ir.PrimitiveType(ir.KindBoolean)
	stringType = ir.PrimitiveType(ir.KindString)
)

// Program is one named demo: the root expression to interpret, and the
// module fragment it is rooted in.
type Program struct {
	Name string
	Expr ir.Expression
	Module *ir.Module
}

// Names lists every demo in a stable order, used by the CLI's "list"
// subcommand and by table-driven tests.
func Names() []string {
	return []string{"fib", "default-arg", "enum-ordinal", "enum-invalid", "range-sum", "data-class-concat", "try-catch-finally", "stack-overflow"}
}

// Build constructs the named demo program, or reports an error for an
// unrecognized name.
func Build(name string) (*Program, error) {
	switch name {
	case "fib":
		return buildFib(), nil
	case "default-arg":
		return buildDefaultArg(), nil
	case "enum-ordinal":
		return buildEnumOrdinal(), nil
	case "enum-invalid":
		return buildEnumInvalid(), nil
	case "range-sum":
		return buildRangeSum(), nil
	case "data-class-concat":
		return buildDataClassConcat(), nil
	case "try-catch-finally":
		return buildTryCatchFinally(), nil
	case "stack-overflow":
		return buildStackOverflow(), nil
	default:
		return nil, errUnknownDemo(name)
	}
}

type unknownDemoError string

func (e unknownDemoError) Error() string { return "demo: unrecognized program " + string(e) }

func errUnknownDemo(name string) error { return unknownDemoError(name) }

// baseBuiltins constructs a minimal-but-complete BuiltinClasses table: one
// distinct *ir.Class per well-known exception/collection kind, enough for
// matchesCatch/IsSubtypeOf and the host-panic reprojection to work by
// simple-name match.
func baseBuiltins() ir.BuiltinClasses {
	throwable := &ir.Class{Name: "Throwable"}
	classCast := &ir.Class{Name: "ClassCastException", Super: throwable}
	illegalArg := &ir.Class{Name: "IllegalArgumentException", Super: throwable}
	nullPointer := &ir.Class{Name: "NullPointerException", Super: throwable}
	noSuchElement := &ir.Class{Name: "NoSuchElementException", Super: throwable}
	indexOOB := &ir.Class{Name: "IndexOutOfBoundsException", Super: throwable}
	arithmetic := &ir.Class{Name: "ArithmeticException", Super: throwable}
	stackOverflow := &ir.Class{Name: "StackOverflowError", Super: throwable}
	timeOut := &ir.Class{Name: "TimeOutError", Super: throwable}

	return ir.BuiltinClasses{
		Throwable:          throwable,
		ClassCastException: classCast,
		IllegalArgument:    illegalArg,
		NullPointer:        nullPointer,
		NoSuchElement:      noSuchElement,
		IndexOutOfBounds:   indexOOB,
		ArithmeticError:    arithmetic,
		StackOverflow:      stackOverflow,
		TimeOutError:       timeOut,
		Array:              &ir.Class{Name: "Array"},
		String:             &ir.Class{Name: "String"},
		Range:              &ir.Class{Name: "Range"},
		UnsignedByte:       &ir.Class{Name: "UByte"},
		UnsignedShort:      &ir.Class{Name: "UShort"},
		UnsignedInt:        &ir.Class{Name: "UInt"},
		UnsignedLong:       &ir.Class{Name: "ULong"},
		Long:               &ir.Class{Name: "Long"},
		Char:               &ir.Class{Name: "Char"},
		Regex:              &ir.Class{Name: "Regex"},
	}
}

// noopLines is a LineMapper that always reports the demo's synthetic
// source name; these programs are not backed by any real file.
type noopLines struct{}

func (noopLines) Location(fn *ir.Function, callIndex int) ir.SourceLocation {
	return ir.SourceLocation{File: "Demo", Line: 1}
}

func newModule() *ir.Module {
	return &ir.Module{
		Builtins: baseBuiltins(),
		Lines:    noopLines{},
		FunctionQualifiedName: func(fn *ir.Function) string {
			if fn.Class != nil {
				return fn.Class.Name + "." + fn.Name
			}
			return fn.Name
		},
	}
}

func primOp(name string, ret ir.Type) *ir.Function {
	return &ir.Function{Name: name, IsPrimitiveOp: true, ReturnType: ret}
}

func binCall(target *ir.Function, recv, arg ir.Expression) *ir.Call {
	return &ir.Call{Target: target, DispatchReceiver: recv, ValueArguments: []ir.Expression{arg}}
}
