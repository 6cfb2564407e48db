package ireval

import (
	"fmt"

	"github.com/cwbudde/irfold/internal/builtins"
	"github.com/cwbudde/irfold/internal/config"
	"github.com/cwbudde/irfold/internal/ir"
)

// enumKey identifies an interned enum instance by (enumClass, entryName).
type enumKey struct {
	class *ir.Class
	name  string
}

// Interpreter is one evaluator instance. All state it owns (frame stack,
// counters, enum interns, call stack) belongs to this instance alone;
// concurrent evaluations must use separate Interpreters, since nothing
// about an Interpreter's per-call state is shared.
type Interpreter struct {
	module *ir.Module
	bounds config.Bounds
	tables *builtins.Tables

	callStack    *CallStack
	commandCount int
	enumInterns  map[enumKey]*UserObject

	bridge *HostBridge
}

// NewInterpreter builds an evaluator bound to module and bounds. tables is
// the shared, immutable built-in dispatch table set and may be reused
// across many Interpreters. A nil bridge falls back to
// NewDefaultHostBridge; pass a custom one to add or replace intrinsic
// class wiring for a particular module fragment.
func NewInterpreter(module *ir.Module, bounds config.Bounds, tables *builtins.Tables, bridge *HostBridge) *Interpreter {
	if tables == nil {
		tables = builtins.NewTables()
	}
	if bridge == nil {
		bridge = NewDefaultHostBridge()
	}
	return &Interpreter{
		module: module,
		bounds: bounds,
		tables: tables,
		bridge: bridge,
	}
}

// reset clears all per-call state: frame stack, command counter, and
// enum interns, all reinitialized alongside the frame stack on entry.
func (in *Interpreter) reset() {
	in.callStack = NewCallStack(in.bounds.MaxStackDepth)
	in.commandCount = 0
	in.enumInterns = make(map[enumKey]*UserObject)
}

// Interpret is the single public entry point: it resets the frame stack,
// evaluates expr in a fresh root frame, and converts the final value
// back to an IR constant node, or synthesizes an IR error node on
// exception or internal limit.
func (in *Interpreter) Interpret(expr ir.Expression) ir.Expression {
	in.reset()

	result, ierr := in.safeEval(expr, NewFullFrame(nil, nil))
	if ierr != nil {
		return ir.NewErrorExpr(expr.StaticType(), FormatInternalError(ierr))
	}

	switch result.Label {
	case Next, LReturn:
		return valueToConst(expr.StaticType(), result.Value)
	case LException:
		exc, _ := result.Value.(*Exception)
		return ir.NewErrorExpr(expr.StaticType(), FormatDescription(exc))
	default:
		// Break/Continue/BreakWhen escaping the outermost frame is an
		// interpreter internal error: the frontend only ever hands the
		// evaluator a closed expression, so an unmatched loop-control
		// signal at the top level means the IR itself is malformed.
		return ir.NewErrorExpr(expr.StaticType(), FormatInternalError(
			internalf("unmatched %s at outermost frame", "", "", labelName(result.Label))))
	}
}

func labelName(l Label) string {
	switch l {
	case LBreak:
		return "break"
	case LContinue:
		return "continue"
	case BreakWhen:
		return "breakWhen"
	default:
		return "unknown control signal"
	}
}

// safeEval is the single recover() interception point for host-side
// runtime failures: a host panic (arithmetic fault, host stack overflow)
// is re-projected into the source exception taxonomy, while an
// *InternalError panic propagates as a Go error to Interpret's caller
// unchanged, since internal errors are never catchable from evaluated
// code.
func (in *Interpreter) safeEval(expr ir.Expression, frame *Frame) (res ExecutionResult, ierr *InternalError) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InternalError); ok {
				ierr = ie
				return
			}
			res = exceptionResult(in.reprojectHostPanic(r))
		}
	}()
	res = in.evalExpr(expr, frame)
	return res, nil
}

// checkBudget increments the command counter and raises TimeOut once the
// configured bound is reached.
func (in *Interpreter) checkBudget() *InternalError {
	in.commandCount++
	if in.bounds.MaxCommands > 0 && in.commandCount > in.bounds.MaxCommands {
		panic(timeOutError(fmt.Sprintf("command counter exceeded maximum of %d", in.bounds.MaxCommands)))
	}
	return nil
}

// valueToConst materializes a Value back into an ir.Const of declared
// type typ: an IR constant expression of the same declared type as the
// input.
func valueToConst(typ ir.Type, v Value) *ir.Const {
	switch val := v.(type) {
	case Primitive:
		return ir.NewConst(typ, val.Raw)
	case Wrapped:
		return ir.NewConst(typ, val.Host)
	case *UserObject:
		return ir.NewConst(typ, val)
	case *Lambda:
		return ir.NewConst(typ, val)
	default:
		return ir.NewConst(typ, nil)
	}
}
