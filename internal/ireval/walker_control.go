package ireval

import "github.com/cwbudde/irfold/internal/ir"

func truthy(v Value) bool {
	p, ok := v.(Primitive)
	if !ok || p.PrimKind != ir.KindBoolean {
		panic(internalf("condition did not evaluate to Boolean", "", ""))
	}
	b, _ := p.Raw.(bool)
	return b
}

// evalWhen scans branches in source order: the first branch whose
// condition evaluates true has its result evaluated and the scan ends via
// the local-only BreakWhen signal, which is resolved before evalWhen
// returns — it never escapes to the caller. A nil Condition marks the
// else branch and always matches.
func (in *Interpreter) evalWhen(n *ir.When, frame *Frame) ExecutionResult {
	for _, branch := range n.Branches {
		if branch.Condition != nil {
			condRes := in.evalExpr(branch.Condition, frame)
			if r, escaped := condRes.Propagate(); escaped {
				return r
			}
			if !truthy(condRes.Value) {
				continue
			}
		}
		resultRes := in.evalExpr(branch.Result, frame)
		if r, escaped := resultRes.Propagate(); escaped {
			return r
		}
		scanEnd := ExecutionResult{Label: BreakWhen, Value: resultRes.Value}
		return NextResult(scanEnd.Value)
	}
	return NextResult(Unit)
}

// evalWhile implements both pre-tested (while) and post-tested (do-while)
// loops, re-evaluating the condition each iteration and honoring labeled
// break/continue.
func (in *Interpreter) evalWhile(n *ir.While, frame *Frame) ExecutionResult {
	for {
		if !n.IsDoWhile {
			condRes := in.evalExpr(n.Condition, frame)
			if r, escaped := condRes.Propagate(); escaped {
				return r
			}
			if !truthy(condRes.Value) {
				return NextResult(Unit)
			}
		}

		bodyRes := in.evalExpr(n.Body, NewSubFrame(frame))
		switch bodyRes.Label {
		case Next:
			// fall through to the post-test / next iteration
		case LBreak:
			if bodyRes.Loop == "" || bodyRes.Loop == n.Label {
				return NextResult(Unit)
			}
			return bodyRes
		case LContinue:
			if bodyRes.Loop != "" && bodyRes.Loop != n.Label {
				return bodyRes
			}
			// matched: fall through to the post-test / next iteration
		default:
			return bodyRes // LReturn or LException propagate unchanged
		}

		if n.IsDoWhile {
			condRes := in.evalExpr(n.Condition, frame)
			if r, escaped := condRes.Propagate(); escaped {
				return r
			}
			if !truthy(condRes.Value) {
				return NextResult(Unit)
			}
		}
	}
}

func (in *Interpreter) evalReturn(n *ir.Return, frame *Frame) ExecutionResult {
	res := in.evalExpr(n.Value, frame)
	if r, escaped := res.Propagate(); escaped {
		return r
	}
	return ExecutionResult{Label: LReturn, Value: res.Value, Target: n.Target}
}

// evalThrow raises Value as a source-language exception. Value is
// expected to evaluate to a *UserObject built by a Throwable-derived
// constructor call; it is converted to the Exception variant here so
// propagation, cause chains, and catch matching all operate on one
// uniform representation regardless of whether the thrown class was
// user-defined or intrinsic.
func (in *Interpreter) evalThrow(n *ir.Throw, frame *Frame) ExecutionResult {
	res := in.evalExpr(n.Value, frame)
	if r, escaped := res.Propagate(); escaped {
		return r
	}
	switch v := res.Value.(type) {
	case *Exception:
		// Rethrow: trace is frozen already; leave it untouched.
		return exceptionResult(v)
	case *UserObject:
		if v == nil {
			return in.throw(in.module.Builtins.NullPointer, "attempt to throw a null reference")
		}
		return exceptionResult(in.exceptionFromObject(v))
	default:
		panic(internalf("throw operand did not evaluate to a throwable object", "Throw", ""))
	}
}

// evalTryCatchFinally implements try/catch/finally: finally's result
// supersedes the try/catch result unless finally itself completes with
// Next, in which case the prior result is preserved (covered by
// TestTryCatchFinally in scenarios_test.go).
//
// Catch and finally bodies run in a sub-frame of the frame active just
// before the try statement (not the try block's own sub-frame): this
// keeps the enclosing function's receiver and parameters visible (a
// catch clause is still part of the same function) while correctly
// hiding the try block's own local declarations.
func (in *Interpreter) evalTryCatchFinally(n *ir.TryCatchFinally, frame *Frame) ExecutionResult {
	tryRes := in.evalExpr(n.Try, NewSubFrame(frame))
	result := tryRes

	if tryRes.Label == LException {
		exc, _ := tryRes.Value.(*Exception)
		for _, c := range n.Catches {
			if !matchesCatch(exc, c.Type) {
				continue
			}
			catchFrame := NewSubFrame(frame)
			catchFrame.Declare(c.Parameter, exc)
			result = in.evalExpr(c.Body, catchFrame)
			break
		}
	}

	if n.Finally != nil {
		finallyRes := in.evalExpr(n.Finally, NewSubFrame(frame))
		if finallyRes.Label != Next {
			return finallyRes
		}
	}

	return result
}
