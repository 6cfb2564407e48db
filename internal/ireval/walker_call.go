package ireval

import (
	"strings"

	"github.com/cwbudde/irfold/internal/ir"
)

// evalCall evaluates the dispatch receiver, extension receiver, and value
// arguments left-to-right in the caller's frame, then invokes the
// selected implementation of Target through the dispatch cascade.
func (in *Interpreter) evalCall(n *ir.Call, frame *Frame) ExecutionResult {
	var dispatchVal Value
	if n.DispatchReceiver != nil {
		res := in.evalExpr(n.DispatchReceiver, frame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		dispatchVal = res.Value
		if isNullReceiver(dispatchVal) {
			return in.throw(in.module.Builtins.NullPointer, "attempt to invoke %q on a null receiver", n.Target.Name)
		}
	}

	var extVal Value
	if n.ExtensionReceiver != nil {
		res := in.evalExpr(n.ExtensionReceiver, frame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		extVal = res.Value
	}

	args := make([]Value, len(n.ValueArguments))
	for i, argExpr := range n.ValueArguments {
		res := in.evalExpr(argExpr, frame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		args[i] = res.Value
	}

	return in.dispatchCall(n.Target, dispatchVal, extVal, args)
}

func isNullReceiver(v Value) bool {
	p, ok := v.(Primitive)
	return ok && p.IsNull()
}

// dispatchCall implements the dispatch cascade: (0) a Lambda receiver
// always invokes its own function body against its capture closure,
// regardless of the target's declared modality, since functional-
// interface dispatch is resolved by the frontend to "call whatever this
// lambda value is"; (1) host-wrapped dispatch; (2) intrinsic annotation;
// (3) abstract method resolution against the dispatch receiver's runtime
// class; (4) fake-override walk; (5) primitive/no-body dispatch through
// the built-in tables; (6) default: evaluate the selected function's IR
// body.
func (in *Interpreter) dispatchCall(fn *ir.Function, dispatchVal, extVal Value, args []Value) ExecutionResult {
	if lambda, ok := dispatchVal.(*Lambda); ok {
		return in.invokeLambda(lambda, args)
	}

	if fn.IntrinsicName == intrinsicEnumValueOf {
		return in.evalEnumValueOf(fn, args)
	}

	if w, ok := dispatchVal.(Wrapped); ok && !fn.IsInterfaceDefault && fn.IntrinsicName != "" {
		return in.invokeHostOp(fn, w, args)
	}

	if fn.IntrinsicName != "" {
		return in.invokeHostOp(fn, dispatchVal, args)
	}

	if fn.IsPrimitiveOp && fn.Name == "rangeTo" {
		return in.evalRangeTo(dispatchVal, args)
	}

	if fn.Modality == ir.ModalityAbstract {
		obj, ok := dispatchVal.(*UserObject)
		if !ok || obj == nil {
			return in.throw(in.module.Builtins.NullPointer, "attempt to invoke %q on a null receiver", fn.Name)
		}
		override := obj.Class.MethodByName(fn.Name)
		if override == nil || !override.HasBody {
			panic(internalf("no concrete override found for abstract method %q", "Call", "", fn.Name))
		}
		return in.invokeFunction(override, dispatchVal, extVal, args, nil)
	}

	if fn.Modality == ir.ModalityFakeOverride {
		if real := resolveFakeOverride(fn); real != nil {
			return in.invokeFunction(real, dispatchVal, extVal, args, nil)
		}
	}

	if fn.IsPrimitiveOp || !fn.HasBody {
		return in.invokePrimitive(fn, dispatchVal, args)
	}

	return in.invokeFunction(fn, dispatchVal, extVal, args, nil)
}

// resolveFakeOverride walks fn.OverriddenSymbols nearest-first looking for
// the first ancestor that actually carries an IR body. If none exists in
// the user IR, callers treat a nil result as a signal to fall through to
// built-ins against the ultimate base signature.
func resolveFakeOverride(fn *ir.Function) *ir.Function {
	for _, ancestor := range fn.OverriddenSymbols {
		if ancestor.HasBody {
			return ancestor
		}
	}
	return nil
}

// invokePrimitive dispatches to the built-in table set keyed by method
// name and the actual runtime type names of the receiver and arguments.
// Reaching this function implies the frontend already resolved the call
// to a primitive operator, so a missing table entry is an internal
// error, not a source-level failure.
func (in *Interpreter) invokePrimitive(fn *ir.Function, receiver Value, args []Value) ExecutionResult {
	recvType := actualTypeName(receiver)
	raw := func(v Value) interface{} {
		if p, ok := v.(Primitive); ok {
			return p.Raw
		}
		return v
	}

	var out interface{}
	var herr error
	switch len(args) {
	case 0:
		hfn, err := in.tables.Lookup1(fn.Name, recvType)
		if err != nil {
			panic(internalf("impossible built-in arity for %q on %s: %v", "Call", "", fn.Name, recvType, err))
		}
		out, herr = hfn(raw(receiver))
	case 1:
		hfn, err := in.tables.Lookup2(fn.Name, recvType, actualTypeName(args[0]))
		if err != nil {
			panic(internalf("impossible built-in arity for %q on %s: %v", "Call", "", fn.Name, recvType, err))
		}
		out, herr = hfn(raw(receiver), raw(args[0]))
	case 2:
		hfn, err := in.tables.Lookup3(fn.Name, recvType, actualTypeName(args[0]), actualTypeName(args[1]))
		if err != nil {
			panic(internalf("impossible built-in arity for %q on %s: %v", "Call", "", fn.Name, recvType, err))
		}
		out, herr = hfn(raw(receiver), raw(args[0]), raw(args[1]))
	default:
		panic(internalf("built-in dispatch does not support arity %d", "Call", fn.Name, len(args)))
	}

	if herr != nil {
		class := in.module.Builtins.Throwable
		if strings.Contains(herr.Error(), "division by zero") && in.module.Builtins.ArithmeticError != nil {
			class = in.module.Builtins.ArithmeticError
		}
		return in.throw(class, "%s", herr.Error())
	}
	return NextResult(Primitive{PrimKind: fn.ReturnType.Kind, Raw: out})
}

// invokeLambda calls a first-class function value, threading its capture
// closure through so the body can resolve the variables it closed over
// via the enclosing frame stack at call time.
func (in *Interpreter) invokeLambda(lambda *Lambda, args []Value) ExecutionResult {
	return in.invokeFunction(lambda.Function, nil, nil, args, lambda.Closure)
}

// invokeFunction pushes a call-stack frame, binds receiver/extension
// receiver/parameters into a fresh full frame, and evaluates fn's body.
// closure is nil for an ordinary function/method/constructor call, or a
// lambda's capture chain when invoking a lambda value — see NewFullFrame.
//
// A Return reaching this level unwinds into the function's own result
// exactly when its Target matches fn.ReturnTarget; any other Target means
// a non-local return from a nested inline lambda still in flight, and is
// propagated unchanged. A body that runs to completion with Next (an
// expression body with no explicit Return) produces the body's own value,
// or Unit when fn's declared return type is Unit.
func (in *Interpreter) invokeFunction(fn *ir.Function, receiver, extReceiver Value, args []Value, closure *Frame) ExecutionResult {
	loc := ir.SourceLocation{}
	if in.module.Lines != nil {
		loc = in.module.Lines.Location(fn, in.callStack.Depth())
	}
	name := fn.Name
	if in.module.FunctionQualifiedName != nil {
		name = in.module.FunctionQualifiedName(fn)
	}
	if !in.callStack.Push(StackFrame{FunctionName: name, File: loc.File, Line: loc.Line}) {
		return in.throw(in.module.Builtins.StackOverflow, "stack overflow")
	}
	defer in.callStack.Pop()

	if !fn.HasBody {
		panic(internalf("function %q selected for direct evaluation has no IR body", "Call", "", fn.Name))
	}

	callFrame := NewFullFrame(closure, fn.Receiver)
	if fn.Receiver != nil {
		callFrame.Declare(fn.Receiver, receiver)
	}
	if fn.ExtensionReceiver != nil {
		callFrame.Declare(fn.ExtensionReceiver, extReceiver)
	}
	for i, param := range fn.ValueParameters {
		if i < len(args) {
			callFrame.Declare(param.Symbol, args[i])
			continue
		}
		if param.DefaultValue == nil {
			panic(internalf("missing argument for parameter %q with no default value", "Call", fn.Name, param.Symbol.Name))
		}
		res := in.evalExpr(param.DefaultValue, callFrame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		callFrame.Declare(param.Symbol, res.Value)
	}

	res := in.evalExpr(fn.Body, callFrame)
	if res.Label == LReturn && res.Target == fn.ReturnTarget {
		return NextResult(res.Value)
	}
	if res.Label == Next {
		if fn.ReturnType.Kind == ir.KindUnit {
			return NextResult(Unit)
		}
		return NextResult(res.Value)
	}
	return res
}
