package ireval

import (
	"fmt"

	"github.com/cwbudde/irfold/internal/ir"
)

// This and Super resolve through the receiver symbol of the nearest
// enclosing full frame (Frame.ReceiverSymbol). The frontend always names
// the current receiver with a *ir.Symbol of kind SymbolReceiver; evalExpr
// looks it up the same way it looks up any other variable.

// evalExpr is the tree walker's single dispatch point: one case per IR
// node variant. Every step first advances the command counter.
func (in *Interpreter) evalExpr(expr ir.Expression, frame *Frame) ExecutionResult {
	if err := in.checkBudget(); err != nil {
		panic(err)
	}

	switch n := expr.(type) {
	case *ir.Const:
		return in.evalConst(n)
	case *ir.GetValue:
		return in.evalGetValue(n, frame)
	case *ir.SetValue:
		return in.evalSetValue(n, frame)
	case *ir.GetField:
		return in.evalGetField(n, frame)
	case *ir.SetField:
		return in.evalSetField(n, frame)
	case *ir.Block:
		return in.evalBlock(n, frame)
	case *ir.VarDecl:
		return in.evalVarDecl(n, frame)
	case *ir.This:
		return in.evalThis(frame)
	case *ir.Super:
		return in.evalSuper(n, frame)
	case *ir.StringConcat:
		return in.evalStringConcat(n, frame)
	case *ir.When:
		return in.evalWhen(n, frame)
	case *ir.While:
		return in.evalWhile(n, frame)
	case *ir.Break:
		return ExecutionResult{Label: LBreak, Value: Unit, Loop: n.Label}
	case *ir.Continue:
		return ExecutionResult{Label: LContinue, Value: Unit, Loop: n.Label}
	case *ir.Return:
		return in.evalReturn(n, frame)
	case *ir.Throw:
		return in.evalThrow(n, frame)
	case *ir.TryCatchFinally:
		return in.evalTryCatchFinally(n, frame)
	case *ir.TypeOperator:
		return in.evalTypeOperator(n, frame)
	case *ir.Vararg:
		return in.evalVararg(n, frame)
	case *ir.Call:
		return in.evalCall(n, frame)
	case *ir.ConstructorCall:
		return in.evalConstructorCall(n, frame)
	case *ir.EnumValueRef:
		return in.evalEnumValueRef(n, frame)
	case *ir.InstanceInitializer:
		return in.evalInstanceInitializer(n, frame)
	case *ir.FunctionExpr:
		return NextResult(&Lambda{Function: n.Function, FunctionalInterface: n.FunctionalInterface, Closure: frame})
	case *ir.GetObjectValue:
		return in.evalGetObjectValue(n)
	default:
		panic(internalf("unsupported IR node shape", fmt.Sprintf("%T", expr), ""))
	}
}

func (in *Interpreter) evalConst(n *ir.Const) ExecutionResult {
	return NextResult(Primitive{PrimKind: n.StaticType().Kind, Raw: n.Value})
}

func (in *Interpreter) evalGetValue(n *ir.GetValue, frame *Frame) ExecutionResult {
	v, ok := frame.Lookup(n.Symbol)
	if !ok {
		panic(internalf("read of unbound symbol %q", "GetValue", "", n.Symbol.Name))
	}
	return NextResult(v)
}

func (in *Interpreter) evalSetValue(n *ir.SetValue, frame *Frame) ExecutionResult {
	res := in.evalExpr(n.Value, frame)
	if r, escaped := res.Propagate(); escaped {
		return r
	}
	if !frame.Assign(n.Symbol, res.Value) {
		panic(internalf("assignment to unbound symbol %q", "SetValue", "", n.Symbol.Name))
	}
	return NextResult(Unit)
}

func (in *Interpreter) evalGetField(n *ir.GetField, frame *Frame) ExecutionResult {
	recvRes := in.evalExpr(n.Receiver, frame)
	if r, escaped := recvRes.Propagate(); escaped {
		return r
	}
	obj, ok := recvRes.Value.(*UserObject)
	if !ok || obj == nil {
		return in.throw(in.module.Builtins.NullPointer, "attempt to read field %q on a null receiver", n.Field.Name)
	}
	v, ok := obj.Get(n.Field)
	if !ok {
		panic(internalf("read of undeclared field %q", "GetField", "", n.Field.Name))
	}
	return NextResult(v)
}

func (in *Interpreter) evalSetField(n *ir.SetField, frame *Frame) ExecutionResult {
	recvRes := in.evalExpr(n.Receiver, frame)
	if r, escaped := recvRes.Propagate(); escaped {
		return r
	}
	obj, ok := recvRes.Value.(*UserObject)
	if !ok || obj == nil {
		return in.throw(in.module.Builtins.NullPointer, "attempt to write field %q on a null receiver", n.Field.Name)
	}
	valRes := in.evalExpr(n.Value, frame)
	if r, escaped := valRes.Propagate(); escaped {
		return r
	}
	obj.Set(n.Field, valRes.Value)
	return NextResult(Unit)
}

// evalBlock evaluates statements in order under either a fresh sub-frame
// (IsSubFrame: inherits the caller's bindings) or the caller's own frame
// directly when this block does not introduce a new scope boundary.
func (in *Interpreter) evalBlock(n *ir.Block, frame *Frame) ExecutionResult {
	scope := frame
	if n.IsSubFrame {
		scope = NewSubFrame(frame)
	}
	last := NextResult(Unit)
	for _, stmt := range n.Statements {
		last = in.evalExpr(stmt, scope)
		if r, escaped := last.Propagate(); escaped {
			return r
		}
	}
	return last
}

func (in *Interpreter) evalVarDecl(n *ir.VarDecl, frame *Frame) ExecutionResult {
	val := Value(Unit)
	if n.Initializer != nil {
		res := in.evalExpr(n.Initializer, frame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		val = res.Value
	}
	frame.Declare(n.Symbol, val)
	return NextResult(Unit)
}

func (in *Interpreter) evalThis(frame *Frame) ExecutionResult {
	sym := frame.ReceiverSymbol()
	if sym == nil {
		panic(internalf("this referenced outside of a receiver-bound frame", "This", ""))
	}
	v, ok := frame.Lookup(sym)
	if !ok {
		panic(internalf("this referenced but receiver symbol %q is unbound", "This", "", sym.Name))
	}
	return NextResult(v)
}

func (in *Interpreter) evalSuper(n *ir.Super, frame *Frame) ExecutionResult {
	sym := frame.ReceiverSymbol()
	if sym == nil {
		panic(internalf("super referenced outside of a receiver-bound frame", "Super", ""))
	}
	v, ok := frame.Lookup(sym)
	if !ok {
		panic(internalf("super referenced but receiver symbol %q is unbound", "Super", "", sym.Name))
	}
	obj, ok := v.(*UserObject)
	if !ok || obj.SuperInstance == nil {
		panic(internalf("super referenced on an object with no super-instance", "Super", ""))
	}
	return NextResult(obj.SuperInstance)
}
