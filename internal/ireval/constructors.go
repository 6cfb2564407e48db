package ireval

import "github.com/cwbudde/irfold/internal/ir"

// evalConstructorCall evaluates arguments left-to-right in the caller's
// frame, then dispatches construction by what kind of class is being
// built.
func (in *Interpreter) evalConstructorCall(n *ir.ConstructorCall, frame *Frame) ExecutionResult {
	args := make([]Value, len(n.ValueArguments))
	for i, argExpr := range n.ValueArguments {
		res := in.evalExpr(argExpr, frame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		args[i] = res.Value
	}
	return in.construct(n.Class, n.Constructor, args)
}

// evalRangeTo implements the rangeTo carve-out: it synthesizes a
// constructor call on the range's IR class with the two already-evaluated
// endpoints as primitives, running that construction through the normal
// construction path rather than the built-in dispatch tables.
func (in *Interpreter) evalRangeTo(start Value, args []Value) ExecutionResult {
	rangeClass := in.module.Builtins.Range
	ctor := rangeClass.MethodByName("<init>")
	return in.construct(rangeClass, ctor, append([]Value{start}, args...))
}

// construct selects among the construction paths: an intrinsic
// constructor (Long/Char/Unsigned/Regex/host-provided) delegates to the
// host bridge; a primitive or object array allocates a mutable buffer;
// everything else allocates a UserObject and runs its constructor body.
func (in *Interpreter) construct(class *ir.Class, ctor *ir.Function, args []Value) ExecutionResult {
	if ctor != nil && ctor.IntrinsicName != "" {
		return in.invokeHostOp(ctor, nil, args)
	}
	if class == in.module.Builtins.Array {
		return in.constructArray(args)
	}
	return in.constructUserObject(class, ctor, args)
}

// constructArray allocates a buffer of the given size and, when an
// initializer lambda is supplied, invokes it once per index in order,
// writing each result.
func (in *Interpreter) constructArray(args []Value) ExecutionResult {
	size := int(mustInt(args[0]))
	buf := newArrayBuffer(size)
	if len(args) > 1 {
		if lambda, ok := args[1].(*Lambda); ok {
			for i := 0; i < size; i++ {
				res := in.invokeLambda(lambda, []Value{Primitive{PrimKind: ir.KindInt, Raw: int64(i)}})
				if r, escaped := res.Propagate(); escaped {
					return r
				}
				buf.Elements[i] = valueToRaw(res.Value)
			}
		}
	}
	return NextResult(Wrapped{Host: buf, Class: in.module.Builtins.Array})
}

// constructUserObject allocates obj and runs ctor's body: the first
// statement is the delegating call (to a super constructor, a sibling
// constructor, or an enum super-constructor), whose result attaches to
// obj per the primary/secondary distinction; the remaining statements
// then run with obj bound to ctor's own receiver symbol.
func (in *Interpreter) constructUserObject(class *ir.Class, ctor *ir.Function, args []Value) ExecutionResult {
	obj := NewUserObject(class)
	if ctor == nil || !ctor.HasBody {
		return NextResult(obj)
	}

	loc := ir.SourceLocation{}
	if in.module.Lines != nil {
		loc = in.module.Lines.Location(ctor, in.callStack.Depth())
	}
	name := ctor.Name
	if in.module.FunctionQualifiedName != nil {
		name = in.module.FunctionQualifiedName(ctor)
	}
	if !in.callStack.Push(StackFrame{FunctionName: name, File: loc.File, Line: loc.Line}) {
		return in.throw(in.module.Builtins.StackOverflow, "stack overflow")
	}
	defer in.callStack.Pop()

	ctorFrame := NewFullFrame(nil, ctor.Receiver)
	if ctor.Receiver != nil {
		ctorFrame.Declare(ctor.Receiver, obj)
	}
	for i, param := range ctor.ValueParameters {
		if i < len(args) {
			ctorFrame.Declare(param.Symbol, args[i])
			continue
		}
		if param.DefaultValue == nil {
			panic(internalf("missing argument for parameter %q with no default value", "ConstructorCall", ctor.Name, param.Symbol.Name))
		}
		res := in.evalExpr(param.DefaultValue, ctorFrame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		ctorFrame.Declare(param.Symbol, res.Value)
	}

	block, ok := ctor.Body.(*ir.Block)
	if !ok || len(block.Statements) == 0 {
		panic(internalf("constructor %q body does not start with a delegating call", "ConstructorCall", "", ctor.Name))
	}

	delegateRes := in.evalExpr(block.Statements[0], ctorFrame)
	if r, escaped := delegateRes.Propagate(); escaped {
		return r
	}
	if delegateObj, ok := delegateRes.Value.(*UserObject); ok && delegateObj != nil {
		if ctor.IsPrimaryConstructor {
			obj.SuperInstance = delegateObj
		} else {
			for sym, v := range delegateObj.Fields {
				obj.Fields[sym] = v
			}
			obj.SuperInstance = delegateObj.SuperInstance
		}
	}

	for _, stmt := range block.Statements[1:] {
		res := in.evalExpr(stmt, ctorFrame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
	}

	return NextResult(obj)
}

// evalInstanceInitializer runs a class's property initializers and
// anonymous initializer blocks in declaration order against the receiver
// already bound in frame.
func (in *Interpreter) evalInstanceInitializer(n *ir.InstanceInitializer, frame *Frame) ExecutionResult {
	recvVal, ok := frame.Lookup(n.Receiver)
	if !ok {
		panic(internalf("instanceInitializer receiver %q is unbound", "InstanceInitializer", "", n.Receiver.Name))
	}
	obj, ok := recvVal.(*UserObject)
	if !ok || obj == nil {
		panic(internalf("instanceInitializer receiver is not a UserObject", "InstanceInitializer", ""))
	}

	for _, fi := range n.FieldInit {
		res := in.evalExpr(fi.Value, frame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		if fi.Field != nil {
			obj.Set(fi.Field, res.Value)
		}
	}
	return NextResult(Unit)
}

// evalGetObjectValue accesses an intrinsic class's companion/static
// singleton through the host bridge.
func (in *Interpreter) evalGetObjectValue(n *ir.GetObjectValue) ExecutionResult {
	key := n.Class.IntrinsicName
	if key == "" {
		key = n.Class.Name
	}
	accessor, ok := in.bridge.companions[key]
	if !ok {
		panic(internalf("missing companion accessor for %q", "GetObjectValue", "", key))
	}
	return NextResult(accessor(in))
}
