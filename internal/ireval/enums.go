package ireval

import (
	"github.com/cwbudde/irfold/internal/ir"
	"github.com/maruel/natural"
)

// intrinsicEnumValueOf is the IntrinsicName carried by the reified
// enumValueOf<T>(name) built-in: the frontend monomorphizes each call
// site to one concrete enum class, recorded on the Function's own Class
// field the same way an ordinary method's owning class is.
const intrinsicEnumValueOf = "kotlin.enumValueOf"

// resolveEnumEntry resolves one enum entry to its (possibly interned)
// instance: the intern map is consulted first; a miss either calls the
// host valueOf for an intrinsic enum, or rewrites the entry's
// super-constructor call to carry synthetic name/ordinal arguments,
// evaluates it, and restores the original arguments so the IR is left
// unmodified.
func (in *Interpreter) resolveEnumEntry(class *ir.Class, entry *ir.EnumEntry, frame *Frame) ExecutionResult {
	key := enumKey{class: class, name: entry.Name}
	if obj, ok := in.enumInterns[key]; ok {
		return NextResult(obj)
	}

	if class.Intrinsic {
		op, ok := in.bridge.lookup(class.IntrinsicName + ".valueOf")
		if !ok {
			panic(internalf("missing intrinsic binding for %q", "EnumValueRef", "", class.IntrinsicName+".valueOf"))
		}
		v, exc := op(in, nil, []Value{Primitive{PrimKind: ir.KindString, Raw: entry.Name}})
		if exc != nil {
			return exceptionResult(exc)
		}
		if obj, ok := v.(*UserObject); ok {
			in.enumInterns[key] = obj
		}
		return NextResult(v)
	}

	ctorCall := entry.InitializerCall
	original := ctorCall.ValueArguments
	ctorCall.ValueArguments = append(append([]ir.Expression{}, original...),
		ir.NewConst(ir.PrimitiveType(ir.KindString), entry.Name),
		ir.NewConst(ir.PrimitiveType(ir.KindInt), int64(entry.Ordinal)),
	)
	res := in.evalExpr(ctorCall, frame)
	ctorCall.ValueArguments = original

	if r, escaped := res.Propagate(); escaped {
		return r
	}
	if obj, ok := res.Value.(*UserObject); ok {
		in.enumInterns[key] = obj
	}
	return res
}

func (in *Interpreter) evalEnumValueRef(n *ir.EnumValueRef, frame *Frame) ExecutionResult {
	return in.resolveEnumEntry(n.Class, n.Entry, frame)
}

// evalEnumValueOf implements the dynamic, string-keyed enumValueOf<T>
// lookup: a found entry is resolved (and interned) the same way a static
// C.N reference is; a miss raises IllegalArgumentException, naming as a
// hint the entry that follows the requested name in natural sort order
// (no hint when the requested name sorts after every entry).
func (in *Interpreter) evalEnumValueOf(fn *ir.Function, args []Value) ExecutionResult {
	target := fn.Class
	name := mustString(args[0])

	for _, entry := range target.EnumEntries {
		if entry.Name == name {
			return in.resolveEnumEntry(target, entry, NewFullFrame(nil, nil))
		}
	}

	names := make([]string, len(target.EnumEntries))
	for i, e := range target.EnumEntries {
		names[i] = e.Name
	}
	candidates := append([]string{name}, names...)
	natural.Sort(candidates)

	message := "No enum constant " + target.Name + "." + name
	for i, c := range candidates {
		if c == name && i+1 < len(candidates) {
			message += " (closest match: " + candidates[i+1] + ")"
			break
		}
	}
	return in.throw(in.module.Builtins.IllegalArgument, "%s", message)
}
