package ireval

import (
	"github.com/cwbudde/irfold/internal/hostwrap"
	"github.com/cwbudde/irfold/internal/ir"
)

// hostOp is one host bridge entry: a constructor, instance method, static
// method, or companion accessor selected by fully-qualified name.
type hostOp func(in *Interpreter, recv Value, args []Value) (Value, *Exception)

// HostBridge is the wrapper layer's total lookup table for every IR class
// marked intrinsic: a constructor table keyed by IR constructor, an
// instance-method table keyed by IR function, a static-method table keyed
// by IR function, and a companion-object singleton accessor. Those four
// concerns are unified here under one fully-qualified-name key, since
// Function.IntrinsicName is already the selector the frontend assigns —
// a miss is an internal error, since these lookups must be total for
// marked classes.
type HostBridge struct {
	ops        map[string]hostOp
	companions map[string]func(in *Interpreter) Value
}

// NewHostBridge starts an empty bridge.
func NewHostBridge() *HostBridge {
	return &HostBridge{ops: make(map[string]hostOp), companions: make(map[string]func(in *Interpreter) Value)}
}

// Register adds or replaces the handler for a fully-qualified intrinsic
// name, used for constructors, instance methods, and static methods
// alike (they are disambiguated by whether recv is nil at call time).
func (b *HostBridge) Register(fqName string, op hostOp) { b.ops[fqName] = op }

// RegisterCompanion adds the singleton accessor for an intrinsic class's
// companion object.
func (b *HostBridge) RegisterCompanion(fqClassName string, accessor func(in *Interpreter) Value) {
	b.companions[fqClassName] = accessor
}

func (b *HostBridge) lookup(fqName string) (hostOp, bool) {
	op, ok := b.ops[fqName]
	return op, ok
}

// Invoke dispatches fn.IntrinsicName through the bridge. A miss is an
// internal error (missing intrinsic binding), never a source exception —
// an unbound intrinsic means the module fragment declared a class as
// intrinsic without wiring its host implementation.
func (in *Interpreter) invokeHostOp(fn *ir.Function, recv Value, args []Value) ExecutionResult {
	op, ok := in.bridge.lookup(fn.IntrinsicName)
	if !ok {
		panic(internalf("missing intrinsic binding for %q", "Call", fn.Name, fn.IntrinsicName))
	}
	v, exc := op(in, recv, args)
	if exc != nil {
		return exceptionResult(exc)
	}
	return NextResult(v)
}

// NewDefaultHostBridge wires the host-wrapped types: Regex, Long64, Char,
// Unsigned, and array buffers. Fully-qualified names follow the
// frontend's own naming convention for intrinsic members; modules that
// declare additional intrinsic classes register further operations on
// top of this base set.
func NewDefaultHostBridge() *HostBridge {
	b := NewHostBridge()

	b.Register("Regex.<init>", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
		pattern := mustString(args[0])
		re, err := hostwrap.NewRegex(pattern)
		if err != nil {
			return nil, in.newException(in.module.Builtins.IllegalArgument, err.Error(), nil)
		}
		return Wrapped{Host: re, Class: in.module.Builtins.Regex}, nil
	})
	b.Register("Regex.matches", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
		re := recv.(Wrapped).Host.(*hostwrap.Regex)
		return Primitive{PrimKind: ir.KindBoolean, Raw: re.Matches(mustString(args[0]))}, nil
	})
	b.Register("Regex.replace", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
		re := recv.(Wrapped).Host.(*hostwrap.Regex)
		return Primitive{PrimKind: ir.KindString, Raw: re.Replace(mustString(args[0]), mustString(args[1]))}, nil
	})

	// Long and Char are primitive-represented (ir.KindLong / ir.KindChar):
	// hostwrap.Long64/Char exist only to perform the shift-math the
	// construction contract describes; the result collapses straight back
	// to a Primitive since Go's int64/rune already are the host width.
	b.Register("Long.<init>", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
		high := int32(mustInt(args[0]))
		low := int32(mustInt(args[1]))
		return Primitive{PrimKind: ir.KindLong, Raw: hostwrap.NewLong64FromParts(high, low).Value}, nil
	})

	b.Register("Char.<init>", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
		return Primitive{PrimKind: ir.KindChar, Raw: hostwrap.NewCharFromInt(mustInt(args[0])).Value}, nil
	})

	for _, spec := range []struct {
		name  string
		width hostwrap.UWidth
		class func(ir.BuiltinClasses) *ir.Class
	}{
		{"UByte", hostwrap.UByte, func(b ir.BuiltinClasses) *ir.Class { return b.UnsignedByte }},
		{"UShort", hostwrap.UShort, func(b ir.BuiltinClasses) *ir.Class { return b.UnsignedShort }},
		{"UInt", hostwrap.UInt, func(b ir.BuiltinClasses) *ir.Class { return b.UnsignedInt }},
		{"ULong", hostwrap.ULong, func(b ir.BuiltinClasses) *ir.Class { return b.UnsignedLong }},
	} {
		width, classOf := spec.width, spec.class
		b.Register(spec.name+".<init>", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
			return Wrapped{Host: hostwrap.NewUnsigned(width, mustInt(args[0])), Class: classOf(in.module.Builtins)}, nil
		})
		b.Register(spec.name+".plus", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
			u := recv.(Wrapped).Host.(hostwrap.Unsigned)
			other := args[0].(Wrapped).Host.(hostwrap.Unsigned)
			return Wrapped{Host: u.Add(other), Class: classOf(in.module.Builtins)}, nil
		})
		b.Register(spec.name+".minus", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
			u := recv.(Wrapped).Host.(hostwrap.Unsigned)
			other := args[0].(Wrapped).Host.(hostwrap.Unsigned)
			return Wrapped{Host: u.Sub(other), Class: classOf(in.module.Builtins)}, nil
		})
		b.Register(spec.name+".times", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
			u := recv.(Wrapped).Host.(hostwrap.Unsigned)
			other := args[0].(Wrapped).Host.(hostwrap.Unsigned)
			return Wrapped{Host: u.Mul(other), Class: classOf(in.module.Builtins)}, nil
		})
	}

	b.Register("Array.<get>", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
		buf, _ := asArrayBuffer(recv.(Wrapped))
		idx := int(mustInt(args[0]))
		raw, err := buf.Get(idx)
		if err != nil {
			return nil, in.newException(in.module.Builtins.IndexOutOfBounds, err.Error(), nil)
		}
		return rawToValue(ir.Type{}, raw), nil
	})
	b.Register("Array.<set>", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
		buf, _ := asArrayBuffer(recv.(Wrapped))
		idx := int(mustInt(args[0]))
		if err := buf.Set(idx, valueToRaw(args[1])); err != nil {
			return nil, in.newException(in.module.Builtins.IndexOutOfBounds, err.Error(), nil)
		}
		return Unit, nil
	})
	b.Register("Array.size", func(in *Interpreter, recv Value, args []Value) (Value, *Exception) {
		buf, _ := asArrayBuffer(recv.(Wrapped))
		return Primitive{PrimKind: ir.KindInt, Raw: int64(buf.Len())}, nil
	})

	return b
}

func mustString(v Value) string {
	p := v.(Primitive)
	s, _ := p.Raw.(string)
	return s
}

func mustInt(v Value) int64 {
	p := v.(Primitive)
	i, _ := p.Raw.(int64)
	return i
}
