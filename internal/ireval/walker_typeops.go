package ireval

import (
	"fmt"

	"github.com/cwbudde/irfold/internal/builtins"
	"github.com/cwbudde/irfold/internal/ir"
)

func actualTypeName(v Value) string {
	switch val := v.(type) {
	case Primitive:
		if val.IsNull() {
			return "Null"
		}
		return val.PrimKind.String()
	case Wrapped:
		if val.Class != nil {
			return val.Class.Name
		}
		return "<wrapped>"
	case *UserObject:
		if val == nil {
			return "Null"
		}
		return val.Class.Name
	case *Lambda:
		return val.FunctionalInterface.Name
	case *Exception:
		return val.Class.Name
	default:
		return "<unknown>"
	}
}

// valueMatchesType reports whether v is a runtime inhabitant of t, used by
// CAST/SAFE_CAST/INSTANCEOF.
func valueMatchesType(v Value, t ir.Type) bool {
	if t.IsPrimitive() {
		p, ok := v.(Primitive)
		if !ok {
			return false
		}
		if p.IsNull() {
			return t.Nullable
		}
		return p.PrimKind == t.Kind
	}
	switch val := v.(type) {
	case *UserObject:
		return val != nil && val.Class.IsSubtypeOf(t.Class)
	case Wrapped:
		return val.Class != nil && val.Class.IsSubtypeOf(t.Class)
	case Primitive:
		return val.IsNull() && t.Nullable
	default:
		return false
	}
}

// evalTypeOperator implements CAST, IMPLICIT_CAST, SAFE_CAST, INSTANCEOF,
// NOT_INSTANCEOF, and IMPLICIT_COERCION_TO_UNIT.
func (in *Interpreter) evalTypeOperator(n *ir.TypeOperator, frame *Frame) ExecutionResult {
	operandRes := in.evalExpr(n.Operand, frame)
	if r, escaped := operandRes.Propagate(); escaped {
		return r
	}
	v := operandRes.Value

	switch n.Kind {
	case ir.OpCast:
		if valueMatchesType(v, n.TargetType) {
			return NextResult(v)
		}
		return in.throw(in.module.Builtins.ClassCastException, "%s cannot be cast to %s",
			actualTypeName(v), n.TargetType.Name())
	case ir.OpImplicitCast:
		if valueMatchesType(v, n.TargetType) {
			return NextResult(v)
		}
		return in.throw(in.module.Builtins.ClassCastException, "%s", actualTypeName(v))
	case ir.OpSafeCast:
		if valueMatchesType(v, n.TargetType) {
			return NextResult(v)
		}
		return NextResult(Null())
	case ir.OpInstanceof:
		return NextResult(Primitive{PrimKind: ir.KindBoolean, Raw: valueMatchesType(v, n.TargetType)})
	case ir.OpNotInstanceof:
		return NextResult(Primitive{PrimKind: ir.KindBoolean, Raw: !valueMatchesType(v, n.TargetType)})
	case ir.OpCoerceToUnit:
		return NextResult(Unit)
	default:
		panic(internalf("unsupported type operator kind", "TypeOperator", ""))
	}
}

// toStringValue stringifies v the way StringConcat appends operands:
// dispatching through the overridden-method resolver for UserObjects,
// and via host toString for primitives and wrapped values.
// ok is false only when evaluating an overridden toString body escaped
// with a non-Next signal, in which case escaped carries that signal.
func (in *Interpreter) toStringValue(v Value, frame *Frame) (s string, escaped ExecutionResult, ok bool) {
	switch val := v.(type) {
	case Primitive:
		if val.IsNull() {
			return "null", ExecutionResult{}, true
		}
		if val.PrimKind == ir.KindString {
			str, _ := val.Raw.(string)
			return str, ExecutionResult{}, true
		}
		fn, err := in.tables.Lookup1("toString", val.PrimKind.String())
		if err == nil {
			if out, herr := fn(val.Raw); herr == nil {
				str, _ := out.(string)
				return str, ExecutionResult{}, true
			}
		}
		return fmt.Sprintf("%v", val.Raw), ExecutionResult{}, true
	case Wrapped:
		return val.String(), ExecutionResult{}, true
	case *UserObject:
		if val == nil {
			return "null", ExecutionResult{}, true
		}
		if fn := val.Class.MethodByName("toString"); fn != nil {
			res := in.invokeFunction(fn, val, nil, nil, nil)
			if r, didEscape := res.Propagate(); didEscape {
				return "", r, false
			}
			p, _ := res.Value.(Primitive)
			str, _ := p.Raw.(string)
			return str, ExecutionResult{}, true
		}
		return val.String(), ExecutionResult{}, true
	default:
		return fmt.Sprintf("%v", v), ExecutionResult{}, true
	}
}

func (in *Interpreter) evalStringConcat(n *ir.StringConcat, frame *Frame) ExecutionResult {
	parts := make([]string, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		res := in.evalExpr(arg, frame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		s, escapedRes, ok := in.toStringValue(res.Value, frame)
		if !ok {
			return escapedRes
		}
		parts = append(parts, s)
	}
	return NextResult(Primitive{PrimKind: ir.KindString, Raw: builtins.Concat(parts)})
}

// evalVararg flattens Elements into a single Wrapped array buffer (the
// same array representation constructArray produces), unwrapping array
// buffer elements element-wise while leaving other values scalar.
func (in *Interpreter) evalVararg(n *ir.Vararg, frame *Frame) ExecutionResult {
	flat := make([]Value, 0, len(n.Elements))
	for _, elem := range n.Elements {
		res := in.evalExpr(elem, frame)
		if r, escaped := res.Propagate(); escaped {
			return r
		}
		switch v := res.Value.(type) {
		case Wrapped:
			if buf, ok := asArrayBuffer(v); ok {
				for _, raw := range buf.Elements {
					flat = append(flat, rawToValue(n.ElementType, raw))
				}
				continue
			}
			flat = append(flat, v)
		default:
			flat = append(flat, v)
		}
	}
	buf := newArrayBuffer(len(flat))
	for i, v := range flat {
		buf.Elements[i] = valueToRaw(v)
	}
	return NextResult(Wrapped{Host: buf, Class: in.module.Builtins.Array})
}
