// Package ir defines the typed intermediate representation consumed by the
// evaluator. The IR is produced upstream by frontend name resolution and
// type resolution; this package only declares its shape.
package ir

// PrimitiveKind enumerates the primitive value kinds the IR's type system
// exposes directly. Everything else is represented through Class.
type PrimitiveKind int

const (
	KindInvalid PrimitiveKind = iota
	KindBoolean
	KindChar
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindUnit
	KindNull
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindChar:
		return "Char"
	case KindByte:
		return "Byte"
	case KindShort:
		return "Short"
	case KindInt:
		return "Int"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindUnit:
		return "Unit"
	case KindNull:
		return "Null"
	default:
		return "<invalid>"
	}
}

// Type is either a primitive kind or a reference to a user/intrinsic class.
// Nullable marks whether null is a valid inhabitant of the type.
type Type struct {
	Kind     PrimitiveKind // KindInvalid when Class is set
	Class    *Class        // nil for primitive types
	Nullable bool
}

// IsPrimitive reports whether this type is one of the raw primitive kinds.
func (t Type) IsPrimitive() bool { return t.Class == nil && t.Kind != KindInvalid }

// Name returns a human-readable type name, used when formatting messages
// such as ClassCastException text ("X cannot be cast to Y").
func (t Type) Name() string {
	if t.Class != nil {
		return t.Class.Name
	}
	return t.Kind.String()
}

// PrimitiveType is a convenience constructor for a non-nullable primitive type.
func PrimitiveType(k PrimitiveKind) Type { return Type{Kind: k} }

// ClassType is a convenience constructor for a class-referencing type.
func ClassType(c *Class) Type { return Type{Class: c} }
