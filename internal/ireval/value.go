// Package ireval is the tree-walking constant-folding evaluator: value
// model, frame stack, call dispatch, and the execution-result protocol
// that drives them.
package ireval

import (
	"fmt"

	"github.com/cwbudde/irfold/internal/ir"
)

// Kind tags which of the five Value variants a Value is.
type Kind int

const (
	KindPrimitive Kind = iota
	KindWrapped
	KindUserObject
	KindLambda
	KindException
)

// Value is the runtime representation every evaluation step produces and
// consumes. There are exactly five variants; see each type's doc comment.
type Value interface {
	Kind() Kind
	fmt.Stringer
}

// Primitive holds one of the raw primitive kinds (bool, char, numeric
// widths, string) or null. Raw's dynamic type is chosen by PrimKind:
// bool, rune (Char), int64 (Byte/Short/Int/Long, sign-extended), float64
// (Float/Double stored widened), string, or nil (KindNull).
type Primitive struct {
	PrimKind ir.PrimitiveKind
	Raw      interface{}
}

func (Primitive) Kind() Kind { return KindPrimitive }

func (p Primitive) String() string {
	if p.Raw == nil {
		return "null"
	}
	switch v := p.Raw.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// IsNull reports whether p represents the null literal.
func (p Primitive) IsNull() bool { return p.PrimKind == ir.KindNull || p.Raw == nil }

// Unit is the singular value of the Unit type, used as the result of
// statements and of a finally block that completes normally.
var Unit = Primitive{PrimKind: ir.KindUnit, Raw: nil}

// Null constructs the null primitive.
func Null() Primitive { return Primitive{PrimKind: ir.KindNull, Raw: nil} }

// Wrapped is a value whose behavior is supplied by the host runtime: a
// regex object, a Long on hosts without a native 64-bit integer, an
// unsigned integer, an array buffer, or an intrinsic companion singleton.
type Wrapped struct {
	Host  interface{} // the host-side object (e.g. *hostwrap.Regex, *hostwrap.ArrayBuffer)
	Class *ir.Class   // the IR class this wrapper presents itself as
}

func (Wrapped) Kind() Kind { return KindWrapped }
func (w Wrapped) String() string {
	if s, ok := w.Host.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", w.Host)
}

// UserObject is an instance of a user-defined class. Fields is keyed by
// backing-field Symbol identity. SuperInstance, when non-nil, is the
// portion of this object representing its super-class, used for super
// dispatch and enum interning.
type UserObject struct {
	Class         *ir.Class
	Fields        map[*ir.Symbol]Value
	SuperInstance *UserObject
}

func (*UserObject) Kind() Kind { return KindUserObject }
func (o *UserObject) String() string {
	if o == nil {
		return "null"
	}
	return fmt.Sprintf("%s instance", o.Class.Name)
}

// NewUserObject allocates a zeroed instance of class c with no super-chain
// attached yet (constructors attach SuperInstance as they run).
func NewUserObject(c *ir.Class) *UserObject {
	return &UserObject{Class: c, Fields: make(map[*ir.Symbol]Value)}
}

// Get walks this object's super-chain outward (innermost first) looking
// for field. Fields are stored on whichever instance in the chain declared
// them, so a lookup must be able to find fields declared on a super-class.
func (o *UserObject) Get(field *ir.Symbol) (Value, bool) {
	for cur := o; cur != nil; cur = cur.SuperInstance {
		if v, ok := cur.Fields[field]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set mutates field in place wherever it is already bound in the
// super-chain, or on this instance if it is not yet bound anywhere.
func (o *UserObject) Set(field *ir.Symbol, v Value) {
	for cur := o; cur != nil; cur = cur.SuperInstance {
		if _, ok := cur.Fields[field]; ok {
			cur.Fields[field] = v
			return
		}
	}
	o.Fields[field] = v
}

// Lambda is a first-class function value. Closure is the frame chain
// active when the lambda literal was evaluated; calls resolve captured
// variables by chaining the call's own full frame off of Closure, so
// closure values are resolved through the enclosing frame stack at call
// time.
type Lambda struct {
	Function            *ir.Function
	FunctionalInterface  *ir.Class
	Closure              *Frame
}

func (*Lambda) Kind() Kind { return KindLambda }
func (l *Lambda) String() string {
	return fmt.Sprintf("lambda<%s>", l.FunctionalInterface.Name)
}

// Exception is a thrown value. Trace is frozen at throw time and never
// mutated afterward.
type Exception struct {
	Class   *ir.Class
	Message string
	Cause   *Exception
	Trace   []string
}

func (*Exception) Kind() Kind { return KindException }
func (e *Exception) String() string {
	return fmt.Sprintf("%s: %s", e.Class.Name, e.Message)
}
