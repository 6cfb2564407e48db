package ireval

import (
	"github.com/cwbudde/irfold/internal/hostwrap"
	"github.com/cwbudde/irfold/internal/ir"
)

// newArrayBuffer allocates a buffer of size elements, each zeroed to Unit.
// The vararg path and an array constructor given an initializer lambda
// overwrite every element; an array constructed without one keeps the
// Unit elements.
func newArrayBuffer(size int) *hostwrap.ArrayBuffer {
	return hostwrap.NewArrayBuffer(size, Unit)
}

// asArrayBuffer unwraps a Wrapped value as an *hostwrap.ArrayBuffer, the
// host type backing both primitive and object arrays.
func asArrayBuffer(v Wrapped) (*hostwrap.ArrayBuffer, bool) {
	buf, ok := v.Host.(*hostwrap.ArrayBuffer)
	return buf, ok
}

// valueToRaw/rawToValue convert between the evaluator's Value and the
// interface{} slots an hostwrap.ArrayBuffer stores, since ArrayBuffer
// lives in a package that cannot import ireval (it would create an
// import cycle: ireval already imports hostwrap for Long64/Char/Unsigned
// construction in the constructor path).
func valueToRaw(v Value) interface{} { return v }

func rawToValue(elemType ir.Type, raw interface{}) Value {
	if v, ok := raw.(Value); ok {
		return v
	}
	return Primitive{PrimKind: elemType.Kind, Raw: raw}
}
