// Package builtins holds the compile-time function-key dispatch tables
// for arity 1, 2, and 3 primitive operators: numeric arithmetic at the
// width dictated by the most-precise argument type, string methods via
// host string APIs, and boolean operators via short-circuit-free host
// semantics (short-circuiting itself is expressed at the IR level by the
// caller, not here).
//
// Tables operate on raw host representations (bool, rune, int64, float64,
// string) rather than on the evaluator's Value type, so this package has
// no dependency on package ireval: the walker converts Primitive<->raw at
// the call boundary.
package builtins

import "fmt"

// Signature is the compile-time function key: a method name plus the
// ordered list of argument IR type names (receiver type first).
type Signature struct {
	Method   string
	ArgTypes [3]string // unused trailing slots left as ""
}

func sig1(method, recv string) Signature             { return Signature{Method: method, ArgTypes: [3]string{recv}} }
func sig2(method, recv, arg string) Signature         { return Signature{Method: method, ArgTypes: [3]string{recv, arg}} }
func sig3(method, recv, a1, a2 string) Signature       { return Signature{Method: method, ArgTypes: [3]string{recv, a1, a2}} }

// Func1/2/3 are host operation implementations keyed by arity. They
// receive raw host representations and return one, or an error describing
// why the operation could not be carried out (e.g. division by zero),
// which the walker re-projects into the matching source exception class.
type Func1 func(recv interface{}) (interface{}, error)
type Func2 func(recv, arg interface{}) (interface{}, error)
type Func3 func(recv, arg1, arg2 interface{}) (interface{}, error)

// Tables bundles the three arity-keyed dispatch tables. A single Tables
// value is immutable after NewTables and may be shared across evaluator
// instances: the dispatch tables never mutate after initialization.
type Tables struct {
	arity1 map[Signature]Func1
	arity2 map[Signature]Func2
	arity3 map[Signature]Func3
}

// NewTables builds the standard table set (numeric, string, boolean).
func NewTables() *Tables {
	t := &Tables{
		arity1: make(map[Signature]Func1),
		arity2: make(map[Signature]Func2),
		arity3: make(map[Signature]Func3),
	}
	registerNumeric(t)
	registerStrings(t)
	registerBoolean(t)
	return t
}

func (t *Tables) register1(method, recv string, fn Func1) { t.arity1[sig1(method, recv)] = fn }
func (t *Tables) register2(method, recv, arg string, fn Func2) {
	t.arity2[sig2(method, recv, arg)] = fn
}
func (t *Tables) register3(method, recv, a1, a2 string, fn Func3) {
	t.arity3[sig3(method, recv, a1, a2)] = fn
}

// errNoBinding builds a descriptive error when a signature has no
// registered implementation; the walker turns this into an InternalError
// ("impossible built-in arity") since reaching built-in dispatch at all
// implies the frontend already resolved this call to a primitive op.
func errNoBinding(method string, argTypes ...string) error {
	return fmt.Errorf("builtins: no implementation for %s%v", method, argTypes)
}

// Lookup1/2/3 resolve a signature to its implementation.
func (t *Tables) Lookup1(method, recv string) (Func1, error) {
	fn, ok := t.arity1[sig1(method, recv)]
	if !ok {
		return nil, errNoBinding(method, recv)
	}
	return fn, nil
}

func (t *Tables) Lookup2(method, recv, arg string) (Func2, error) {
	fn, ok := t.arity2[sig2(method, recv, arg)]
	if !ok {
		return nil, errNoBinding(method, recv, arg)
	}
	return fn, nil
}

func (t *Tables) Lookup3(method, recv, a1, a2 string) (Func3, error) {
	fn, ok := t.arity3[sig3(method, recv, a1, a2)]
	if !ok {
		return nil, errNoBinding(method, recv, a1, a2)
	}
	return fn, nil
}
