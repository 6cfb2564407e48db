package builtins

import "fmt"

// registerBoolean wires Boolean operators. The walker has already
// eagerly evaluated both operands by the time dispatch reaches here, so
// these are plain (non-short-circuit) host operators; short-circuit
// semantics belong to the IR's when/branch lowering, not to this table.
func registerBoolean(t *Tables) {
	t.register2("and", "Boolean", "Boolean", func(recv, arg interface{}) (interface{}, error) {
		a, b, err := asBools(recv, arg)
		if err != nil {
			return nil, err
		}
		return a && b, nil
	})
	t.register2("or", "Boolean", "Boolean", func(recv, arg interface{}) (interface{}, error) {
		a, b, err := asBools(recv, arg)
		if err != nil {
			return nil, err
		}
		return a || b, nil
	})
	t.register2("xor", "Boolean", "Boolean", func(recv, arg interface{}) (interface{}, error) {
		a, b, err := asBools(recv, arg)
		if err != nil {
			return nil, err
		}
		return a != b, nil
	})
	t.register2("equals", "Boolean", "Boolean", func(recv, arg interface{}) (interface{}, error) {
		a, b, err := asBools(recv, arg)
		if err != nil {
			return nil, err
		}
		return a == b, nil
	})
	t.register1("not", "Boolean", func(recv interface{}) (interface{}, error) {
		a, ok := recv.(bool)
		if !ok {
			return nil, fmt.Errorf("builtins: expected bool, got %T", recv)
		}
		return !a, nil
	})
}

func asBools(a, b interface{}) (bool, bool, error) {
	av, ok := a.(bool)
	if !ok {
		return false, false, fmt.Errorf("builtins: expected bool, got %T", a)
	}
	bv, ok := b.(bool)
	if !ok {
		return false, false, fmt.Errorf("builtins: expected bool, got %T", b)
	}
	return av, bv, nil
}
