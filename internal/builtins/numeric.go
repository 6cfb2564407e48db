package builtins

import (
	"fmt"
	"math"
)

// registerNumeric wires the arithmetic and comparison operators for the
// integer-family types (Byte/Short/Int/Long all widen to int64 at the
// host) and the floating types (Float/Double widen to float64). Numeric
// arithmetic uses host operators at the width dictated by the
// most-precise argument type.
func registerNumeric(t *Tables) {
	for _, kind := range []string{"Byte", "Short", "Int", "Long"} {
		registerIntOps(t, kind)
	}
	for _, kind := range []string{"Float", "Double"} {
		registerFloatOps(t, kind)
	}
}

func asInt(v interface{}) (int64, error) {
	i, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("builtins: expected int64, got %T", v)
	}
	return i, nil
}

func asFloat(v interface{}) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("builtins: expected float64, got %T", v)
	}
	return f, nil
}

func registerIntOps(t *Tables, kind string) {
	bin := func(name string, fn func(a, b int64) (int64, error)) {
		t.register2(name, kind, kind, func(recv, arg interface{}) (interface{}, error) {
			a, err := asInt(recv)
			if err != nil {
				return nil, err
			}
			b, err := asInt(arg)
			if err != nil {
				return nil, err
			}
			return fn(a, b)
		})
	}
	cmp := func(name string, fn func(a, b int64) bool) {
		t.register2(name, kind, kind, func(recv, arg interface{}) (interface{}, error) {
			a, err := asInt(recv)
			if err != nil {
				return nil, err
			}
			b, err := asInt(arg)
			if err != nil {
				return nil, err
			}
			return fn(a, b), nil
		})
	}

	bin("plus", func(a, b int64) (int64, error) { return a + b, nil })
	bin("minus", func(a, b int64) (int64, error) { return a - b, nil })
	bin("times", func(a, b int64) (int64, error) { return a * b, nil })
	bin("div", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	})
	bin("rem", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a % b, nil
	})
	cmp("less", func(a, b int64) bool { return a < b })
	cmp("lessOrEqual", func(a, b int64) bool { return a <= b })
	cmp("greater", func(a, b int64) bool { return a > b })
	cmp("greaterOrEqual", func(a, b int64) bool { return a >= b })
	cmp("equals", func(a, b int64) bool { return a == b })

	t.register1("unaryMinus", kind, func(recv interface{}) (interface{}, error) {
		a, err := asInt(recv)
		if err != nil {
			return nil, err
		}
		return -a, nil
	})
	t.register1("toString", kind, func(recv interface{}) (interface{}, error) {
		a, err := asInt(recv)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%d", a), nil
	})
	t.register1("hashCode", kind, func(recv interface{}) (interface{}, error) {
		a, err := asInt(recv)
		if err != nil {
			return nil, err
		}
		return int64(int32(a ^ (a >> 32))), nil
	})
}

func registerFloatOps(t *Tables, kind string) {
	bin := func(name string, fn func(a, b float64) float64) {
		t.register2(name, kind, kind, func(recv, arg interface{}) (interface{}, error) {
			a, err := asFloat(recv)
			if err != nil {
				return nil, err
			}
			b, err := asFloat(arg)
			if err != nil {
				return nil, err
			}
			return fn(a, b), nil
		})
	}
	cmp := func(name string, fn func(a, b float64) bool) {
		t.register2(name, kind, kind, func(recv, arg interface{}) (interface{}, error) {
			a, err := asFloat(recv)
			if err != nil {
				return nil, err
			}
			b, err := asFloat(arg)
			if err != nil {
				return nil, err
			}
			return fn(a, b), nil
		})
	}

	bin("plus", func(a, b float64) float64 { return a + b })
	bin("minus", func(a, b float64) float64 { return a - b })
	bin("times", func(a, b float64) float64 { return a * b })
	bin("div", func(a, b float64) float64 { return a / b })
	bin("rem", func(a, b float64) float64 { return math.Mod(a, b) })
	cmp("less", func(a, b float64) bool { return a < b })
	cmp("lessOrEqual", func(a, b float64) bool { return a <= b })
	cmp("greater", func(a, b float64) bool { return a > b })
	cmp("greaterOrEqual", func(a, b float64) bool { return a >= b })
	cmp("equals", func(a, b float64) bool { return a == b })

	t.register1("unaryMinus", kind, func(recv interface{}) (interface{}, error) {
		a, err := asFloat(recv)
		if err != nil {
			return nil, err
		}
		return -a, nil
	})
	t.register1("toString", kind, func(recv interface{}) (interface{}, error) {
		a, err := asFloat(recv)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%g", a), nil
	})
}
