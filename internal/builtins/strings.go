package builtins

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// registerStrings wires the String built-ins. Case-folding goes through
// golang.org/x/text/cases rather than strings.ToUpper/ToLower so that
// equalsIgnoreCase and the two case-conversion built-ins are Unicode-correct,
// generalizing the host string APIs past plain ASCII.
func registerStrings(t *Tables) {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	t.register2("plus", "String", "String", func(recv, arg interface{}) (interface{}, error) {
		a, err := asString(recv)
		if err != nil {
			return nil, err
		}
		b, err := asString(arg)
		if err != nil {
			return nil, err
		}
		return a + b, nil
	})

	t.register2("equals", "String", "String", func(recv, arg interface{}) (interface{}, error) {
		a, err := asString(recv)
		if err != nil {
			return nil, err
		}
		b, err := asString(arg)
		if err != nil {
			return nil, err
		}
		return a == b, nil
	})

	t.register2("equalsIgnoreCase", "String", "String", func(recv, arg interface{}) (interface{}, error) {
		a, err := asString(recv)
		if err != nil {
			return nil, err
		}
		b, err := asString(arg)
		if err != nil {
			return nil, err
		}
		return upper.String(a) == upper.String(b), nil
	})

	t.register2("less", "String", "String", func(recv, arg interface{}) (interface{}, error) {
		a, err := asString(recv)
		if err != nil {
			return nil, err
		}
		b, err := asString(arg)
		if err != nil {
			return nil, err
		}
		return a < b, nil
	})

	t.register1("length", "String", func(recv interface{}) (interface{}, error) {
		s, err := asString(recv)
		if err != nil {
			return nil, err
		}
		return int64(len([]rune(s))), nil
	})

	t.register1("uppercase", "String", func(recv interface{}) (interface{}, error) {
		s, err := asString(recv)
		if err != nil {
			return nil, err
		}
		return upper.String(s), nil
	})

	t.register1("lowercase", "String", func(recv interface{}) (interface{}, error) {
		s, err := asString(recv)
		if err != nil {
			return nil, err
		}
		return lower.String(s), nil
	})

	t.register2("get", "String", "Int", func(recv, arg interface{}) (interface{}, error) {
		s, err := asString(recv)
		if err != nil {
			return nil, err
		}
		idx, err := asInt(arg)
		if err != nil {
			return nil, err
		}
		runes := []rune(s)
		if idx < 0 || int(idx) >= len(runes) {
			return nil, fmt.Errorf("index out of bounds: %d", idx)
		}
		return runes[idx], nil
	})

	t.register1("toString", "String", func(recv interface{}) (interface{}, error) {
		return asString(recv)
	})
}

func asString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("builtins: expected string, got %T", v)
	}
	return s, nil
}

// Concat is used by the walker's StringConcat handling to stringify a
// chain of already-evaluated toString results without going back through
// the dispatch table per append.
func Concat(parts []string) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p)
	}
	return sb.String()
}
