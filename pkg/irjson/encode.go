// Package irjson renders an evaluator result (an IR constant or error
// expression) as JSON, and reads back the compact fixture format that
// EncodeResult produces.
package irjson

import (
	"fmt"

	"github.com/cwbudde/irfold/internal/ir"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// EncodeResult renders expr (the return of ireval.Interpreter.Interpret)
// as a JSON object: {"kind":"const","type":...,"value":...} or
// {"kind":"error","type":...,"message":...}. pretty selects indented
// output for terminal/file display; compact output is used for piping.
func EncodeResult(expr ir.Expression, prettyPrint bool) (string, error) {
	var (
		out string
		err error
	)
	switch n := expr.(type) {
	case *ir.Const:
		out, err = sjson.Set("{}", "kind", "const")
		if err != nil {
			return "", err
		}
		out, err = sjson.Set(out, "type", n.StaticType().Name())
		if err != nil {
			return "", err
		}
		out, err = sjson.Set(out, "value", jsonableValue(n.Value))
		if err != nil {
			return "", err
		}
	case *ir.ErrorExpr:
		out, err = sjson.Set("{}", "kind", "error")
		if err != nil {
			return "", err
		}
		out, err = sjson.Set(out, "type", n.StaticType().Name())
		if err != nil {
			return "", err
		}
		out, err = sjson.Set(out, "message", n.Message)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("irjson: %T is not an evaluator result", expr)
	}

	if prettyPrint {
		return string(pretty.Pretty([]byte(out))), nil
	}
	return out, nil
}

// jsonableValue coerces a Const's raw value to something sjson.Set can
// serialize directly: numeric widths pass through as-is, a rune (Char)
// becomes its one-character string form, and nil stays nil.
func jsonableValue(raw interface{}) interface{} {
	switch v := raw.(type) {
	case rune:
		return string(v)
	default:
		return v
	}
}
