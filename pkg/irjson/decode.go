package irjson

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Fixture is the decoded shape of a golden-file expectation: either a
// computed const value or an expected error message fragment.
type Fixture struct {
	Kind    string // "const" or "error"
	Type    string
	Value   gjson.Result // use .String()/.Int()/.Float()/.Bool() per Type
	Message string       // substring match, only set when Kind == "error"
}

// DecodeFixture parses a fixture document produced by EncodeResult (or
// hand-written alongside a test) without requiring a matching Go struct
// per scenario, since fixtures span every primitive width plus error
// shapes.
func DecodeFixture(data []byte) (Fixture, error) {
	root := gjson.ParseBytes(data)
	if !root.Exists() {
		return Fixture{}, fmt.Errorf("irjson: empty or invalid fixture document")
	}

	f := Fixture{
		Kind: root.Get("kind").String(),
		Type: root.Get("type").String(),
	}
	switch f.Kind {
	case "const":
		f.Value = root.Get("value")
	case "error":
		f.Message = root.Get("message").String()
	default:
		return Fixture{}, fmt.Errorf("irjson: unrecognized fixture kind %q", f.Kind)
	}
	return f, nil
}
