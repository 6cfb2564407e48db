package irjson

import (
	"testing"

	"github.com/cwbudde/irfold/internal/ir"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	snaps.TestMain(m)
}

func TestEncodeResult_Const(t *testing.T) {
	intType := ir.PrimitiveType(ir.KindInt)
	out, err := EncodeResult(ir.NewConst(intType, int64(55)), false)
	if err != nil {
		t.Fatalf("EncodeResult: %v", err)
	}
	snaps.MatchJSON(t, out)
}

func TestEncodeResult_Error(t *testing.T) {
	intType := ir.PrimitiveType(ir.KindInt)
	out, err := EncodeResult(ir.NewErrorExpr(intType, "\nArithmeticException: / by zero\n"), true)
	if err != nil {
		t.Fatalf("EncodeResult: %v", err)
	}
	snaps.MatchJSON(t, out)
}

func TestEncodeResult_CharValue(t *testing.T) {
	charType := ir.PrimitiveType(ir.KindChar)
	out, err := EncodeResult(ir.NewConst(charType, 'Z'), false)
	if err != nil {
		t.Fatalf("EncodeResult: %v", err)
	}
	snaps.MatchJSON(t, out)
}

func TestEncodeResult_RejectsNonResultNode(t *testing.T) {
	if _, err := EncodeResult(&ir.GetValue{}, false); err == nil {
		t.Fatal("expected an error for a non-result IR node")
	}
}
