package irjson

import "testing"

func TestDecodeFixture_Const(t *testing.T) {
	f, err := DecodeFixture([]byte(`{"kind":"const","type":"Int","value":55}`))
	if err != nil {
		t.Fatalf("DecodeFixture: %v", err)
	}
	if f.Kind != "const" || f.Type != "Int" || f.Value.Int() != 55 {
		t.Fatalf("unexpected fixture: %+v", f)
	}
}

func TestDecodeFixture_Error(t *testing.T) {
	f, err := DecodeFixture([]byte(`{"kind":"error","type":"Int","message":"No enum constant Color.PURPLE"}`))
	if err != nil {
		t.Fatalf("DecodeFixture: %v", err)
	}
	if f.Kind != "error" || f.Message == "" {
		t.Fatalf("unexpected fixture: %+v", f)
	}
}

func TestDecodeFixture_RejectsUnknownKind(t *testing.T) {
	if _, err := DecodeFixture([]byte(`{"kind":"bogus"}`)); err == nil {
		t.Fatal("expected an error for an unrecognized fixture kind")
	}
}

func TestDecodeFixture_RejectsEmpty(t *testing.T) {
	if _, err := DecodeFixture(nil); err == nil {
		t.Fatal("expected an error for an empty document")
	}
}
