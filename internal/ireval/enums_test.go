package ireval

import (
	"testing"

	"github.com/cwbudde/irfold/internal/builtins"
	"github.com/cwbudde/irfold/internal/config"
	"github.com/cwbudde/irfold/internal/ir"
)

// buildTinyEnum is a minimal one-entry enum class whose constructor sets
// no fields, just enough to exercise resolveEnumEntry's intern-cache path
// without the full Color fixture from package demo.
func buildTinyEnum() (*ir.Module, *ir.Class, *ir.EnumEntry) {
	class := &ir.Class{Name: "Tiny", IsEnum: true}
	recv := ir.NewSymbol("this", ir.SymbolReceiver, ir.ClassType(class))
	nameParam := ir.NewSymbol("name", ir.SymbolValueParameter, ir.PrimitiveType(ir.KindString))
	ordParam := ir.NewSymbol("ordinal", ir.SymbolValueParameter, ir.PrimitiveType(ir.KindInt))
	ctor := &ir.Function{
		Name:            "<init>",
		Class:           class,
		Receiver:        recv,
		ValueParameters: []*ir.Param{{Symbol: nameParam}, {Symbol: ordParam}},
		HasBody:         true,
		Body:            &ir.Block{Statements: []ir.Expression{&ir.This{}}},
	}
	class.Functions = []*ir.Function{ctor}
	entry := &ir.EnumEntry{
		Name:            "ONLY",
		Ordinal:         0,
		InitializerCall: ir.NewConstructorCall(ir.ClassType(class), class, ctor, nil),
	}
	class.EnumEntries = []*ir.EnumEntry{entry}

	module := &ir.Module{
		Builtins: ir.BuiltinClasses{Throwable: &ir.Class{Name: "Throwable"}},
		Lines:    testLines{},
		FunctionQualifiedName: func(fn *ir.Function) string { return fn.Name },
	}
	return module, class, entry
}

type testLines struct{}

func (testLines) Location(fn *ir.Function, callIndex int) ir.SourceLocation {
	return ir.SourceLocation{File: "Test", Line: 1}
}

// Two lookups of the same enum entry within one evaluation intern to the
// identical *UserObject.
func TestResolveEnumEntry_InternsIdentity(t *testing.T) {
	module, class, entry := buildTinyEnum()
	in := NewInterpreter(module, config.DefaultBounds(), builtins.NewTables(), nil)
	in.reset()

	frame := NewFullFrame(nil, nil)
	first := in.resolveEnumEntry(class, entry, frame)
	second := in.resolveEnumEntry(class, entry, frame)

	firstObj, ok := first.Value.(*UserObject)
	if !ok {
		t.Fatalf("expected *UserObject, got %T", first.Value)
	}
	secondObj, ok := second.Value.(*UserObject)
	if !ok {
		t.Fatalf("expected *UserObject, got %T", second.Value)
	}
	if firstObj != secondObj {
		t.Fatalf("expected interned identity, got distinct objects %p != %p", firstObj, secondObj)
	}
}
