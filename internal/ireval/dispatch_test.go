package ireval

import (
	"testing"

	"github.com/cwbudde/irfold/internal/builtins"
	"github.com/cwbudde/irfold/internal/config"
	"github.com/cwbudde/irfold/internal/ir"
)

// An abstract method call dispatches to the runtime receiver's concrete
// override, not to the abstract declaration itself.
func TestDispatchCall_AbstractOverride(t *testing.T) {
	base := &ir.Class{Name: "Shape"}
	abstractArea := &ir.Function{Name: "area", Class: base, Modality: ir.ModalityAbstract, ReturnType: ir.PrimitiveType(ir.KindInt)}
	base.Functions = []*ir.Function{abstractArea}

	square := &ir.Class{Name: "Square", Super: base}
	squareRecv := ir.NewSymbol("this", ir.SymbolReceiver, ir.ClassType(square))
	concreteArea := &ir.Function{
		Name: "area", Class: square, Receiver: squareRecv, HasBody: true,
		ReturnType: ir.PrimitiveType(ir.KindInt),
		Body:       ir.NewConst(ir.PrimitiveType(ir.KindInt), int64(9)),
	}
	square.Functions = []*ir.Function{concreteArea}

	module := &ir.Module{Builtins: ir.BuiltinClasses{Throwable: &ir.Class{Name: "Throwable"}, NullPointer: &ir.Class{Name: "NullPointerException"}}}
	in := NewInterpreter(module, config.DefaultBounds(), builtins.NewTables(), nil)
	in.reset()

	obj := NewUserObject(square)
	res := in.dispatchCall(abstractArea, obj, nil, nil)
	p, ok := res.Value.(Primitive)
	if !ok || p.Raw != int64(9) {
		t.Fatalf("expected area() == 9, got %#v (label %v)", res.Value, res.Label)
	}
}

// A fake-override call walks OverriddenSymbols to the nearest ancestor
// with a real body when the receiver's own class supplies no override.
func TestDispatchCall_FakeOverrideWalk(t *testing.T) {
	grandparent := &ir.Class{Name: "Animal"}
	recv := ir.NewSymbol("this", ir.SymbolReceiver, ir.ClassType(grandparent))
	speak := &ir.Function{
		Name: "speak", Class: grandparent, Receiver: recv, HasBody: true,
		ReturnType: ir.PrimitiveType(ir.KindString),
		Body:       ir.NewConst(ir.PrimitiveType(ir.KindString), "..."),
	}
	grandparent.Functions = []*ir.Function{speak}

	parent := &ir.Class{Name: "Mammal", Super: grandparent}
	child := &ir.Class{Name: "Dog", Super: parent}

	fakeOverride := &ir.Function{
		Name: "speak", Class: child, Modality: ir.ModalityFakeOverride,
		ReturnType:        ir.PrimitiveType(ir.KindString),
		OverriddenSymbols: []*ir.Function{speak},
	}

	module := &ir.Module{Builtins: ir.BuiltinClasses{Throwable: &ir.Class{Name: "Throwable"}, NullPointer: &ir.Class{Name: "NullPointerException"}}}
	in := NewInterpreter(module, config.DefaultBounds(), builtins.NewTables(), nil)
	in.reset()

	obj := NewUserObject(child)
	res := in.dispatchCall(fakeOverride, obj, nil, nil)
	p, ok := res.Value.(Primitive)
	if !ok || p.Raw != "..." {
		t.Fatalf("expected speak() == \"...\", got %#v (label %v)", res.Value, res.Label)
	}
}
