package demo

import "github.com/cwbudde/irfold/internal/ir"

// buildDefaultArg constructs addWithDefault(5), where the function is
// declared as addWithDefault(a: Int, b: Int = a + 1): Int and the call
// site supplies only a. The default expression for b reads a, so it must
// be evaluated in the callee's own frame after a is already bound there,
// not in the caller's frame where a doesn't exist. Expected result:
// 5 + (5 + 1) == 11.
func buildDefaultArg() *Program {
	module := newModule()

	plus := primOp("plus", intType)

	paramA := ir.NewSymbol("a", ir.SymbolValueParameter, intType)
	paramB := ir.NewSymbol("b", ir.SymbolValueParameter, intType)
	retTarget := ir.NewSymbol("addWithDefault$return", ir.SymbolSynthetic, intType)

	defaultB := binCall(plus, &ir.GetValue{Symbol: paramA}, ir.NewConst(intType, int64(1)))

	fn := &ir.Function{
		Name: "addWithDefault",
		ValueParameters: []*ir.Param{
			{Symbol: paramA},
			{Symbol: paramB, DefaultValue: defaultB},
		},
		ReturnType:   intType,
		HasBody:      true,
		ReturnTarget: retTarget,
	}
	fn.Body = &ir.Return{
		Target: retTarget,
		Value:  binCall(plus, &ir.GetValue{Symbol: paramA}, &ir.GetValue{Symbol: paramB}),
	}

	call := ir.NewCall(intType, fn, nil, nil, []ir.Expression{ir.NewConst(intType, int64(5))})

	return &Program{
		Name:   "default-arg",
		Expr:   call,
		Module: module,
	}
}
