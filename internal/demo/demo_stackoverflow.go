package demo

import "github.com/cwbudde/irfold/internal/ir"

// buildStackOverflow constructs an unconditionally self-recursive Int
// function and calls it, exercising invokeFunction's CallStack.Push
// failure path and its StackOverflowError formatting with at least one
// "at ..." frame line.
func buildStackOverflow() *Program {
	module := newModule()

	plus := primOp("plus", intType)
	paramN := ir.NewSymbol("n", ir.SymbolValueParameter, intType)
	retTarget := ir.NewSymbol("recurse$return", ir.SymbolSynthetic, intType)

	recurse := &ir.Function{
		Name:            "recurse",
		ValueParameters: []*ir.Param{{Symbol: paramN}},
		ReturnType:      intType,
		HasBody:         true,
		ReturnTarget:    retTarget,
	}
	nPlus1 := binCall(plus, &ir.GetValue{Symbol: paramN}, ir.NewConst(intType, int64(1)))
	recurse.Body = &ir.Return{
		Target: retTarget,
		Value:  ir.NewCall(intType, recurse, nil, nil, []ir.Expression{nPlus1}),
	}

	return &Program{
		Name:   "stack-overflow",
		Expr:   ir.NewCall(intType, recurse, nil, nil, []ir.Expression{ir.NewConst(intType, int64(0))}),
		Module: module,
	}
}
