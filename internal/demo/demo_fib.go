package demo

import "github.com/cwbudde/irfold/internal/ir"

// buildFib constructs fib(10) == 55, a recursive top-level Int function,
// exercising the default-body call-dispatch path and the
// Return/ReturnTarget matching in invokeFunction.
func buildFib() *Program {
	module := newModule()

	less := primOp("less", boolType)
	plus := primOp("plus", intType)
	minus := primOp("minus", intType)

	paramN := ir.NewSymbol("n", ir.SymbolValueParameter, intType)
	retTarget := ir.NewSymbol("fib$return", ir.SymbolSynthetic, intType)

	fib := &ir.Function{
		Name:            "fib",
		ValueParameters: []*ir.Param{{Symbol: paramN}},
		ReturnType:      intType,
		HasBody:         true,
		ReturnTarget:    retTarget,
	}

	callFib := func(arg ir.Expression) *ir.Call {
		return ir.NewCall(intType, fib, nil, nil, []ir.Expression{arg})
	}

	nMinus1 := binCall(minus, &ir.GetValue{Symbol: paramN}, ir.NewConst(intType, int64(1)))
	nMinus2 := binCall(minus, &ir.GetValue{Symbol: paramN}, ir.NewConst(intType, int64(2)))

	body := &ir.Return{
		Target: retTarget,
		Value: &ir.When{
			Branches: []ir.WhenBranch{
				{
					Condition: binCall(less, &ir.GetValue{Symbol: paramN}, ir.NewConst(intType, int64(2))),
					Result:    &ir.GetValue{Symbol: paramN},
				},
				{
					Condition: nil,
					Result:    binCall(plus, callFib(nMinus1), callFib(nMinus2)),
				},
			},
		},
	}
	fib.Body = body

	return &Program{
		Name:   "fib",
		Expr:   callFib(ir.NewConst(intType, int64(10))),
		Module: module,
	}
}
