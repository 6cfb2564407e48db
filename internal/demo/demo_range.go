package demo

import "github.com/cwbudde/irfold/internal/ir"

// buildRangeSum constructs (1..5).sum() == 15. rangeTo is special-cased in
// dispatchCall: it synthesizes a constructor call on the range's IR class
// from the two already-evaluated endpoints, so this demo gives the Range
// class a plain two-field constructor and an ordinary IR-bodied sum()
// accumulating with a While loop, exercising both the rangeTo carve-out
// and the loop/accumulator walker paths.
func buildRangeSum() *Program {
	module := newModule()
	rangeClass := module.Builtins.Range

	startField := ir.NewSymbol("start", ir.SymbolField, intType)
	endField := ir.NewSymbol("end", ir.SymbolField, intType)
	rangeClass.Fields = []*ir.Symbol{startField, endField}

	recv := ir.NewSymbol("this", ir.SymbolReceiver, ir.ClassType(rangeClass))
	startParam := ir.NewSymbol("start", ir.SymbolValueParameter, intType)
	endParam := ir.NewSymbol("end", ir.SymbolValueParameter, intType)
	ctor := &ir.Function{
		Name:            "<init>",
		Class:           rangeClass,
		Receiver:        recv,
		ValueParameters: []*ir.Param{{Symbol: startParam}, {Symbol: endParam}},
		HasBody:         true,
		Body: &ir.Block{Statements: []ir.Expression{
			&ir.SetField{Receiver: &ir.This{}, Field: startField, Value: &ir.GetValue{Symbol: startParam}},
			&ir.SetField{Receiver: &ir.This{}, Field: endField, Value: &ir.GetValue{Symbol: endParam}},
		}},
	}

	plus := primOp("plus", intType)
	lessOrEqual := primOp("lessOrEqual", boolType)

	accSym := ir.NewSymbol("acc", ir.SymbolLocal, intType)
	iSym := ir.NewSymbol("i", ir.SymbolLocal, intType)
	sumRetTarget := ir.NewSymbol("sum$return", ir.SymbolSynthetic, intType)

	loopBody := &ir.Block{
		Statements: []ir.Expression{
			&ir.SetValue{Symbol: accSym, Value: binCall(plus, &ir.GetValue{Symbol: accSym}, &ir.GetValue{Symbol: iSym})},
			&ir.SetValue{Symbol: iSym, Value: binCall(plus, &ir.GetValue{Symbol: iSym}, ir.NewConst(intType, int64(1)))},
		},
	}

	sum := &ir.Function{
		Name:         "sum",
		Class:        rangeClass,
		Receiver:     recv,
		ReturnType:   intType,
		HasBody:      true,
		ReturnTarget: sumRetTarget,
		Body: &ir.Block{Statements: []ir.Expression{
			&ir.VarDecl{Symbol: accSym, Initializer: ir.NewConst(intType, int64(0))},
			&ir.VarDecl{Symbol: iSym, Initializer: &ir.GetField{Receiver: &ir.This{}, Field: startField}},
			&ir.While{
				Condition: binCall(lessOrEqual, &ir.GetValue{Symbol: iSym}, &ir.GetField{Receiver: &ir.This{}, Field: endField}),
				Body:      loopBody,
			},
			&ir.Return{Target: sumRetTarget, Value: &ir.GetValue{Symbol: accSym}},
		}},
	}
	rangeClass.Functions = append(rangeClass.Functions, ctor, sum)

	rangeTo := &ir.Function{Name: "rangeTo", IsPrimitiveOp: true, ReturnType: ir.ClassType(rangeClass)}
	rangeExpr := binCall(rangeTo, ir.NewConst(intType, int64(1)), ir.NewConst(intType, int64(5)))

	return &Program{
		Name: "range-sum",
		Expr: ir.NewCall(intType, sum, rangeExpr, nil, nil),
		Module: module,
	}
}
