package demo

import "github.com/cwbudde/irfold/internal/ir"

// buildDataClassConcat constructs "x=" + Point(1, 2), expecting
// "x=Point(x=1, y=2)". Point overrides toString with an IR body built
// from StringConcat, exercising toStringValue's UserObject branch and the
// two-field constructor path.
func buildDataClassConcat() *Program {
	module := newModule()

	point := &ir.Class{Name: "Point"}
	xField := ir.NewSymbol("x", ir.SymbolField, intType)
	yField := ir.NewSymbol("y", ir.SymbolField, intType)
	point.Fields = []*ir.Symbol{xField, yField}

	recv := ir.NewSymbol("this", ir.SymbolReceiver, ir.ClassType(point))
	xParam := ir.NewSymbol("x", ir.SymbolValueParameter, intType)
	yParam := ir.NewSymbol("y", ir.SymbolValueParameter, intType)
	ctor := &ir.Function{
		Name:            "<init>",
		Class:           point,
		Receiver:        recv,
		ValueParameters: []*ir.Param{{Symbol: xParam}, {Symbol: yParam}},
		HasBody:         true,
		Body: &ir.Block{Statements: []ir.Expression{
			&ir.SetField{Receiver: &ir.This{}, Field: xField, Value: &ir.GetValue{Symbol: xParam}},
			&ir.SetField{Receiver: &ir.This{}, Field: yField, Value: &ir.GetValue{Symbol: yParam}},
		}},
	}

	toString := &ir.Function{
		Name:       "toString",
		Class:      point,
		Receiver:   recv,
		ReturnType: stringType,
		HasBody:    true,
		Body: ir.NewStringConcat([]ir.Expression{
			ir.NewConst(stringType, "Point(x="),
			&ir.GetField{Receiver: &ir.This{}, Field: xField},
			ir.NewConst(stringType, ", y="),
			&ir.GetField{Receiver: &ir.This{}, Field: yField},
			ir.NewConst(stringType, ")"),
		}),
	}
	point.Functions = []*ir.Function{ctor, toString}

	construct := ir.NewConstructorCall(ir.ClassType(point), point, ctor, []ir.Expression{
		ir.NewConst(intType, int64(1)), ir.NewConst(intType, int64(2)),
	})

	return &Program{
		Name:   "data-class-concat",
		Expr:   ir.NewStringConcat([]ir.Expression{ir.NewConst(stringType, "x="), construct}),
		Module: module,
	}
}
