package demo

import "github.com/cwbudde/irfold/internal/ir"

// buildColorEnum wires a three-entry user enum class, modeled the way a
// frontend would lower `enum class Color { RED, GREEN, BLUE }`: a base
// class carrying the name/ordinal fields (standing in for kotlin.Enum)
// and a Color constructor whose first statement delegates to it, so the
// enum-entry rewrite has a super instance to attach.
func buildColorEnum() (color *ir.Class, enumValueOf *ir.Function) {
	enumBase := &ir.Class{Name: "Enum"}
	nameField := ir.NewSymbol("name", ir.SymbolField, stringType)
	ordinalField := ir.NewSymbol("ordinal", ir.SymbolField, intType)
	enumBase.Fields = []*ir.Symbol{nameField, ordinalField}

	baseRecv := ir.NewSymbol("this", ir.SymbolReceiver, ir.ClassType(enumBase))
	baseNameParam := ir.NewSymbol("name", ir.SymbolValueParameter, stringType)
	baseOrdParam := ir.NewSymbol("ordinal", ir.SymbolValueParameter, intType)
	baseCtor := &ir.Function{
		Name:            "<init>",
		Class:           enumBase,
		Receiver:        baseRecv,
		ValueParameters: []*ir.Param{{Symbol: baseNameParam}, {Symbol: baseOrdParam}},
		HasBody:         true,
		Body: &ir.Block{Statements: []ir.Expression{
			&ir.SetField{Receiver: &ir.This{}, Field: nameField, Value: &ir.GetValue{Symbol: baseNameParam}},
			&ir.SetField{Receiver: &ir.This{}, Field: ordinalField, Value: &ir.GetValue{Symbol: baseOrdParam}},
		}},
	}
	enumBase.Functions = []*ir.Function{baseCtor}

	color = &ir.Class{Name: "Color", Super: enumBase, IsEnum: true}
	colorRecv := ir.NewSymbol("this", ir.SymbolReceiver, ir.ClassType(color))
	colorNameParam := ir.NewSymbol("name", ir.SymbolValueParameter, stringType)
	colorOrdParam := ir.NewSymbol("ordinal", ir.SymbolValueParameter, intType)
	colorCtor := &ir.Function{
		Name:            "<init>",
		Class:           color,
		Receiver:        colorRecv,
		ValueParameters: []*ir.Param{{Symbol: colorNameParam}, {Symbol: colorOrdParam}},
		HasBody:         true,
		IsPrimaryConstructor: true,
		Body: &ir.Block{Statements: []ir.Expression{
			ir.NewConstructorCall(ir.ClassType(enumBase), enumBase, baseCtor, []ir.Expression{
				&ir.GetValue{Symbol: colorNameParam}, &ir.GetValue{Symbol: colorOrdParam},
			}),
		}},
	}
	color.Functions = []*ir.Function{colorCtor}

	entries := []string{"RED", "GREEN", "BLUE"}
	for i, name := range entries {
		entry := &ir.EnumEntry{
			Name:    name,
			Ordinal: i,
			InitializerCall: ir.NewConstructorCall(ir.ClassType(color), color, colorCtor, nil),
		}
		color.EnumEntries = append(color.EnumEntries, entry)
	}

	enumValueOf = &ir.Function{
		Name:          "enumValueOf",
		Class:         color,
		IntrinsicName: "kotlin.enumValueOf",
		ReturnType:    ir.ClassType(color),
	}

	return color, enumValueOf
}

// buildEnumOrdinal evaluates enumValueOf<Color>("RED").ordinal, exercising
// the intern-and-cache path plus the super-field GetField chain.
func buildEnumOrdinal() *Program {
	module := newModule()
	color, enumValueOf := buildColorEnum()

	ordinalField := color.Super.Fields[1]
	lookup := ir.NewCall(stringType, enumValueOf, nil, nil, []ir.Expression{ir.NewConst(stringType, "RED")})

	return &Program{
		Name:   "enum-ordinal",
		Expr:   ir.NewGetField(intType, lookup, ordinalField),
		Module: module,
	}
}

// buildEnumInvalid evaluates enumValueOf<Color>("PURPLE"), expecting an IR
// error node whose message names the missing constant and suggests the
// entry that follows it in natural sort order.
func buildEnumInvalid() *Program {
	module := newModule()
	_, enumValueOf := buildColorEnum()

	call := ir.NewCall(ir.ClassType(enumValueOf.Class), enumValueOf, nil, nil, []ir.Expression{ir.NewConst(stringType, "PURPLE")})

	return &Program{
		Name:   "enum-invalid",
		Expr:   call,
		Module: module,
	}
}
