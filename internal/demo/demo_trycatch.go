package demo

import "github.com/cwbudde/irfold/internal/ir"

// buildTryCatchFinally constructs try { 1 / 0 } catch (ArithmeticException)
// { -1 } finally { 42 }, expecting the evaluator to settle on -1: the
// catch clause's result is the try expression's value, and the finally
// clause runs purely for effect without overriding it. This pins the
// finally-precedence decision recorded in DESIGN.md.
func buildTryCatchFinally() *Program {
	module := newModule()

	div := primOp("div", intType)
	tryExpr := binCall(div, ir.NewConst(intType, int64(1)), ir.NewConst(intType, int64(0)))

	excParam := ir.NewSymbol("e", ir.SymbolLocal, ir.ClassType(module.Builtins.ArithmeticError))
	catch := ir.Catch{
		Parameter: excParam,
		Type:      module.Builtins.ArithmeticError,
		Body:      ir.NewConst(intType, int64(-1)),
	}

	tcf := ir.NewTryCatchFinally(intType, tryExpr, []ir.Catch{catch}, ir.NewConst(intType, int64(42)))

	return &Program{
		Name:   "try-catch-finally",
		Expr:   tcf,
		Module: module,
	}
}
