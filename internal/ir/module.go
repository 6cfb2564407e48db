package ir

// BuiltinClasses is the subset of the built-in class table a module
// fragment must expose.
type BuiltinClasses struct {
	Throwable          *Class
	ClassCastException *Class
	IllegalArgument    *Class
	NullPointer        *Class
	NoSuchElement      *Class
	IndexOutOfBounds   *Class
	ArithmeticError    *Class
	StackOverflow      *Class
	TimeOutError       *Class

	Array  *Class
	String *Class
	Range  *Class // base class shared by rangeTo-synthesized progressions

	UnsignedByte  *Class
	UnsignedShort *Class
	UnsignedInt   *Class
	UnsignedLong  *Class

	Long *Class
	Char *Class
	Regex *Class
}

// SourceLocation resolves a node to a formatted "File:line" pair, used when
// formatting stack frames.
type SourceLocation struct {
	File string
	Line int
}

// LineMapper is the queryable file/line mapping a module fragment exposes.
type LineMapper interface {
	Location(fn *Function, callIndex int) SourceLocation
}

// Module is the fully resolved module fragment an Expression is rooted in.
// It is produced upstream (frontend name resolution + type resolution);
// the evaluator treats it as read-only input.
type Module struct {
	Builtins BuiltinClasses
	Lines    LineMapper

	// FunctionQualifiedName formats the "<fq-name>" portion of a stack
	// frame line ("at <File>Kt.<fq-name>(<File>:<line>)").
	FunctionQualifiedName func(fn *Function) string
}
