package ireval

import (
	"fmt"
	"strings"

	"github.com/cwbudde/irfold/internal/ir"
)

// newException builds a fresh Exception, freezing the current call stack
// as its trace: exception stack traces are captured at throw time and
// are thereafter immutable.
func (in *Interpreter) newException(class *ir.Class, message string, cause *Exception) *Exception {
	return &Exception{
		Class:   class,
		Message: message,
		Cause:   cause,
		Trace:   in.callStack.Snapshot(),
	}
}

// throw raises a fresh exception of the given class as an LException
// ExecutionResult.
func (in *Interpreter) throw(class *ir.Class, format string, args ...interface{}) ExecutionResult {
	return exceptionResult(in.newException(class, fmt.Sprintf(format, args...), nil))
}

// exceptionFromObject converts a constructed Throwable-derived UserObject
// into the Exception value variant, reading the conventional "message"
// and "cause" fields off the object (walking its super-chain, since a
// user exception class's fields live wherever the constructor attached
// them) and freezing the current call stack as the trace.
func (in *Interpreter) exceptionFromObject(obj *UserObject) *Exception {
	message := ""
	var cause *Exception

	for cur := obj; cur != nil; cur = cur.SuperInstance {
		for sym, val := range cur.Fields {
			switch sym.Name {
			case "message":
				if p, ok := val.(Primitive); ok {
					if s, ok := p.Raw.(string); ok {
						message = s
					}
				}
			case "cause":
				switch c := val.(type) {
				case *Exception:
					cause = c
				case *UserObject:
					if c != nil {
						cause = in.exceptionFromObject(c)
					}
				}
			}
		}
	}

	return in.newException(obj.Class, message, cause)
}

// matchesCatch reports whether exc is a subtype of the declared catch
// type: a catch matches when the thrown Exception's IR class is a
// subtype of the catch parameter's declared type.
func matchesCatch(exc *Exception, catchType *ir.Class) bool {
	return exc.Class.IsSubtypeOf(catchType)
}

// FormatDescription renders the exception description: class name and
// message, then its frame lines, then each cause in the same shape after
// a "Caused by: " prefix, with a leading newline as the output contract
// requires.
func FormatDescription(exc *Exception) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	writeExceptionChain(&sb, exc)
	return sb.String()
}

func writeExceptionChain(sb *strings.Builder, exc *Exception) {
	fmt.Fprintf(sb, "%s: %s\n", exc.Class.Name, exc.Message)
	for _, frame := range exc.Trace {
		sb.WriteString("\t")
		sb.WriteString(frame)
		sb.WriteByte('\n')
	}
	if exc.Cause != nil {
		sb.WriteString("Caused by: ")
		writeExceptionChain(sb, exc.Cause)
	}
}

// FormatInternalError renders an internal interpreter error into the
// "text of an internal interpreter error" output shape.
func FormatInternalError(err *InternalError) string {
	return "\nInternal interpreter error: " + err.Error()
}

// reprojectHostPanic maps a recovered host panic (an arithmetic fault or
// a host stack overflow) onto the nearest known IR exception class by
// simple-name match, falling back to Throwable. This is the single
// interception point at the evaluator's top recursion level; it is never
// invoked for InternalError values, which propagate as Go errors instead.
func (in *Interpreter) reprojectHostPanic(recovered interface{}) *Exception {
	msg := fmt.Sprintf("%v", recovered)
	lower := strings.ToLower(msg)

	class := in.module.Builtins.Throwable
	switch {
	case strings.Contains(lower, "divide by zero"), strings.Contains(lower, "integer overflow"):
		if in.module.Builtins.ArithmeticError != nil {
			class = in.module.Builtins.ArithmeticError
		}
	case strings.Contains(lower, "stack overflow") || strings.Contains(lower, "goroutine stack exceeds"):
		if in.module.Builtins.StackOverflow != nil {
			class = in.module.Builtins.StackOverflow
		}
	case strings.Contains(lower, "index out of range"):
		if in.module.Builtins.IndexOutOfBounds != nil {
			class = in.module.Builtins.IndexOutOfBounds
		}
	case strings.Contains(lower, "nil pointer dereference") || strings.Contains(lower, "invalid memory address"):
		if in.module.Builtins.NullPointer != nil {
			class = in.module.Builtins.NullPointer
		}
	}
	return in.newException(class, msg, nil)
}
