package ireval

import "fmt"

// InternalError is raised when the evaluator itself cannot proceed:
// unsupported IR node shape, missing intrinsic binding, missing method
// implementation, impossible built-in arity, or TimeOut. It is not
// catchable from evaluated code; InternalError implements error so the
// outermost Interpret call can format it directly into the
// "internal interpreter error" output text.
type InternalError struct {
	Reason   string // e.g. "unsupported IR node", "missing intrinsic binding"
	NodeKind string
	Function string
	Signature string
}

func (e *InternalError) Error() string {
	msg := e.Reason
	if e.Function != "" {
		msg += fmt.Sprintf(" in function %q", e.Function)
	}
	if e.NodeKind != "" {
		msg += fmt.Sprintf(" (node kind: %s)", e.NodeKind)
	}
	if e.Signature != "" {
		msg += fmt.Sprintf(" (signature: %s)", e.Signature)
	}
	return msg
}

func internalf(reason, nodeKind, function string, argv ...interface{}) *InternalError {
	if len(argv) > 0 {
		reason = fmt.Sprintf(reason, argv...)
	}
	return &InternalError{Reason: reason, NodeKind: nodeKind, Function: function}
}

// TimeOut is the internal error raised when the command counter bound is
// exceeded. It is still an InternalError: it surfaces directly as an IR
// error expression and is not catchable. Exceeding the stack-depth bound
// does not raise TimeOut; it throws a StackOverflowError source exception.
func timeOutError(reason string) *InternalError {
	return &InternalError{Reason: "TimeOut: " + reason}
}
