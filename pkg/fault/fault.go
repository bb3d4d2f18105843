package fault

import "fmt"

// Fault is a structured error: a message plus an optional underlying cause.
// Faults are never modified after construction; enrichment operations return
// a new Fault layered over the old one.
type Fault struct {
	msg   string
	cause error
}

func New(msg string) *Fault {
	return &Fault{msg: msg}
}

func Newf(format string, args ...any) *Fault {
	return &Fault{msg: fmt.Sprintf(format, args...)}
}

// From normalizes an arbitrary value into a Fault. An existing *Fault passes
// through unchanged, an error becomes the cause of a new Fault (preserving
// errors.Is/As), a string becomes the message, and anything else is rendered
// with %v.
func From(v any) *Fault {
	switch e := v.(type) {
	case *Fault:
		if e != nil {
			return e
		}
		return New("unknown failure")
	case error:
		return &Fault{cause: e}
	case string:
		return New(e)
	case nil:
		return New("unknown failure")
	default:
		return Newf("%v", e)
	}
}

// Causes returns a new Fault that records msg as an explanation layered over
// f. The receiver is not modified.
func (f *Fault) Causes(msg string) *Fault {
	return &Fault{msg: msg, cause: f}
}

// Message returns the message of this link of the chain. A Fault built
// directly from an error has no message of its own and reports the cause's.
func (f *Fault) Message() string {
	if f.msg != "" {
		return f.msg
	}
	if f.cause != nil {
		return f.cause.Error()
	}
	return ""
}

// Cause returns the underlying error, or nil for a root Fault.
func (f *Fault) Cause() error {
	return f.cause
}

func (f *Fault) Unwrap() error {
	return f.cause
}

func (f *Fault) Error() string {
	if f.msg == "" {
		if f.cause != nil {
			return f.cause.Error()
		}
		return ""
	}
	if f.cause == nil {
		return f.msg
	}
	return f.msg + ": " + f.cause.Error()
}
