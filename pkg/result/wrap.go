package result

import "github.com/leonardoraele/result/pkg/fault"

// Wrap0 turns a no-argument fallible function into one that reports
// through a Result. fn is not invoked until the returned function is
// called; the returned function never panics.
func Wrap0[Out any](fn func() (Out, error)) func() Result[Out] {
	return func() Result[Out] {
		return Attempt(fn)
	}
}

// Wrap is Wrap0 for one-argument functions.
func Wrap[In, Out any](fn func(In) (Out, error)) func(In) Result[Out] {
	return func(in In) Result[Out] {
		return Attempt(func() (Out, error) {
			return fn(in)
		})
	}
}

// Wrap2 is Wrap0 for two-argument functions.
func Wrap2[In1, In2, Out any](fn func(In1, In2) (Out, error)) func(In1, In2) Result[Out] {
	return func(in1 In1, in2 In2) Result[Out] {
		return Attempt(func() (Out, error) {
			return fn(in1, in2)
		})
	}
}

// Wrap0Msg behaves like Wrap0 and additionally layers msg over the fault
// of any failed invocation.
func Wrap0Msg[Out any](msg string, fn func() (Out, error)) func() Result[Out] {
	wrapped := Wrap0(fn)
	return func() Result[Out] {
		return wrapped().MapErr(causedBy(msg))
	}
}

// WrapMsg behaves like Wrap and additionally layers msg over the fault of
// any failed invocation.
func WrapMsg[In, Out any](msg string, fn func(In) (Out, error)) func(In) Result[Out] {
	wrapped := Wrap(fn)
	return func(in In) Result[Out] {
		return wrapped(in).MapErr(causedBy(msg))
	}
}

// Wrap2Msg behaves like Wrap2 and additionally layers msg over the fault
// of any failed invocation.
func Wrap2Msg[In1, In2, Out any](msg string, fn func(In1, In2) (Out, error)) func(In1, In2) Result[Out] {
	wrapped := Wrap2(fn)
	return func(in1 In1, in2 In2) Result[Out] {
		return wrapped(in1, in2).MapErr(causedBy(msg))
	}
}

func causedBy(msg string) func(*fault.Fault) *fault.Fault {
	return func(f *fault.Fault) *fault.Fault {
		return f.Causes(msg)
	}
}
