package result

import (
	"errors"
	"fmt"

	"github.com/leonardoraele/result/pkg/fault"
)

// Map applies fn to the value of a Success and wraps the return value into
// a new Success. A panic inside fn is captured into a Failure; Map never
// panics. On a Failure fn is not invoked and the failure is forwarded
// unchanged (same fault, same identity).
func Map[In, Out any](r Result[In], fn func(In) Out) (res Result[Out]) {
	if !r.isOk {
		return retag[In, Out](r)
	}
	defer func() {
		if pv := recover(); pv != nil {
			res = Err[Out](pv)
		}
	}()
	return Ok(fn(r.value))
}

// Then applies fn to the value of a Success and adopts the Result it
// returns directly, so chained steps never nest. Short-circuiting and
// panic capture behave as in Map.
func Then[In, Out any](r Result[In], fn func(In) Result[Out]) (res Result[Out]) {
	if !r.isOk {
		return retag[In, Out](r)
	}
	defer func() {
		if pv := recover(); pv != nil {
			res = Err[Out](pv)
		}
	}()
	return fn(r.value)
}

// Flatten collapses a nested Result by one level: the inner Result of a
// Success is returned as-is, a Failure is forwarded unchanged.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.isOk {
		return r.value
	}
	return retag[Result[T], T](r)
}

// Swap turns a Failure into a Success carrying its fault as the payload.
// A Success has no fault to carry, so it swaps to the empty Result.
func Swap[T any](r Result[T]) Result[*fault.Fault] {
	if r.err != nil {
		return Result[*fault.Fault]{
			value:     r.err,
			isOk:      true,
			hasValue:  true,
			id:        r.id,
			createdAt: r.createdAt,
		}
	}
	return Result[*fault.Fault]{}
}

// retag forwards a non-success Result across a type change, keeping its
// fault and identity.
func retag[In, Out any](r Result[In]) Result[Out] {
	return Result[Out]{err: r.err, id: r.id, createdAt: r.createdAt}
}

// Map applies fn to the value of a Success; a panic inside fn becomes a
// Failure. On a Failure the receiver is returned unchanged and fn is not
// invoked. For transformations that change the value type, use the
// package-level Map.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	return Map(r, fn)
}

// MapErr replaces the fault of a Failure with fn's return value, keeping
// the Result's identity. A nil return keeps the current fault, since a
// Failure must always carry one. On a Success the receiver is returned
// unchanged and fn is not invoked.
func (r Result[T]) MapErr(fn func(*fault.Fault) *fault.Fault) Result[T] {
	if r.err == nil {
		return r
	}
	if f := fn(r.err); f != nil {
		r.err = f
	}
	return r
}

// Rescue returns the value of a Success and the zero value of T otherwise.
// It never panics.
func (r Result[T]) Rescue() T {
	return r.value
}

// RescueWith returns the value of a Success; for a Failure it returns
// onerror(fault) instead. A panic inside onerror is normalized before it
// propagates: an existing *fault.Fault is re-raised as-is, anything else
// is joined with the original fault into a new Fault and raised, so both
// errors stay inspectable.
func (r Result[T]) RescueWith(onerror func(*fault.Fault) T) T {
	if r.err == nil {
		return r.value
	}
	defer func() {
		if pv := recover(); pv != nil {
			if f, ok := pv.(*fault.Fault); ok {
				panic(f)
			}
			panic(fault.From(errors.Join(r.err, fault.From(pv))))
		}
	}()
	return onerror(r.err)
}

// Raise returns the value of a Success and panics with the fault of a
// Failure. It is the one sanctioned bridge from a Failure back into panic
// propagation.
func (r Result[T]) Raise() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Raisef behaves like Raise, but first layers the formatted message over
// the fault via Causes, so the panic carries the annotated chain.
func (r Result[T]) Raisef(format string, args ...any) T {
	if r.err != nil {
		panic(r.err.Causes(fmt.Sprintf(format, args...)))
	}
	return r.value
}
