package result

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/leonardoraele/result/pkg/fault"
)

// Ok wraps v into a new Success.
func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isOk:      true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err wraps v into a new Failure. v is normalized via fault.From, so a
// string, an error, or any recovered panic value all work.
func Err[T any](v any) Result[T] {
	return Result[T]{
		err:       fault.From(v),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// IfTruthy returns a Success wrapping v when v is truthy (non-zero,
// non-empty, non-nil, not false) and the empty Result otherwise. Pair with
// Or to supply a fallback:
//
//	r := result.IfTruthy(name).Or(result.Ok("anonymous"))
func IfTruthy[T any](v T) Result[T] {
	if isTruthy(reflect.ValueOf(&v).Elem()) {
		return Ok(v)
	}
	return Result[T]{}
}

func isTruthy(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	case reflect.Interface:
		return !rv.IsNil() && isTruthy(rv.Elem())
	default:
		return !rv.IsZero()
	}
}

// Attempt invokes fn immediately and captures its outcome: a normal return
// becomes a Success, a returned error or a panic becomes a Failure. Attempt
// itself never panics.
func Attempt[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if pv := recover(); pv != nil {
			res = Err[T](pv)
		}
	}()
	v, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// AttemptVoid is Attempt for functions that only report an error.
func AttemptVoid(fn func() error) Result[Unit] {
	return Attempt(func() (Unit, error) {
		return Unit{}, fn()
	}).Void()
}
