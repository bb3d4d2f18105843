package chain

import (
	"github.com/leonardoraele/result/pkg/fault"
	"github.com/leonardoraele/result/pkg/result"
)

// Chain wraps a result.Result to enable fluent chaining over a fixed value
// type.
type Chain[T any] struct {
	res result.Result[T]
}

// Start creates a new chain from a result.Result.
func Start[T any](r result.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start(result.Ok(v))
}

// Result returns the underlying result.Result.
func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then composes a function that already returns a result.Result.
func (c Chain[T]) Then(onSuccess func(t T) result.Result[T]) Chain[T] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T]{res: result.Then(c.res, onSuccess)}
}

// Try composes a function that returns (T, error), converting an error or
// a panic into a failure.
func (c Chain[T]) Try(try func(t T) (T, error)) Chain[T] {
	if !c.res.IsOk() {
		return c
	}
	v := c.res.Value()
	return Chain[T]{res: result.Attempt(func() (T, error) {
		return try(v)
	})}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: c.res.Map(onSuccess)}
}

// MapErr enriches the fault of a failed chain without changing variants.
func (c Chain[T]) MapErr(onFailure func(f *fault.Fault) *fault.Fault) Chain[T] {
	return Chain[T]{res: c.res.MapErr(onFailure)}
}

// Or returns c unless its result is empty, in which case alternative is
// returned.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return Chain[T]{res: c.res.Or(alternative.res)}
}

// Ensure triggers side effects for success or failure without changing the
// result. Nil handlers are skipped.
func (c Chain[T]) Ensure(onSuccess func(t T), onFailure func(f *fault.Fault)) Chain[T] {
	if c.res.IsErr() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}
	if c.res.IsOk() && onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value. An empty result collapses
// through onSuccess with the zero value of T. For a final value of a
// different type, use the package-level Finally.
func (c Chain[T]) Finally(onSuccess func(t T) T, onFailure func(f *fault.Fault) T) T {
	return Finally(c, onSuccess, onFailure)
}

// Then chains a function that switches the chain to a new value type.
func Then[T, U any](c Chain[T], onSuccess func(t T) result.Result[U]) Chain[U] {
	return Chain[U]{res: result.Then(c.res, onSuccess)}
}

// Map chains a pure transformation to a new value type.
func Map[T, U any](c Chain[T], onSuccess func(t T) U) Chain[U] {
	return Chain[U]{res: result.Map(c.res, onSuccess)}
}

// Finally collapses a chain into a final value of any type.
func Finally[T, U any](c Chain[T], onSuccess func(t T) U, onFailure func(f *fault.Fault) U) U {
	if c.res.IsErr() {
		return onFailure(c.res.Err())
	}
	return onSuccess(c.res.Value())
}
