package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/leonardoraele/result/pkg/fault"
)

// Unit is the payload of a Result that carries no value.
type Unit struct{}

// Result is either a Success holding a value or a Failure holding a
// *fault.Fault. The zero value is the empty Result: neither variant, used
// to signal "absent" by IfTruthy and consumed by Or.
//
// Results are values; operations return new Results rather than mutating
// the receiver. Identity (Id, CreatedAt) survives operations that forward
// or retag an existing Result, such as MapErr and Void.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       *fault.Fault
	isOk      bool
	hasValue  bool
}

// shared by every call site; carries no distinguishing state
var unitOk = Ok(Unit{})

// OK returns the shared unit-valued Success.
func OK() Result[Unit] {
	return unitOk
}

// IsOk reports whether r is a Success.
func (r Result[T]) IsOk() bool {
	return r.isOk
}

// IsErr reports whether r is a Failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// IsEmpty reports whether r is neither variant (the zero Result).
func (r Result[T]) IsEmpty() bool {
	return !r.isOk && r.err == nil
}

// HasValue reports whether r carries a payload.
func (r Result[T]) HasValue() bool {
	return r.hasValue
}

// Value returns the payload of a Success and the zero value of T otherwise.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the fault of a Failure and nil otherwise.
func (r Result[T]) Err() *fault.Fault {
	return r.err
}

// Id returns the identity assigned to r at construction.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the creation time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Void discards the payload. A Success becomes the shared unit Success; a
// Failure keeps its fault and identity, retagged to Unit.
func (r Result[T]) Void() Result[Unit] {
	if r.isOk {
		return unitOk
	}
	return Result[Unit]{err: r.err, id: r.id, createdAt: r.createdAt}
}

// Or returns r unless it is empty, in which case alt is returned.
func (r Result[T]) Or(alt Result[T]) Result[T] {
	if r.IsEmpty() {
		return alt
	}
	return r
}
