// Package result provides a synchronous Result[T]: a value that is either
// a Success carrying a payload or a Failure carrying a *fault.Fault, used
// to replace panic-based control flow for expected failure paths.
//
// Key constructs:
// - Ok/OK/Err: construct a Result from a value, the unit value, or an error
// - IfTruthy + Or: optional construction with a fallback
// - Attempt/AttemptVoid: run a fallible function now, capturing panics
// - Wrap0/Wrap/Wrap2 (+Msg forms): defer a fallible function into a
//   Result-returning one
// - Map/Then/Flatten/Swap: transform or rebind the success value
// - MapErr: enrich the fault of a Failure as it propagates
// - Rescue/RescueWith/Raise/Raisef: unwrap with a default, a fallback, or
//   by panicking
//
// Operations on the "wrong" variant short-circuit: Map on a Failure and
// MapErr on a Success return the Result unchanged without invoking the
// callback.
//
// For fluent pipelines over a fixed value type, see package chain.
package result
