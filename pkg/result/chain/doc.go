// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of result.Result[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Try: compose result-returning or error-returning functions
// - Map/MapErr: transform the value or enrich the fault
// - Or: fall back when a chain is empty
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Every step short-circuits on a failed chain, so a pipeline reads top to
// bottom without branching at each step.
package chain
