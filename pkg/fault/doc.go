// Package fault provides the structured error type stored by failed Results.
//
// A Fault carries a human-readable message and an optional underlying cause,
// so that repeated annotation keeps the full failure chain inspectable.
//
// Key operations:
// - New/Newf: construct a Fault from a message
// - From: normalize any recovered or returned value into a Fault
// - Causes: layer an explanatory message over an existing Fault
// - Message/Cause: inspect a single link of the chain
//
// Fault implements error and Unwrap, so errors.Is and errors.As walk the
// chain as usual.
package fault
