// Package vector holds the operation data model for ALU test vectors and the
// two pure stages of the pipeline that operate on it.
//
// The binary encoder turns sample integers into fixed-width two's-complement
// bit strings. The validator projects an untyped dataset Record into a typed
// Operation, rejecting missing or ill-typed fields, sample arrays of unequal
// length, and values that do not fit the configured widths.
//
// All widths come from a run-scoped Config passed in explicitly.
package vector
