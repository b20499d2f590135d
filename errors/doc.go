// Package errors provides structured error types for the actor-codec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (fault
// class). The five Kinds are the codec's complete fault surface:
// malformed_input, schema_mismatch, range_error, unknown_operation, and
// duplicate_operation. The Error type includes rich context: field path,
// byte offset, Go/wire type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBind, errors.KindSchemaMismatch).
//		Path("GetRequest", "key").
//		GoType("string").
//		WireType("bin").
//		Detail("key must be a string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.FieldMissing("GetRequest", "key")
//	err := errors.Truncated(offset, need, have)
//
// Callers should discriminate faults with the Kind predicates
// (IsMalformed, IsSchemaMismatch, IsRange, IsUnknownOperation,
// IsDuplicateOperation) so "bytes are corrupt" and "bytes are well-formed
// but the wrong shape" stay distinguishable across package boundaries.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
