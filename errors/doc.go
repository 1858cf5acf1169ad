// Package errors provides the structured error type returned by protoenum.
//
// Every error carries the Phase it was raised in and a Kind. Construction of an
// enum codec fails with KindConfiguration or KindUnsupported; encode and decode
// calls fail with KindUnmappedValue, KindUnknownWireValue, KindTypeMismatch or
// KindInvalidData.
//
//	err := errors.New(errors.PhaseDecode, errors.KindUnknownWireValue).
//		Enum("example.Status").
//		Value(int64(42)).
//		Detail("no member has wire value %d", 42).
//		Build()
//
// Match a kind with the standard library:
//
//	if errors.Is(err, errors.ErrUnknownWireValue) { ... }
package errors
