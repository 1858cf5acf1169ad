package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where the error occurred
type Phase string

const (
	PhaseCompile Phase = "compile" // enum type construction
	PhaseEncode  Phase = "encode"  // Go value to wire
	PhaseDecode  Phase = "decode"  // wire to Go value
)

// Kind categorizes the error
type Kind string

const (
	KindConfiguration    Kind = "configuration"
	KindUnsupported      Kind = "unsupported"
	KindUnknownWireValue Kind = "unknown_wire_value"
	KindUnmappedValue    Kind = "unmapped_value"
	KindTypeMismatch     Kind = "type_mismatch"
	KindInvalidData      Kind = "invalid_data"
)

// Sentinels for errors.Is. They match any phase.
var (
	ErrConfiguration    = &Error{Kind: KindConfiguration}
	ErrUnsupported      = &Error{Kind: KindUnsupported}
	ErrUnknownWireValue = &Error{Kind: KindUnknownWireValue}
	ErrUnmappedValue    = &Error{Kind: KindUnmappedValue}
	ErrTypeMismatch     = &Error{Kind: KindTypeMismatch}
	ErrInvalidData      = &Error{Kind: KindInvalidData}
)

// Error is the structured error type used throughout protoenum
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Enum   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Enum != "" {
		b.WriteString(" in ")
		b.WriteString(e.Enum)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same kind, and the same phase when the
// target sets one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Enum sets the enum type name
func (b *Builder) Enum(name string) *Builder {
	b.err.Enum = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// DuplicateWireValue reports two members sharing a wire value
func DuplicateWireValue(enum string, wire int32) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindConfiguration,
		Enum:   enum,
		Value:  wire,
		Detail: fmt.Sprintf("multiple enums with wire-value %d", wire),
	}
}

// DuplicateDeclaredValue reports one declared value mapped to two wire values
func DuplicateDeclaredValue(enum string, declared any) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindConfiguration,
		Enum:   enum,
		Value:  declared,
		Detail: fmt.Sprintf("multiple enums with deserialized-value %v", declared),
	}
}

// UnsupportedRepresentation reports a storage kind outside the eight integer kinds
func UnsupportedRepresentation(enum string, storage string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindUnsupported,
		Enum:   enum,
		Value:  storage,
		Detail: fmt.Sprintf("storage kind %s is not a supported enum representation", storage),
	}
}

// UnknownWireValue reports a decoded integer that matches no member
func UnknownWireValue(enum string, wire int64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnknownWireValue,
		Enum:   enum,
		Value:  wire,
		Detail: fmt.Sprintf("no member has wire value %d", wire),
	}
}

// UnmappedValue reports a value that has no wire mapping
func UnmappedValue(enum string, value any) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnmappedValue,
		Enum:   enum,
		Value:  value,
		Detail: fmt.Sprintf("no wire value for %v", value),
	}
}

// TypeMismatch reports a value of the wrong Go type
func TypeMismatch(phase Phase, enum string, got string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Enum:   enum,
		Value:  got,
		Detail: fmt.Sprintf("unexpected value of type %s", got),
	}
}

// InvalidData wraps a transport failure
func InvalidData(phase Phase, enum string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Enum:   enum,
		Detail: "malformed wire data",
		Cause:  cause,
	}
}
