package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // value to wire bytes
	PhaseDecode   Phase = "decode"   // wire bytes to value
	PhaseBind     Phase = "bind"     // value to schema type
	PhaseResolve  Phase = "resolve"  // operation lookup
	PhaseRegister Phase = "register" // catalog population
)

// Kind categorizes the error. The five kinds are the complete fault
// surface of the codec; callers discriminate on Kind, never on message
// text.
type Kind string

const (
	// KindMalformedInput means the bytes do not parse as any valid
	// Value: truncated buffer, unrecognized tag, invalid UTF-8.
	KindMalformedInput Kind = "malformed_input"
	// KindSchemaMismatch means a well-formed Value does not satisfy a
	// schema's required-field or field-type constraints.
	KindSchemaMismatch Kind = "schema_mismatch"
	// KindRangeError means a numeric field is present but outside its
	// declared width.
	KindRangeError Kind = "range_error"
	// KindUnknownOperation means the operation name is not registered.
	KindUnknownOperation Kind = "unknown_operation"
	// KindDuplicateOperation means a name was registered twice. This is
	// a startup-time catalog inconsistency and should abort init.
	KindDuplicateOperation Kind = "duplicate_operation"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WireType string
	Detail   string
	Path     []string
	Offset   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset > 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.GoType != "" || e.WireType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WireType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire type ")
			b.WriteString(e.WireType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wire type ")
			b.WriteString(e.WireType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireType sets the wire type name
func (b *Builder) WireType(t string) *Builder {
	b.err.WireType = t
	return b
}

// Offset sets the byte offset within the input buffer
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
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

// Convenience constructors for common error patterns

// Truncated creates a malformed-input error for a buffer that ends
// before a declared length is satisfied
func Truncated(offset, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedInput,
		Offset: offset,
		Detail: fmt.Sprintf("truncated input: need %d bytes, have %d", need, have),
	}
}

// UnknownTag creates a malformed-input error for an unrecognized tag byte
func UnknownTag(offset int, tag byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedInput,
		Offset: offset,
		Detail: fmt.Sprintf("unrecognized tag byte 0x%02x", tag),
		Value:  tag,
	}
}

// InvalidUTF8 creates a malformed-input error for a string payload that
// is not valid UTF-8
func InvalidUTF8(offset int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedInput,
		Offset: offset,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// FieldMissing creates a schema mismatch error for an absent required field
func FieldMissing(typeName, fieldName string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindSchemaMismatch,
		Path:   []string{typeName, fieldName},
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// TypeMismatch creates a schema mismatch error for a field whose wire
// kind does not match its declared kind
func TypeMismatch(path []string, goType, wireType string) *Error {
	return &Error{
		Phase:    PhaseBind,
		Kind:     KindSchemaMismatch,
		Path:     path,
		GoType:   goType,
		WireType: wireType,
	}
}

// OutOfRange creates a range error for a numeric field outside its
// declared width
func OutOfRange(path []string, value any, width string) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindRangeError,
		Path:   path,
		Value:  value,
		Detail: fmt.Sprintf("value %v does not fit %s", value, width),
	}
}

// UnknownOperation creates a resolve error for an unregistered name
func UnknownOperation(name string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindUnknownOperation,
		Detail: fmt.Sprintf("operation %q is not registered", name),
		Value:  name,
	}
}

// DuplicateOperation creates a registration error for a name that is
// already registered
func DuplicateOperation(name string) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindDuplicateOperation,
		Detail: fmt.Sprintf("operation %q is already registered", name),
		Value:  name,
	}
}

// Kind predicates let callers tell fault classes apart without reaching
// into the struct.

func is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// IsMalformed reports whether err is a malformed-input fault
func IsMalformed(err error) bool { return is(err, KindMalformedInput) }

// IsSchemaMismatch reports whether err is a schema mismatch fault
func IsSchemaMismatch(err error) bool { return is(err, KindSchemaMismatch) }

// IsRange reports whether err is a numeric range fault
func IsRange(err error) bool { return is(err, KindRangeError) }

// IsUnknownOperation reports whether err is an unknown-operation fault
func IsUnknownOperation(err error) bool { return is(err, KindUnknownOperation) }

// IsDuplicateOperation reports whether err is a duplicate-registration fault
func IsDuplicateOperation(err error) bool { return is(err, KindDuplicateOperation) }
