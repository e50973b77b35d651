package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes a decode failure.
type Kind string

const (
	KindInvalidBool Kind = "invalid_bool" // byte other than 0 or 1
	KindInvalidChar Kind = "invalid_char" // not a Unicode scalar value
	KindZeroValue   Kind = "zero_value"   // zero stored in a non-zero field
	KindMapping     Kind = "mapping"      // custom semantic mapping rejected the value
	KindOutOfRange  Kind = "out_of_range" // value outside the domain type's range
)

// Error is the decode error returned by fallible field accessors.
type Error struct {
	Value  any
	Cause  error
	Kind   Kind
	Field  string
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" at field ")
		b.WriteString(e.Field)
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

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when their
// kinds are equal, so callers can test against a bare &Error{Kind: ...}.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction for custom mappings.
type Builder struct {
	err Error
}

// New creates a new error builder.
func New(kind Kind) *Builder {
	return &Builder{err: Error{Kind: kind}}
}

// Field sets the name of the field being decoded.
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Value sets the offending wire value.
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the built-in semantic mappings.

// InvalidBool reports a boolean field holding a byte other than 0 or 1.
func InvalidBool(field string, got byte) *Error {
	return &Error{
		Kind:   KindInvalidBool,
		Field:  field,
		Value:  got,
		Detail: fmt.Sprintf("byte 0x%02x is not a valid boolean", got),
	}
}

// InvalidChar reports a character field holding a code point that is not a
// Unicode scalar value (surrogate or above U+10FFFF).
func InvalidChar(field string, code uint32) *Error {
	return &Error{
		Kind:   KindInvalidChar,
		Field:  field,
		Value:  code,
		Detail: fmt.Sprintf("0x%x is not a Unicode scalar value", code),
	}
}

// ZeroValue reports a zero stored in a field declared non-zero.
func ZeroValue(field string) *Error {
	return &Error{
		Kind:   KindZeroValue,
		Field:  field,
		Detail: "stored value is zero",
	}
}

// Mapping wraps a failure from a custom semantic mapping.
func Mapping(field string, value any, cause error) *Error {
	return &Error{
		Kind:  KindMapping,
		Field: field,
		Value: value,
		Cause: cause,
	}
}
