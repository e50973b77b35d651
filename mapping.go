package bytelayout

import (
	"fmt"

	"github.com/bytelayout/bytelayout/errors"
	"github.com/bytelayout/bytelayout/internal/codec"
)

// Wire is the set of primitive Go types a custom semantic mapping can use
// as its storage representation.
type Wire interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// Mapping converts between a field's wire primitive and a richer domain
// type. Decode may reject bit patterns that do not represent a valid domain
// value; Encode is total, because the domain type's constructor already
// enforces validity. A mapping that can fail to encode is out of contract.
//
// Declare the field with Builder.Mapped, passing whether Decode can fail,
// then access it through ReadMapped and WriteMapped:
//
//	type Celsius float64
//
//	type celsiusMapping struct{}
//
//	func (celsiusMapping) Decode(v float64) (Celsius, error) { return Celsius(v), nil }
//	func (celsiusMapping) Encode(c Celsius) float64          { return float64(c) }
//
//	layout := bytelayout.NewBuilder("reading", bytelayout.BigEndian).
//		Mapped("temperature", bytelayout.KindF64, false).
//		MustBuild()
//
//	c, err := bytelayout.ReadMapped[float64, Celsius](celsiusMapping{}, layout.Field("temperature"), data)
type Mapping[U Wire, T any] interface {
	Decode(U) (T, error)
	Encode(T) U
}

// ReadMapped reads the field's wire primitive and decodes it through m.
// Decode failures surface as *errors.Error values; everything else about
// the access follows the typed accessors, including the panic on short
// storage.
func ReadMapped[U Wire, T any](m Mapping[U, T], f *Field, data []byte) (T, error) {
	raw := readWire[U](f, data)
	v, err := m.Decode(raw)
	if err != nil {
		var zero T
		return zero, wrapDecode(f.name, raw, err)
	}
	return v, nil
}

// WriteMapped encodes v through m and writes the wire primitive into the
// field's byte range. Encoding is total, so there is nothing to return.
func WriteMapped[U Wire, T any](m Mapping[U, T], f *Field, data []byte, v T) {
	writeWire(f, data, m.Encode(v))
}

// MustReadMapped is the total accessor for fields whose mapping cannot
// fail. Calling it on a field built with a fallible mapping is a contract
// violation and panics before any decode happens.
func MustReadMapped[U Wire, T any](m Mapping[U, T], f *Field, data []byte) T {
	if f.canFail {
		panic(fmt.Sprintf("bytelayout: field %q can fail to decode, use ReadMapped", f.name))
	}
	v, err := ReadMapped(m, f, data)
	if err != nil {
		// Unreachable for mappings that honor their infallible declaration.
		panic(fmt.Sprintf("bytelayout: infallible mapping failed on field %q: %v", f.name, err))
	}
	return v
}

// ReadMappedView is ReadMapped against a view's bound storage.
func ReadMappedView[U Wire, T any](m Mapping[U, T], fv FieldView) (T, error) {
	return ReadMapped(m, fv.field, fv.view.storage.Bytes())
}

// WriteMappedView is WriteMapped against a view's bound storage. The view's
// storage mode must permit writes.
func WriteMappedView[U Wire, T any](m Mapping[U, T], fv FieldView, v T) {
	WriteMapped(m, fv.field, fv.view.mutable(), v)
}

func wrapDecode(field string, raw any, err error) error {
	if derr, ok := err.(*errors.Error); ok {
		if derr.Field == "" {
			derr.Field = field
		}
		return derr
	}
	return errors.Mapping(field, raw, err)
}

// NonZeroInt is the integer subset of Wire usable with the NonZero mapping.
type NonZeroInt interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64
}

// NonZero is the built-in mapping for the non-zero integer family: decode
// fails exactly when the stored value is zero, and encoding zero is a
// contract violation. Fields declared with the Builder's NonZero methods
// already carry this behavior in ReadAny; NonZero exists for generic code
// using the ReadMapped surface.
type NonZero[U NonZeroInt] struct{}

func (NonZero[U]) Decode(v U) (U, error) {
	if v == 0 {
		return 0, errors.ZeroValue("")
	}
	return v, nil
}

func (NonZero[U]) Encode(v U) U {
	if v == 0 {
		panic("bytelayout: zero is not a valid non-zero value")
	}
	return v
}

func (f *Field) mustKind(kind Kind) {
	if f.kind != kind {
		panic(fmt.Sprintf("bytelayout: field %q is %s, not %s", f.name, f.kind, kind))
	}
}

// readWire fetches the field's primitive without applying any semantic
// checks; the mapping layered on top owns those.
func readWire[U Wire](f *Field, data []byte) U {
	b := f.span(data)
	order := f.order.wire()
	var v U
	switch p := any(&v).(type) {
	case *uint8:
		f.mustKind(KindU8)
		*p = codec.GetUint8(b)
	case *uint16:
		f.mustKind(KindU16)
		*p = codec.GetUint16(order, b)
	case *uint32:
		f.mustKind(KindU32)
		*p = codec.GetUint32(order, b)
	case *uint64:
		f.mustKind(KindU64)
		*p = codec.GetUint64(order, b)
	case *int8:
		f.mustKind(KindI8)
		*p = codec.GetInt8(b)
	case *int16:
		f.mustKind(KindI16)
		*p = codec.GetInt16(order, b)
	case *int32:
		f.mustKind(KindI32)
		*p = codec.GetInt32(order, b)
	case *int64:
		f.mustKind(KindI64)
		*p = codec.GetInt64(order, b)
	case *float32:
		f.mustKind(KindF32)
		*p = codec.GetFloat32(order, b)
	case *float64:
		f.mustKind(KindF64)
		*p = codec.GetFloat64(order, b)
	}
	return v
}

func writeWire[U Wire](f *Field, data []byte, v U) {
	b := f.span(data)
	order := f.order.wire()
	switch p := any(v).(type) {
	case uint8:
		f.mustKind(KindU8)
		codec.PutUint8(b, p)
	case uint16:
		f.mustKind(KindU16)
		codec.PutUint16(order, b, p)
	case uint32:
		f.mustKind(KindU32)
		codec.PutUint32(order, b, p)
	case uint64:
		f.mustKind(KindU64)
		codec.PutUint64(order, b, p)
	case int8:
		f.mustKind(KindI8)
		codec.PutInt8(b, p)
	case int16:
		f.mustKind(KindI16)
		codec.PutInt16(order, b, p)
	case int32:
		f.mustKind(KindI32)
		codec.PutInt32(order, b, p)
	case int64:
		f.mustKind(KindI64)
		codec.PutInt64(order, b, p)
	case float32:
		f.mustKind(KindF32)
		codec.PutFloat32(order, b, p)
	case float64:
		f.mustKind(KindF64)
		codec.PutFloat64(order, b, p)
	}
}
