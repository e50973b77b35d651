package bytelayout

import (
	"fmt"

	"github.com/bytelayout/bytelayout/errors"
	"github.com/bytelayout/bytelayout/internal/codec"
)

// ReadAny decodes the field's current bytes into its value type, boxed as
// any. It is the uniform fallible accessor: it exists for every field,
// including the ones whose typed accessor is infallible, so generic code
// and tooling can treat all fields alike. The concrete types returned
// mirror the typed accessors (uint16, Int128, bool, rune, []byte, ...);
// unit fields return struct{}{} and nested fields return their raw byte
// range. Fields declared with a custom mapping return the underlying
// primitive; apply the mapping with ReadMapped instead when the domain type
// is wanted.
//
// The only errors are decode errors. Storage shorter than the field's range
// still panics, exactly like the typed accessors.
func (f *Field) ReadAny(data []byte) (any, error) {
	b := f.span(data)
	order := f.order.wire()

	switch f.kind {
	case KindU8:
		return f.nonZeroCheck(uint64(b[0]), codec.GetUint8(b))
	case KindU16:
		v := codec.GetUint16(order, b)
		return f.nonZeroCheck(uint64(v), v)
	case KindU32:
		v := codec.GetUint32(order, b)
		return f.nonZeroCheck(uint64(v), v)
	case KindU64:
		v := codec.GetUint64(order, b)
		return f.nonZeroCheck(v, v)
	case KindU128:
		v := codec.GetUint128(order, b)
		if f.nonZero && v.IsZero() {
			return nil, errors.ZeroValue(f.name)
		}
		return v, nil
	case KindI8:
		v := codec.GetInt8(b)
		return f.nonZeroCheck(uint64(uint8(v)), v)
	case KindI16:
		v := codec.GetInt16(order, b)
		return f.nonZeroCheck(uint64(uint16(v)), v)
	case KindI32:
		v := codec.GetInt32(order, b)
		return f.nonZeroCheck(uint64(uint32(v)), v)
	case KindI64:
		v := codec.GetInt64(order, b)
		return f.nonZeroCheck(uint64(v), v)
	case KindI128:
		v := codec.GetInt128(order, b)
		if f.nonZero && v.IsZero() {
			return nil, errors.ZeroValue(f.name)
		}
		return v, nil
	case KindF32:
		return codec.GetFloat32(order, b), nil
	case KindF64:
		return codec.GetFloat64(order, b), nil
	case KindUnit:
		return struct{}{}, nil
	case KindBool:
		return boxDecode(decodeBool(f.name, b[0]))
	case KindChar:
		return boxDecode(decodeChar(f.name, codec.GetUint32(order, b)))
	case KindBytes, KindOpenBytes, KindNested:
		return b, nil
	}
	panic(fmt.Sprintf("bytelayout: field %q has unknown kind %d", f.name, f.kind))
}

// WriteAny encodes a boxed value into the field's byte range. It accepts
// the same concrete types ReadAny returns and exists for the dynamic paths
// (generic code, tooling) where the field type is not statically known. A
// value of the wrong Go type or outside the field's domain is reported as
// an error rather than a panic, since dynamic callers cannot check it
// statically. Storage shorter than the field's range still panics.
func (f *Field) WriteAny(data []byte, value any) error {
	b := f.span(data)
	order := f.order.wire()

	switch f.kind {
	case KindU8:
		v, ok := value.(uint8)
		if err := f.checkAny(ok, uint64(v)); err != nil {
			return err
		}
		codec.PutUint8(b, v)
	case KindU16:
		v, ok := value.(uint16)
		if err := f.checkAny(ok, uint64(v)); err != nil {
			return err
		}
		codec.PutUint16(order, b, v)
	case KindU32:
		v, ok := value.(uint32)
		if err := f.checkAny(ok, uint64(v)); err != nil {
			return err
		}
		codec.PutUint32(order, b, v)
	case KindU64:
		v, ok := value.(uint64)
		if err := f.checkAny(ok, v); err != nil {
			return err
		}
		codec.PutUint64(order, b, v)
	case KindU128:
		v, ok := value.(Uint128)
		if err := f.checkAny(ok, 1); err != nil {
			return err
		}
		if f.nonZero && v.IsZero() {
			return fmt.Errorf("field %q: zero is not a valid non-zero value", f.name)
		}
		codec.PutUint128(order, b, v)
	case KindI8:
		v, ok := value.(int8)
		if err := f.checkAny(ok, uint64(uint8(v))); err != nil {
			return err
		}
		codec.PutInt8(b, v)
	case KindI16:
		v, ok := value.(int16)
		if err := f.checkAny(ok, uint64(uint16(v))); err != nil {
			return err
		}
		codec.PutInt16(order, b, v)
	case KindI32:
		v, ok := value.(int32)
		if err := f.checkAny(ok, uint64(uint32(v))); err != nil {
			return err
		}
		codec.PutInt32(order, b, v)
	case KindI64:
		v, ok := value.(int64)
		if err := f.checkAny(ok, uint64(v)); err != nil {
			return err
		}
		codec.PutInt64(order, b, v)
	case KindI128:
		v, ok := value.(Int128)
		if err := f.checkAny(ok, 1); err != nil {
			return err
		}
		if f.nonZero && v.IsZero() {
			return fmt.Errorf("field %q: zero is not a valid non-zero value", f.name)
		}
		codec.PutInt128(order, b, v)
	case KindF32:
		v, ok := value.(float32)
		if !ok {
			return f.typeErr(value)
		}
		codec.PutFloat32(order, b, v)
	case KindF64:
		v, ok := value.(float64)
		if !ok {
			return f.typeErr(value)
		}
		codec.PutFloat64(order, b, v)
	case KindUnit:
		// Zero-width: nothing to store.
	case KindBool:
		v, ok := value.(bool)
		if !ok {
			return f.typeErr(value)
		}
		if v {
			b[0] = 1
		} else {
			b[0] = 0
		}
	case KindChar:
		v, ok := value.(rune)
		if !ok {
			return f.typeErr(value)
		}
		code, err := decodeChar(f.name, uint32(v))
		if err != nil {
			return fmt.Errorf("field %q: %#U is not a Unicode scalar value", f.name, v)
		}
		codec.PutUint32(order, b, uint32(code))
	case KindBytes, KindOpenBytes, KindNested:
		v, ok := value.([]byte)
		if !ok {
			return f.typeErr(value)
		}
		if len(v) != len(b) {
			return fmt.Errorf("field %q: byte range is %d bytes, got %d", f.name, len(b), len(v))
		}
		copy(b, v)
	default:
		panic(fmt.Sprintf("bytelayout: field %q has unknown kind %d", f.name, f.kind))
	}
	return nil
}

func (f *Field) nonZeroCheck(bits uint64, v any) (any, error) {
	if f.nonZero && bits == 0 {
		return nil, errors.ZeroValue(f.name)
	}
	return v, nil
}

func (f *Field) checkAny(ok bool, bits uint64) error {
	if !ok {
		return fmt.Errorf("field %q: value has wrong type for %s", f.name, f.kind)
	}
	if f.nonZero && bits == 0 {
		return fmt.Errorf("field %q: zero is not a valid non-zero value", f.name)
	}
	return nil
}

func (f *Field) typeErr(value any) error {
	return fmt.Errorf("field %q: value %T has wrong type for %s", f.name, value, f.kind)
}

func boxDecode[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
