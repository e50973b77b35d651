package bytelayout

import (
	"fmt"
	"unicode/utf8"

	"github.com/bytelayout/bytelayout/errors"
	"github.com/bytelayout/bytelayout/internal/codec"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
type Uint128 = codec.Uint128

// Int128 is a signed 128-bit integer in two's complement.
type Int128 = codec.Int128

// The stateless accessor API: typed read/write methods on Field that take
// the storage region on every call and retain nothing. Offsets and sizes
// were resolved when the layout was built; each accessor just bounds-checks
// the caller's slice and runs the primitive codec on the field's range.
//
// A storage region shorter than the field's range is a contract violation
// between the caller and the layout the region was defined for, not a
// data-dependent condition, so it panics instead of returning an error. The
// same goes for calling an accessor of the wrong type or calling an
// infallible accessor on a field whose decoding can fail.

// span returns the field's byte range within data.
func (f *Field) span(data []byte) []byte {
	if f.size == SizeOpen {
		if len(data) < f.offset {
			panic(fmt.Sprintf("bytelayout: storage too short for open field %q: need at least %d bytes, have %d",
				f.name, f.offset, len(data)))
		}
		return data[f.offset:]
	}
	end := f.offset + f.size
	if len(data) < end {
		panic(fmt.Sprintf("bytelayout: storage too short for field %q: need %d bytes, have %d",
			f.name, end, len(data)))
	}
	return data[f.offset:end:end]
}

func (f *Field) require(kind Kind) {
	if f.kind != kind {
		panic(fmt.Sprintf("bytelayout: field %q is %s, not %s", f.name, f.kind, kind))
	}
	if f.mapped {
		panic(fmt.Sprintf("bytelayout: field %q carries a custom mapping, use ReadMapped/WriteMapped", f.name))
	}
}

// requireInfallible additionally rejects fields whose decode can fail;
// those only expose the fallible accessor forms.
func (f *Field) requireInfallible(kind Kind) {
	f.require(kind)
	if f.canFail {
		panic(fmt.Sprintf("bytelayout: field %q can fail to decode, use ReadAny or ReadMapped", f.name))
	}
}

// Uint8 reads the field from data. The field must be an infallible u8.
func (f *Field) Uint8(data []byte) uint8 {
	f.requireInfallible(KindU8)
	return codec.GetUint8(f.span(data))
}

// PutUint8 writes v into the field's range in data.
func (f *Field) PutUint8(data []byte, v uint8) {
	f.require(KindU8)
	f.checkNonZero(uint64(v))
	codec.PutUint8(f.span(data), v)
}

func (f *Field) Uint16(data []byte) uint16 {
	f.requireInfallible(KindU16)
	return codec.GetUint16(f.order.wire(), f.span(data))
}

func (f *Field) PutUint16(data []byte, v uint16) {
	f.require(KindU16)
	f.checkNonZero(uint64(v))
	codec.PutUint16(f.order.wire(), f.span(data), v)
}

func (f *Field) Uint32(data []byte) uint32 {
	f.requireInfallible(KindU32)
	return codec.GetUint32(f.order.wire(), f.span(data))
}

func (f *Field) PutUint32(data []byte, v uint32) {
	f.require(KindU32)
	f.checkNonZero(uint64(v))
	codec.PutUint32(f.order.wire(), f.span(data), v)
}

func (f *Field) Uint64(data []byte) uint64 {
	f.requireInfallible(KindU64)
	return codec.GetUint64(f.order.wire(), f.span(data))
}

func (f *Field) PutUint64(data []byte, v uint64) {
	f.require(KindU64)
	f.checkNonZero(v)
	codec.PutUint64(f.order.wire(), f.span(data), v)
}

func (f *Field) Uint128(data []byte) Uint128 {
	f.requireInfallible(KindU128)
	return codec.GetUint128(f.order.wire(), f.span(data))
}

func (f *Field) PutUint128(data []byte, v Uint128) {
	f.require(KindU128)
	if f.nonZero && v.IsZero() {
		f.panicZeroWrite()
	}
	codec.PutUint128(f.order.wire(), f.span(data), v)
}

func (f *Field) Int8(data []byte) int8 {
	f.requireInfallible(KindI8)
	return codec.GetInt8(f.span(data))
}

func (f *Field) PutInt8(data []byte, v int8) {
	f.require(KindI8)
	f.checkNonZero(uint64(uint8(v)))
	codec.PutInt8(f.span(data), v)
}

func (f *Field) Int16(data []byte) int16 {
	f.requireInfallible(KindI16)
	return codec.GetInt16(f.order.wire(), f.span(data))
}

func (f *Field) PutInt16(data []byte, v int16) {
	f.require(KindI16)
	f.checkNonZero(uint64(uint16(v)))
	codec.PutInt16(f.order.wire(), f.span(data), v)
}

func (f *Field) Int32(data []byte) int32 {
	f.requireInfallible(KindI32)
	return codec.GetInt32(f.order.wire(), f.span(data))
}

func (f *Field) PutInt32(data []byte, v int32) {
	f.require(KindI32)
	f.checkNonZero(uint64(uint32(v)))
	codec.PutInt32(f.order.wire(), f.span(data), v)
}

func (f *Field) Int64(data []byte) int64 {
	f.requireInfallible(KindI64)
	return codec.GetInt64(f.order.wire(), f.span(data))
}

func (f *Field) PutInt64(data []byte, v int64) {
	f.require(KindI64)
	f.checkNonZero(uint64(v))
	codec.PutInt64(f.order.wire(), f.span(data), v)
}

func (f *Field) Int128(data []byte) Int128 {
	f.requireInfallible(KindI128)
	return codec.GetInt128(f.order.wire(), f.span(data))
}

func (f *Field) PutInt128(data []byte, v Int128) {
	f.require(KindI128)
	if f.nonZero && v.IsZero() {
		f.panicZeroWrite()
	}
	codec.PutInt128(f.order.wire(), f.span(data), v)
}

func (f *Field) Float32(data []byte) float32 {
	f.requireInfallible(KindF32)
	return codec.GetFloat32(f.order.wire(), f.span(data))
}

func (f *Field) PutFloat32(data []byte, v float32) {
	f.require(KindF32)
	codec.PutFloat32(f.order.wire(), f.span(data), v)
}

func (f *Field) Float64(data []byte) float64 {
	f.requireInfallible(KindF64)
	return codec.GetFloat64(f.order.wire(), f.span(data))
}

func (f *Field) PutFloat64(data []byte, v float64) {
	f.require(KindF64)
	codec.PutFloat64(f.order.wire(), f.span(data), v)
}

// Bool reads the field's byte as a boolean. Only 0x00 and 0x01 are valid;
// any other byte returns a decode error and the storage is left untouched.
func (f *Field) Bool(data []byte) (bool, error) {
	f.require(KindBool)
	return decodeBool(f.name, f.span(data)[0])
}

// PutBool writes v as 0x00 or 0x01. Encoding a boolean is total.
func (f *Field) PutBool(data []byte, v bool) {
	f.require(KindBool)
	b := f.span(data)
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

// Char reads the field's four bytes as a Unicode scalar value. Surrogate
// code points and values above U+10FFFF return a decode error.
func (f *Field) Char(data []byte) (rune, error) {
	f.require(KindChar)
	return decodeChar(f.name, codec.GetUint32(f.order.wire(), f.span(data)))
}

// PutChar writes r as an unsigned 32-bit code point. Passing a rune that is
// not a Unicode scalar value is a contract violation and panics; valid
// domain values always encode.
func (f *Field) PutChar(data []byte, r rune) {
	f.require(KindChar)
	if !utf8.ValidRune(r) {
		panic(fmt.Sprintf("bytelayout: field %q: %#U is not a Unicode scalar value", f.name, r))
	}
	codec.PutUint32(f.order.wire(), f.span(data), uint32(r))
}

// Bytes returns the field's raw byte range within data without copying.
// Valid for fixed byte arrays, open-ended byte arrays and nested fields;
// for open-ended fields the slice runs to the end of data.
func (f *Field) Bytes(data []byte) []byte {
	switch f.kind {
	case KindBytes, KindOpenBytes, KindNested:
		return f.span(data)
	}
	panic(fmt.Sprintf("bytelayout: field %q is %s, not a byte range", f.name, f.kind))
}

// SizeOn returns the field's size when bound to a storage region of the
// given length. Only open-ended fields depend on the storage; all other
// fields return their resolved size.
func (f *Field) SizeOn(storageLen int) int {
	if f.size != SizeOpen {
		return f.size
	}
	if storageLen < f.offset {
		panic(fmt.Sprintf("bytelayout: storage too short for open field %q: need at least %d bytes, have %d",
			f.name, f.offset, storageLen))
	}
	return storageLen - f.offset
}

func (f *Field) checkNonZero(bits uint64) {
	if f.nonZero && bits == 0 {
		f.panicZeroWrite()
	}
}

func (f *Field) panicZeroWrite() {
	panic(fmt.Sprintf("bytelayout: field %q: zero is not a valid non-zero value", f.name))
}

func decodeBool(field string, b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.InvalidBool(field, b)
}

const (
	surrogateMin = 0xd800
	surrogateMax = 0xdfff
	maxScalar    = 0x10ffff
)

func decodeChar(field string, code uint32) (rune, error) {
	if code > maxScalar || (code >= surrogateMin && code <= surrogateMax) {
		return 0, errors.InvalidChar(field, code)
	}
	return rune(code), nil
}
