package bytelayout

import "encoding/binary"

// ByteOrder selects how multi-byte primitives are laid out on the wire.
// A layout declares one order; every primitive field in it uses that order
// unless a nested layout declares its own.
type ByteOrder uint8

const (
	// InheritOrder resolves to the enclosing layout's order when the layout
	// is nested, and to NativeEndian when used at the top level.
	InheritOrder ByteOrder = iota
	LittleEndian
	BigEndian
	NativeEndian
)

var orderNames = [...]string{
	InheritOrder: "inherit",
	LittleEndian: "little",
	BigEndian:    "big",
	NativeEndian: "native",
}

func (o ByteOrder) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "unknown"
}

// resolve replaces InheritOrder with the enclosing layout's order.
func (o ByteOrder) resolve(outer ByteOrder) ByteOrder {
	if o == InheritOrder {
		return outer
	}
	return o
}

// wire returns the codec byte order. InheritOrder has already been resolved
// by the time field offsets exist; treating a stray inherit as native keeps
// the mapping total.
func (o ByteOrder) wire() binary.ByteOrder {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	default:
		return binary.NativeEndian
	}
}

// Kind identifies a field's wire type.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindF32
	KindF64
	KindUnit
	KindBool
	KindChar
	KindBytes
	KindOpenBytes
	KindNested
)

var kindNames = [...]string{
	KindU8:        "u8",
	KindU16:       "u16",
	KindU32:       "u32",
	KindU64:       "u64",
	KindU128:      "u128",
	KindI8:        "i8",
	KindI16:       "i16",
	KindI32:       "i32",
	KindI64:       "i64",
	KindI128:      "i128",
	KindF32:       "f32",
	KindF64:       "f64",
	KindUnit:      "unit",
	KindBool:      "bool",
	KindChar:      "char",
	KindBytes:     "bytes",
	KindOpenBytes: "open_bytes",
	KindNested:    "nested",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether the kind is decoded through the primitive
// codec rather than exposed as a raw byte range or a sub-layout.
func (k Kind) IsPrimitive() bool {
	return k <= KindChar
}

// Width returns the wire size of a primitive kind in bytes. Bytes,
// open-ended byte ranges and nested layouts size themselves elsewhere and
// return -1.
func (k Kind) Width() int {
	switch k {
	case KindU8, KindI8, KindBool:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32, KindChar:
		return 4
	case KindU64, KindI64, KindF64:
		return 8
	case KindU128, KindI128:
		return 16
	case KindUnit:
		return 0
	default:
		return -1
	}
}

// canFail reports whether decoding the kind itself can reject bit patterns.
// Integer, float and unit decoding is total; bool and char are the built-in
// fallible mappings.
func (k Kind) canFail() bool {
	return k == KindBool || k == KindChar
}
