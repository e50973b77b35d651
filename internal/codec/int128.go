package codec

import (
	"encoding/binary"
	"fmt"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
// Go has no native 128-bit integer, so wide fields decode into this pair
// representation. The zero value is the number zero.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement. Hi carries the
// sign bit.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128From widens a uint64.
func Uint128From(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128From widens an int64, sign-extending into the high half.
func Int128From(v int64) Int128 {
	if v < 0 {
		return Int128{Hi: -1, Lo: uint64(v)}
	}
	return Int128{Lo: uint64(v)}
}

func (v Uint128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

func (v Int128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

func (v Uint128) String() string {
	if v.Hi == 0 {
		return fmt.Sprintf("0x%x", v.Lo)
	}
	return fmt.Sprintf("0x%x%016x", v.Hi, v.Lo)
}

func (v Int128) String() string {
	return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}.String()
}

// isBigEndian reports whether order writes the most significant byte first.
// Needed to place the two 64-bit halves of a 128-bit value.
func isBigEndian(order binary.ByteOrder) bool {
	var probe [2]byte
	order.PutUint16(probe[:], 0x0102)
	return probe[0] == 0x01
}

func GetUint128(order binary.ByteOrder, b []byte) Uint128 {
	if isBigEndian(order) {
		return Uint128{
			Hi: order.Uint64(b[0:8]),
			Lo: order.Uint64(b[8:16]),
		}
	}
	return Uint128{
		Lo: order.Uint64(b[0:8]),
		Hi: order.Uint64(b[8:16]),
	}
}

func PutUint128(order binary.ByteOrder, b []byte, v Uint128) {
	if isBigEndian(order) {
		order.PutUint64(b[0:8], v.Hi)
		order.PutUint64(b[8:16], v.Lo)
		return
	}
	order.PutUint64(b[0:8], v.Lo)
	order.PutUint64(b[8:16], v.Hi)
}

func GetInt128(order binary.ByteOrder, b []byte) Int128 {
	u := GetUint128(order, b)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

func PutInt128(order binary.ByteOrder, b []byte, v Int128) {
	PutUint128(order, b, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}
