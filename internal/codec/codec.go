package codec

import (
	"encoding/binary"
	"math"
)

// Widths of the supported primitive families, in bytes.
const (
	Width8   = 1
	Width16  = 2
	Width32  = 4
	Width64  = 8
	Width128 = 16
)

func GetUint8(b []byte) uint8 {
	return b[0]
}

func PutUint8(b []byte, v uint8) {
	b[0] = v
}

func GetUint16(order binary.ByteOrder, b []byte) uint16 {
	return order.Uint16(b)
}

func PutUint16(order binary.ByteOrder, b []byte, v uint16) {
	order.PutUint16(b, v)
}

func GetUint32(order binary.ByteOrder, b []byte) uint32 {
	return order.Uint32(b)
}

func PutUint32(order binary.ByteOrder, b []byte, v uint32) {
	order.PutUint32(b, v)
}

func GetUint64(order binary.ByteOrder, b []byte) uint64 {
	return order.Uint64(b)
}

func PutUint64(order binary.ByteOrder, b []byte, v uint64) {
	order.PutUint64(b, v)
}

func GetInt8(b []byte) int8 {
	return int8(b[0])
}

func PutInt8(b []byte, v int8) {
	b[0] = byte(v)
}

func GetInt16(order binary.ByteOrder, b []byte) int16 {
	return int16(order.Uint16(b))
}

func PutInt16(order binary.ByteOrder, b []byte, v int16) {
	order.PutUint16(b, uint16(v))
}

func GetInt32(order binary.ByteOrder, b []byte) int32 {
	return int32(order.Uint32(b))
}

func PutInt32(order binary.ByteOrder, b []byte, v int32) {
	order.PutUint32(b, uint32(v))
}

func GetInt64(order binary.ByteOrder, b []byte) int64 {
	return int64(order.Uint64(b))
}

func PutInt64(order binary.ByteOrder, b []byte, v int64) {
	order.PutUint64(b, uint64(v))
}

// Floats are stored as their IEEE 754 bit patterns in the given order.

func GetFloat32(order binary.ByteOrder, b []byte) float32 {
	return math.Float32frombits(order.Uint32(b))
}

func PutFloat32(order binary.ByteOrder, b []byte, v float32) {
	order.PutUint32(b, math.Float32bits(v))
}

func GetFloat64(order binary.ByteOrder, b []byte) float64 {
	return math.Float64frombits(order.Uint64(b))
}

func PutFloat64(order binary.ByteOrder, b []byte, v float64) {
	order.PutUint64(b, math.Float64bits(v))
}
