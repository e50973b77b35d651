// Package codec converts between fixed-width byte slices and native Go
// values under a caller-supplied byte order.
//
// This package is the only place raw byte<->value conversion happens. Every
// function operates on a slice that is exactly as long as the primitive it
// encodes, performs no allocation, and keeps no state.
//
// # Supported primitives
//
//	Width   Unsigned    Signed    Float
//	─────────────────────────────────────
//	1       uint8       int8
//	2       uint16      int16
//	4       uint32      int32     float32
//	8       uint64      int64     float64
//	16      Uint128     Int128
//
// Byte order only affects multi-byte primitives; one-byte values are
// order-independent. 128-bit integers are represented by the Uint128 and
// Int128 pair types since Go has no native 128-bit integer.
//
// # Contract
//
// For every representable value v and every order o:
//
//	GetX(o, PutX(o, b, v)) == v
//	PutX(o, b, GetX(o, b)) leaves b unchanged
//
// Callers pass slices of exactly the primitive's width. Shorter slices are a
// caller bug and panic via the underlying indexing.
//
// This package is internal to bytelayout.
package codec
