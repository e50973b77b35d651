// Package bytelayout provides type-safe, in-place, zero-copy access to
// structured binary data.
//
// A layout is a declarative description of named, typed fields inside a
// contiguous byte region: a network packet, a memory-mapped file, a device
// register block. Field offsets and sizes are resolved once when the layout
// is built; every later access addresses the caller's storage directly,
// with no parse or serialize step and no copies.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	bytelayout/          Layout, Builder, Field, View, Storage and Mapping API
//	├── internal/codec/  Byte-order-aware primitive encode/decode
//	├── errors/          Structured decode-error types
//	└── cmd/inspect/     Interactive buffer inspector built on the public API
//
// # Quick Start
//
// Define a layout once, at package init time, then bind it to live storage:
//
//	var icmpPacket = bytelayout.NewBuilder("icmp_packet", bytelayout.BigEndian).
//		U8("type").
//		U8("code").
//		U16("checksum").
//		Bytes("rest_of_header", 4).
//		OpenBytes("data_section").
//		MustBuild()
//
//	func handle(packet []byte) {
//		view := icmpPacket.View(bytelayout.Borrow(packet))
//
//		code := view.Field("code").Uint8()
//		view.Field("checksum").SetUint16(10)
//
//		// Open-ended byte arrays alias the storage directly.
//		data := view.Field("data_section").MutableBytes()
//		copy(data[:5], []byte{1, 2, 3, 4, 5})
//		_ = code
//	}
//
// # Field Types
//
// Layouts support:
//
//   - Unsigned and signed integers of 1, 2, 4, 8 and 16 bytes (128-bit
//     values use the Uint128/Int128 pair types)
//   - IEEE 754 binary32 and binary64 floats
//   - The zero-width unit type
//   - Booleans stored as one byte (only 0 and 1 decode)
//   - Unicode scalar values stored as four bytes
//   - Non-zero integers (zero fails to decode)
//   - Fixed-size byte arrays and one trailing open-ended byte array
//   - Nested layouts, with their own byte order if declared
//   - Custom domain types through the Mapping interface
//
// # Two Access Surfaces
//
// The stateless surface reads and writes through Field methods that take
// the storage on every call:
//
//	f := icmpPacket.Field("checksum")
//	sum := f.Uint16(packet)
//	f.PutUint16(packet, sum+1)
//
// The stateful surface binds storage once in a View. Storage handles carry
// an access mode: Own hands the buffer over (and IntoInner takes it back),
// Borrow is an exclusive mutable borrow, BorrowReadOnly is a shared
// immutable borrow whose views only read.
//
// # Errors and Contract Violations
//
// Decoding is the only operation that can fail, and only for fields whose
// domain type excludes some bit patterns; those failures are *errors.Error
// values from the errors package. Mismatches between a layout and its
// caller (storage too short, wrong accessor type, writes through read-only
// storage) are programmer errors and panic.
//
// The package performs no locking and allocates nothing on the access
// paths; views are as safe to share across goroutines as the storage they
// wrap.
package bytelayout
