package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

var orders = []struct {
	name  string
	order binary.ByteOrder
}{
	{"big", binary.BigEndian},
	{"little", binary.LittleEndian},
	{"native", binary.NativeEndian},
}

func TestUint16Exactness(t *testing.T) {
	var b [2]byte

	PutUint16(binary.BigEndian, b[:], 0x0102)
	if !bytes.Equal(b[:], []byte{0x01, 0x02}) {
		t.Errorf("big endian: got % x, want 01 02", b)
	}

	PutUint16(binary.LittleEndian, b[:], 0x0102)
	if !bytes.Equal(b[:], []byte{0x02, 0x01}) {
		t.Errorf("little endian: got % x, want 02 01", b)
	}
}

func TestRoundTripUnsigned(t *testing.T) {
	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			var b [16]byte

			for _, v := range []uint8{0, 1, 0x7f, 0x80, 0xff} {
				PutUint8(b[:1], v)
				if got := GetUint8(b[:1]); got != v {
					t.Errorf("uint8: got %d, want %d", got, v)
				}
			}
			for _, v := range []uint16{0, 1, 0x0102, math.MaxUint16} {
				PutUint16(o.order, b[:2], v)
				if got := GetUint16(o.order, b[:2]); got != v {
					t.Errorf("uint16: got %d, want %d", got, v)
				}
			}
			for _, v := range []uint32{0, 1, 0xdeadbeef, math.MaxUint32} {
				PutUint32(o.order, b[:4], v)
				if got := GetUint32(o.order, b[:4]); got != v {
					t.Errorf("uint32: got %d, want %d", got, v)
				}
			}
			for _, v := range []uint64{0, 1, 0xdeadbeefcafebabe, math.MaxUint64} {
				PutUint64(o.order, b[:8], v)
				if got := GetUint64(o.order, b[:8]); got != v {
					t.Errorf("uint64: got %d, want %d", got, v)
				}
			}
			for _, v := range []Uint128{
				{},
				{Lo: 1},
				{Hi: 1},
				{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10},
				{Hi: math.MaxUint64, Lo: math.MaxUint64},
			} {
				PutUint128(o.order, b[:16], v)
				if got := GetUint128(o.order, b[:16]); got != v {
					t.Errorf("uint128: got %v, want %v", got, v)
				}
			}
		})
	}
}

func TestRoundTripSigned(t *testing.T) {
	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			var b [16]byte

			for _, v := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
				PutInt8(b[:1], v)
				if got := GetInt8(b[:1]); got != v {
					t.Errorf("int8: got %d, want %d", got, v)
				}
			}
			for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
				PutInt16(o.order, b[:2], v)
				if got := GetInt16(o.order, b[:2]); got != v {
					t.Errorf("int16: got %d, want %d", got, v)
				}
			}
			for _, v := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
				PutInt32(o.order, b[:4], v)
				if got := GetInt32(o.order, b[:4]); got != v {
					t.Errorf("int32: got %d, want %d", got, v)
				}
			}
			for _, v := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
				PutInt64(o.order, b[:8], v)
				if got := GetInt64(o.order, b[:8]); got != v {
					t.Errorf("int64: got %d, want %d", got, v)
				}
			}
			for _, v := range []Int128{
				{},
				{Lo: 1},
				{Hi: -1, Lo: math.MaxUint64}, // -1
				{Hi: math.MinInt64},
				{Hi: math.MaxInt64, Lo: math.MaxUint64},
			} {
				PutInt128(o.order, b[:16], v)
				if got := GetInt128(o.order, b[:16]); got != v {
					t.Errorf("int128: got %v, want %v", got, v)
				}
			}
		})
	}
}

func TestRoundTripFloats(t *testing.T) {
	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			var b [8]byte

			for _, v := range []float32{0, 1, -1.5, math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(1))} {
				PutFloat32(o.order, b[:4], v)
				if got := GetFloat32(o.order, b[:4]); got != v {
					t.Errorf("float32: got %v, want %v", got, v)
				}
			}
			for _, v := range []float64{0, 1, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1)} {
				PutFloat64(o.order, b[:8], v)
				if got := GetFloat64(o.order, b[:8]); got != v {
					t.Errorf("float64: got %v, want %v", got, v)
				}
			}

			// NaN round-trips bit-exactly even though NaN != NaN.
			PutFloat64(o.order, b[:8], math.NaN())
			if got := GetFloat64(o.order, b[:8]); !math.IsNaN(got) {
				t.Errorf("NaN: got %v", got)
			}
		})
	}
}

func TestUint128Placement(t *testing.T) {
	v := Uint128{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}

	var b [16]byte
	PutUint128(binary.BigEndian, b[:], v)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	if !bytes.Equal(b[:], want) {
		t.Errorf("big endian: got % x, want % x", b, want)
	}

	PutUint128(binary.LittleEndian, b[:], v)
	want = []byte{0x10, 0x0f, 0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	if !bytes.Equal(b[:], want) {
		t.Errorf("little endian: got % x, want % x", b, want)
	}
}

func TestInt128From(t *testing.T) {
	if got := Int128From(-1); got != (Int128{Hi: -1, Lo: math.MaxUint64}) {
		t.Errorf("Int128From(-1): got %v", got)
	}
	if got := Int128From(42); got != (Int128{Lo: 42}) {
		t.Errorf("Int128From(42): got %v", got)
	}
	if got := Uint128From(42); got != (Uint128{Lo: 42}) {
		t.Errorf("Uint128From(42): got %v", got)
	}
}
