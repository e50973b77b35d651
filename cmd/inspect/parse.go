package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bytelayout/bytelayout"
)

func parseOrder(name string) (bytelayout.ByteOrder, error) {
	switch name {
	case "big", "be":
		return bytelayout.BigEndian, nil
	case "little", "le":
		return bytelayout.LittleEndian, nil
	case "native":
		return bytelayout.NativeEndian, nil
	}
	return 0, fmt.Errorf("unknown byte order %q (big, little or native)", name)
}

// parseLayout builds a layout from a compact comma-separated field list,
// e.g. "type:u8,code:u8,checksum:u16,reserved:bytes:4,payload:open".
func parseLayout(name, desc string, order bytelayout.ByteOrder) (*bytelayout.Layout, error) {
	b := bytelayout.NewBuilder(name, order)

	for _, tok := range strings.Split(desc, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		parts := strings.Split(tok, ":")
		if len(parts) < 2 {
			return nil, fmt.Errorf("field %q: want name:kind", tok)
		}
		fname, kind := parts[0], parts[1]

		switch kind {
		case "u8":
			b.U8(fname)
		case "u16":
			b.U16(fname)
		case "u32":
			b.U32(fname)
		case "u64":
			b.U64(fname)
		case "u128":
			b.U128(fname)
		case "i8":
			b.I8(fname)
		case "i16":
			b.I16(fname)
		case "i32":
			b.I32(fname)
		case "i64":
			b.I64(fname)
		case "i128":
			b.I128(fname)
		case "f32":
			b.F32(fname)
		case "f64":
			b.F64(fname)
		case "bool":
			b.Bool(fname)
		case "char":
			b.Char(fname)
		case "unit":
			b.Unit(fname)
		case "nonzero_u8":
			b.NonZeroU8(fname)
		case "nonzero_u16":
			b.NonZeroU16(fname)
		case "nonzero_u32":
			b.NonZeroU32(fname)
		case "nonzero_u64":
			b.NonZeroU64(fname)
		case "nonzero_u128":
			b.NonZeroU128(fname)
		case "nonzero_i8":
			b.NonZeroI8(fname)
		case "nonzero_i16":
			b.NonZeroI16(fname)
		case "nonzero_i32":
			b.NonZeroI32(fname)
		case "nonzero_i64":
			b.NonZeroI64(fname)
		case "nonzero_i128":
			b.NonZeroI128(fname)
		case "bytes":
			if len(parts) != 3 {
				return nil, fmt.Errorf("field %q: want %s:bytes:<n>", tok, fname)
			}
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("field %q: bad byte count: %w", tok, err)
			}
			b.Bytes(fname, n)
		case "open":
			b.OpenBytes(fname)
		default:
			return nil, fmt.Errorf("field %q: unknown kind %q", tok, kind)
		}
	}

	return b.Build()
}

// parseValue converts user input into the boxed value WriteAny expects for
// the field's kind.
func parseValue(f *bytelayout.Field, s string) (any, error) {
	s = strings.TrimSpace(s)

	switch f.Kind() {
	case bytelayout.KindU8:
		v, err := strconv.ParseUint(s, 0, 8)
		return uint8(v), err
	case bytelayout.KindU16:
		v, err := strconv.ParseUint(s, 0, 16)
		return uint16(v), err
	case bytelayout.KindU32:
		v, err := strconv.ParseUint(s, 0, 32)
		return uint32(v), err
	case bytelayout.KindU64:
		return strconv.ParseUint(s, 0, 64)
	case bytelayout.KindU128:
		v, err := strconv.ParseUint(s, 0, 64)
		return bytelayout.Uint128{Lo: v}, err
	case bytelayout.KindI8:
		v, err := strconv.ParseInt(s, 0, 8)
		return int8(v), err
	case bytelayout.KindI16:
		v, err := strconv.ParseInt(s, 0, 16)
		return int16(v), err
	case bytelayout.KindI32:
		v, err := strconv.ParseInt(s, 0, 32)
		return int32(v), err
	case bytelayout.KindI64:
		return strconv.ParseInt(s, 0, 64)
	case bytelayout.KindI128:
		v, err := strconv.ParseInt(s, 0, 64)
		i := bytelayout.Int128{Lo: uint64(v)}
		if v < 0 {
			i.Hi = -1
		}
		return i, err
	case bytelayout.KindF32:
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	case bytelayout.KindF64:
		return strconv.ParseFloat(s, 64)
	case bytelayout.KindBool:
		return s == "true" || s == "1", nil
	case bytelayout.KindChar:
		if code, ok := strings.CutPrefix(s, "U+"); ok {
			v, err := strconv.ParseUint(code, 16, 32)
			return rune(v), err
		}
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return nil, fmt.Errorf("want a single character or U+XXXX")
		}
		return r, nil
	case bytelayout.KindUnit:
		return struct{}{}, nil
	case bytelayout.KindBytes, bytelayout.KindOpenBytes, bytelayout.KindNested:
		return hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	}
	return nil, fmt.Errorf("unsupported kind %s", f.Kind())
}
