package bytelayout

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// SizeOpen is the size reported by open-ended fields and layouts before they
// are bound to concrete storage.
const SizeOpen = -1

// Field is one resolved descriptor of a layout: a name, a wire kind and the
// byte range the field occupies. Fields are created by the Builder and are
// immutable afterwards; the offset and size are computed once per layout,
// never per access.
type Field struct {
	inner   *Layout // nested sub-layout, nil otherwise
	name    string
	kind    Kind
	offset  int
	size    int // SizeOpen for open-ended fields
	order   ByteOrder
	index   int
	nonZero bool // zero bit pattern fails to decode
	mapped  bool // custom semantic mapping declared at build time
	canFail bool
}

// Name returns the field's name, unique within its layout.
func (f *Field) Name() string { return f.name }

// Kind returns the field's wire kind. For fields declared with a custom
// mapping this is the underlying primitive kind.
func (f *Field) Kind() Kind { return f.kind }

// Offset returns the field's starting byte offset within the layout.
func (f *Field) Offset() int { return f.offset }

// Size returns the field's wire size in bytes, or SizeOpen if the field is
// open-ended and sizes itself against the bound storage.
func (f *Field) Size() int { return f.size }

// IsOpen reports whether the field consumes all remaining storage bytes.
func (f *Field) IsOpen() bool { return f.size == SizeOpen }

// CanFail reports whether decoding this field can reject stored bit
// patterns. It is resolved once at build time: true for bool, char,
// non-zero integers and fallible custom mappings. Infallible typed
// accessors exist only for fields where this is false.
func (f *Field) CanFail() bool { return f.canFail }

// Order returns the byte order governing this field's primitives.
func (f *Field) Order() ByteOrder { return f.order }

// Layout returns the nested sub-layout for KindNested fields, nil otherwise.
func (f *Field) Layout() *Layout { return f.inner }

// Layout is an immutable, named, ordered sequence of resolved fields plus a
// byte order. It is pure metadata: no storage is attached, and a single
// layout may serve any number of views and call sites concurrently.
type Layout struct {
	byName map[string]int
	name   string
	fields []Field
	order  ByteOrder
	total  int // SizeOpen when the layout ends open
}

// Name returns the layout's name.
func (l *Layout) Name() string { return l.name }

// Order returns the layout's declared byte order.
func (l *Layout) Order() ByteOrder { return l.order }

// NumFields returns the number of fields.
func (l *Layout) NumFields() int { return len(l.fields) }

// FieldAt returns the i-th field in declaration order.
func (l *Layout) FieldAt(i int) *Field { return &l.fields[i] }

// Field returns the named field. An unknown name is a contract violation
// between the call site and the layout definition and panics; use Lookup
// when the name is not statically known.
func (l *Layout) Field(name string) *Field {
	i, ok := l.byName[name]
	if !ok {
		panic(fmt.Sprintf("bytelayout: layout %q has no field %q", l.name, name))
	}
	return &l.fields[i]
}

// Lookup returns the named field, or false if the layout has no such field.
func (l *Layout) Lookup(name string) (*Field, bool) {
	i, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	return &l.fields[i], true
}

// TotalSize returns the layout's fixed wire size. ok is false when the
// layout ends with an open field (directly or through nesting) and only has
// a size once bound to storage.
func (l *Layout) TotalSize() (size int, ok bool) {
	if l.total == SizeOpen {
		return 0, false
	}
	return l.total, true
}

// SizeOn returns the number of bytes the layout occupies on a storage
// region of the given length. For fixed layouts this is the total size; for
// open-ended layouts the trailing field absorbs the rest of the region.
func (l *Layout) SizeOn(storageLen int) int {
	if l.total != SizeOpen {
		return l.total
	}
	return storageLen
}

// minBind is the smallest storage length the layout can be bound to.
func (l *Layout) minBind() int {
	if l.total != SizeOpen {
		return l.total
	}
	// Open layouts need every fixed field plus the open field's offset.
	last := l.fields[len(l.fields)-1]
	if last.IsOpen() {
		return last.offset
	}
	return 0
}

func (l *Layout) String() string {
	var b strings.Builder
	b.WriteString(l.name)
	b.WriteString(" (")
	b.WriteString(l.order.String())
	b.WriteString(") {")
	for i := range l.fields {
		f := &l.fields[i]
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%s@%d", f.name, f.kind, f.offset)
		if f.IsOpen() {
			b.WriteString("+open")
		} else {
			fmt.Fprintf(&b, "+%d", f.size)
		}
	}
	b.WriteString("}")
	return b.String()
}

// withOrder returns a copy of the layout resolved against the given outer
// order. Layouts built with InheritOrder pick up the enclosing order when
// nested; layouts with an explicit order are returned unchanged.
func (l *Layout) withOrder(outer ByteOrder) *Layout {
	if l.order != InheritOrder {
		return l
	}
	clone := &Layout{
		byName: l.byName,
		name:   l.name,
		fields: make([]Field, len(l.fields)),
		order:  outer,
		total:  l.total,
	}
	copy(clone.fields, l.fields)
	for i := range clone.fields {
		f := &clone.fields[i]
		f.order = f.order.resolve(outer)
		if f.inner != nil {
			f.inner = f.inner.withOrder(outer)
		}
	}
	return clone
}

type fieldSpec struct {
	inner   *Layout
	name    string
	kind    Kind
	size    int
	nonZero bool
	mapped  bool
	canFail bool
}

// Builder assembles a layout specification from an ordered list of named
// fields. All offset math happens in Build, once per layout.
type Builder struct {
	name   string
	order  ByteOrder
	fields []fieldSpec
}

// NewBuilder starts a layout with the given name and byte order. Pass
// InheritOrder to defer the order to whichever layout this one is nested
// into.
func NewBuilder(name string, order ByteOrder) *Builder {
	return &Builder{name: name, order: order}
}

func (b *Builder) add(spec fieldSpec) *Builder {
	b.fields = append(b.fields, spec)
	return b
}

func (b *Builder) primitive(name string, kind Kind) *Builder {
	return b.add(fieldSpec{name: name, kind: kind, size: kind.Width(), canFail: kind.canFail()})
}

// U8 declares an unsigned 8-bit field.
func (b *Builder) U8(name string) *Builder { return b.primitive(name, KindU8) }

// U16 declares an unsigned 16-bit field.
func (b *Builder) U16(name string) *Builder { return b.primitive(name, KindU16) }

// U32 declares an unsigned 32-bit field.
func (b *Builder) U32(name string) *Builder { return b.primitive(name, KindU32) }

// U64 declares an unsigned 64-bit field.
func (b *Builder) U64(name string) *Builder { return b.primitive(name, KindU64) }

// U128 declares an unsigned 128-bit field, accessed as Uint128.
func (b *Builder) U128(name string) *Builder { return b.primitive(name, KindU128) }

// I8 declares a signed 8-bit field.
func (b *Builder) I8(name string) *Builder { return b.primitive(name, KindI8) }

// I16 declares a signed 16-bit field.
func (b *Builder) I16(name string) *Builder { return b.primitive(name, KindI16) }

// I32 declares a signed 32-bit field.
func (b *Builder) I32(name string) *Builder { return b.primitive(name, KindI32) }

// I64 declares a signed 64-bit field.
func (b *Builder) I64(name string) *Builder { return b.primitive(name, KindI64) }

// I128 declares a signed 128-bit field, accessed as Int128.
func (b *Builder) I128(name string) *Builder { return b.primitive(name, KindI128) }

// F32 declares an IEEE 754 binary32 field.
func (b *Builder) F32(name string) *Builder { return b.primitive(name, KindF32) }

// F64 declares an IEEE 754 binary64 field.
func (b *Builder) F64(name string) *Builder { return b.primitive(name, KindF64) }

// Unit declares a zero-width field. It occupies no storage and neither
// reads nor writes; it exists so generated or generic layouts can keep
// placeholder members.
func (b *Builder) Unit(name string) *Builder { return b.primitive(name, KindUnit) }

// Bool declares a boolean stored as one byte. Only 0 and 1 decode; any
// other byte is a decode error.
func (b *Builder) Bool(name string) *Builder { return b.primitive(name, KindBool) }

// Char declares a Unicode scalar value stored as an unsigned 32-bit
// integer. Surrogates and code points above U+10FFFF fail to decode.
func (b *Builder) Char(name string) *Builder { return b.primitive(name, KindChar) }

func (b *Builder) nonZeroField(name string, kind Kind) *Builder {
	return b.add(fieldSpec{name: name, kind: kind, size: kind.Width(), nonZero: true, canFail: true})
}

// NonZeroU8 declares an unsigned 8-bit field whose zero bit pattern fails
// to decode. The remaining NonZero declarations follow the same contract
// for their width and signedness.
func (b *Builder) NonZeroU8(name string) *Builder { return b.nonZeroField(name, KindU8) }

func (b *Builder) NonZeroU16(name string) *Builder  { return b.nonZeroField(name, KindU16) }
func (b *Builder) NonZeroU32(name string) *Builder  { return b.nonZeroField(name, KindU32) }
func (b *Builder) NonZeroU64(name string) *Builder  { return b.nonZeroField(name, KindU64) }
func (b *Builder) NonZeroU128(name string) *Builder { return b.nonZeroField(name, KindU128) }
func (b *Builder) NonZeroI8(name string) *Builder   { return b.nonZeroField(name, KindI8) }
func (b *Builder) NonZeroI16(name string) *Builder  { return b.nonZeroField(name, KindI16) }
func (b *Builder) NonZeroI32(name string) *Builder  { return b.nonZeroField(name, KindI32) }
func (b *Builder) NonZeroI64(name string) *Builder  { return b.nonZeroField(name, KindI64) }
func (b *Builder) NonZeroI128(name string) *Builder { return b.nonZeroField(name, KindI128) }

// Bytes declares a fixed-size byte array of n bytes, accessed as a raw
// sub-slice of the storage.
func (b *Builder) Bytes(name string, n int) *Builder {
	return b.add(fieldSpec{name: name, kind: KindBytes, size: n})
}

// OpenBytes declares an open-ended byte array consuming all remaining
// storage. It is only legal as the last field of a layout.
func (b *Builder) OpenBytes(name string) *Builder {
	return b.add(fieldSpec{name: name, kind: KindOpenBytes, size: SizeOpen})
}

// Nested embeds another layout as a single field. The inner layout's total
// size becomes the field's size; an open-ended inner layout makes this
// field open-ended too, with the same last-field restriction.
func (b *Builder) Nested(name string, inner *Layout) *Builder {
	return b.add(fieldSpec{name: name, kind: KindNested, inner: inner})
}

// Mapped declares a field carrying a custom semantic mapping over the given
// primitive kind. fallible marks whether the mapping's decode can reject
// bit patterns; it gates which accessors the field exposes and is fixed
// here, at build time, not rechecked per call. Reads and writes go through
// ReadMapped and WriteMapped with the caller's Mapping implementation.
func (b *Builder) Mapped(name string, underlying Kind, fallible bool) *Builder {
	return b.add(fieldSpec{
		name:    name,
		kind:    underlying,
		size:    underlying.Width(),
		mapped:  true,
		canFail: fallible || underlying.canFail(),
	})
}

// Build resolves every field's offset and size by cumulative summation and
// returns the immutable layout. It rejects duplicate field names, open
// fields anywhere but last, custom mappings over non-primitive kinds and
// byte arrays of negative size.
func (b *Builder) Build() (*Layout, error) {
	l := &Layout{
		byName: make(map[string]int, len(b.fields)),
		name:   b.name,
		fields: make([]Field, 0, len(b.fields)),
		order:  b.order,
	}

	offset := 0
	open := false
	for i, spec := range b.fields {
		if spec.name == "" {
			return nil, fmt.Errorf("layout %q: field %d has no name", b.name, i)
		}
		if _, dup := l.byName[spec.name]; dup {
			return nil, fmt.Errorf("layout %q: duplicate field %q", b.name, spec.name)
		}
		if open {
			return nil, fmt.Errorf("layout %q: field %q follows an open-ended field", b.name, spec.name)
		}

		if spec.mapped && !spec.kind.IsPrimitive() {
			return nil, fmt.Errorf("layout %q: field %q maps non-primitive kind %s", b.name, spec.name, spec.kind)
		}

		size := spec.size
		inner := spec.inner
		switch spec.kind {
		case KindBytes:
			if size < 0 {
				return nil, fmt.Errorf("layout %q: field %q has negative size %d", b.name, spec.name, size)
			}
		case KindNested:
			if inner == nil {
				return nil, fmt.Errorf("layout %q: field %q nests a nil layout", b.name, spec.name)
			}
			inner = inner.withOrder(b.order)
			if t, ok := inner.TotalSize(); ok {
				size = t
			} else {
				size = SizeOpen
			}
		}

		if size == SizeOpen {
			open = true
		}

		l.byName[spec.name] = len(l.fields)
		l.fields = append(l.fields, Field{
			inner:   inner,
			name:    spec.name,
			kind:    spec.kind,
			offset:  offset,
			size:    size,
			order:   b.order,
			index:   i,
			nonZero: spec.nonZero,
			mapped:  spec.mapped,
			canFail: spec.canFail,
		})
		if size != SizeOpen {
			offset += size
		}
	}

	if open {
		l.total = SizeOpen
	} else {
		l.total = offset
	}

	Logger().Debug("layout resolved",
		zap.String("layout", l.name),
		zap.Stringer("order", l.order),
		zap.Int("fields", len(l.fields)),
		zap.Int("total_size", l.total),
	)
	return l, nil
}

// MustBuild is Build, panicking on a rejected layout. Intended for layouts
// defined at package init time.
func (b *Builder) MustBuild() *Layout {
	l, err := b.Build()
	if err != nil {
		panic("bytelayout: " + err.Error())
	}
	return l
}
