package bytelayout

import "fmt"

// View binds a layout to one concrete storage region so call sites can
// access fields repeatedly without re-passing the storage. The view holds
// the storage for its own lifetime and nothing else; individual accessors
// retain nothing.
type View struct {
	layout  *Layout
	storage *Storage
}

// NewView binds layout to storage. Storage shorter than the layout's
// minimum bind length (its total size, or the open field's offset for
// open-ended layouts) is a contract violation and panics: the caller paired
// a buffer with a layout it was not defined for.
func NewView(layout *Layout, storage *Storage) *View {
	if storage.Len() < layout.minBind() {
		panic(fmt.Sprintf("bytelayout: storage too short for layout %q: need at least %d bytes, have %d",
			layout.name, layout.minBind(), storage.Len()))
	}
	return &View{layout: layout, storage: storage}
}

// View binds the layout to storage. Shorthand for NewView.
func (l *Layout) View(storage *Storage) *View {
	return NewView(l, storage)
}

// Layout returns the layout this view is bound to.
func (v *View) Layout() *Layout { return v.layout }

// Storage returns the bound storage handle.
func (v *View) Storage() *Storage { return v.storage }

// Bytes returns the bound region for reading.
func (v *View) Bytes() []byte { return v.storage.Bytes() }

// IntoInner consumes the view's storage and returns the owned buffer.
// Only valid when the storage is owned.
func (v *View) IntoInner() []byte { return v.storage.IntoInner() }

func (v *View) mutable() []byte { return v.storage.MutableBytes() }

// Field returns an accessor for the named field, bound to this view's
// storage.
func (v *View) Field(name string) FieldView {
	return FieldView{field: v.layout.Field(name), view: v}
}

// FieldAt returns an accessor for the i-th field in declaration order.
func (v *View) FieldAt(i int) FieldView {
	return FieldView{field: v.layout.FieldAt(i), view: v}
}

// Nested returns a sub-view over the named nested field, scoped to the
// field's byte range. The sub-view shares the storage region; its mode
// follows the parent's (owned parents hand out mutable sub-views, since a
// sub-range cannot be extracted on its own).
func (v *View) Nested(name string) *View {
	return v.Field(name).Nested()
}

// FieldView is a single field bound to a view's storage. Mutating methods
// are only available when the storage mode permits writes; calling one on a
// read-only view panics.
type FieldView struct {
	field *Field
	view  *View
}

// Field returns the underlying field descriptor.
func (fv FieldView) Field() *Field { return fv.field }

// Offset returns the field's starting offset within the bound storage.
func (fv FieldView) Offset() int { return fv.field.offset }

// Size returns the field's size in bytes. For open-ended fields the size is
// resolved here, against the bound storage's actual length; this is the one
// place size resolution happens at access time rather than build time.
func (fv FieldView) Size() int {
	return fv.field.SizeOn(fv.view.storage.Len())
}

func (fv FieldView) Uint8() uint8   { return fv.field.Uint8(fv.view.Bytes()) }
func (fv FieldView) Uint16() uint16 { return fv.field.Uint16(fv.view.Bytes()) }
func (fv FieldView) Uint32() uint32 { return fv.field.Uint32(fv.view.Bytes()) }
func (fv FieldView) Uint64() uint64 { return fv.field.Uint64(fv.view.Bytes()) }

// Uint128 reads the field as an unsigned 128-bit integer.
func (fv FieldView) Uint128() Uint128 { return fv.field.Uint128(fv.view.Bytes()) }

func (fv FieldView) Int8() int8   { return fv.field.Int8(fv.view.Bytes()) }
func (fv FieldView) Int16() int16 { return fv.field.Int16(fv.view.Bytes()) }
func (fv FieldView) Int32() int32 { return fv.field.Int32(fv.view.Bytes()) }
func (fv FieldView) Int64() int64 { return fv.field.Int64(fv.view.Bytes()) }

// Int128 reads the field as a signed 128-bit integer.
func (fv FieldView) Int128() Int128 { return fv.field.Int128(fv.view.Bytes()) }

func (fv FieldView) Float32() float32 { return fv.field.Float32(fv.view.Bytes()) }
func (fv FieldView) Float64() float64 { return fv.field.Float64(fv.view.Bytes()) }

func (fv FieldView) SetUint8(v uint8)   { fv.field.PutUint8(fv.view.mutable(), v) }
func (fv FieldView) SetUint16(v uint16) { fv.field.PutUint16(fv.view.mutable(), v) }
func (fv FieldView) SetUint32(v uint32) { fv.field.PutUint32(fv.view.mutable(), v) }
func (fv FieldView) SetUint64(v uint64) { fv.field.PutUint64(fv.view.mutable(), v) }

func (fv FieldView) SetUint128(v Uint128) { fv.field.PutUint128(fv.view.mutable(), v) }

func (fv FieldView) SetInt8(v int8)   { fv.field.PutInt8(fv.view.mutable(), v) }
func (fv FieldView) SetInt16(v int16) { fv.field.PutInt16(fv.view.mutable(), v) }
func (fv FieldView) SetInt32(v int32) { fv.field.PutInt32(fv.view.mutable(), v) }
func (fv FieldView) SetInt64(v int64) { fv.field.PutInt64(fv.view.mutable(), v) }

func (fv FieldView) SetInt128(v Int128) { fv.field.PutInt128(fv.view.mutable(), v) }

func (fv FieldView) SetFloat32(v float32) { fv.field.PutFloat32(fv.view.mutable(), v) }
func (fv FieldView) SetFloat64(v float64) { fv.field.PutFloat64(fv.view.mutable(), v) }

// Bool reads the field as a boolean; any byte other than 0 or 1 is a
// decode error.
func (fv FieldView) Bool() (bool, error) { return fv.field.Bool(fv.view.Bytes()) }

// SetBool writes the field as 0 or 1.
func (fv FieldView) SetBool(v bool) { fv.field.PutBool(fv.view.mutable(), v) }

// Char reads the field as a Unicode scalar value.
func (fv FieldView) Char() (rune, error) { return fv.field.Char(fv.view.Bytes()) }

// SetChar writes the field's code point.
func (fv FieldView) SetChar(r rune) { fv.field.PutChar(fv.view.mutable(), r) }

// Bytes returns the field's raw byte range for reading, without copying.
// Valid for fixed, open-ended and nested fields.
func (fv FieldView) Bytes() []byte { return fv.field.Bytes(fv.view.Bytes()) }

// MutableBytes returns the field's raw byte range for writing. This is the
// literal zero-copy path: the caller mutates the storage in place.
func (fv FieldView) MutableBytes() []byte { return fv.field.Bytes(fv.view.mutable()) }

// ReadAny is the uniform fallible accessor bound to the view's storage.
func (fv FieldView) ReadAny() (any, error) { return fv.field.ReadAny(fv.view.Bytes()) }

// WriteAny encodes a boxed value into the field.
func (fv FieldView) WriteAny(value any) error { return fv.field.WriteAny(fv.view.mutable(), value) }

// Nested returns a sub-view scoped to this field's byte range. The field
// must be of a nested kind.
func (fv FieldView) Nested() *View {
	f := fv.field
	if f.kind != KindNested {
		panic(fmt.Sprintf("bytelayout: field %q is %s, not nested", f.name, f.kind))
	}
	end := f.offset + f.SizeOn(fv.view.storage.Len())
	sub := fv.view.storage.subregion(f.offset, end)
	return NewView(f.inner, sub)
}
