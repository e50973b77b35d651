package bytelayout

import (
	"strings"
	"testing"
)

func TestOffsetContiguity(t *testing.T) {
	l, err := NewBuilder("mixed", LittleEndian).
		U8("a").
		U16("b").
		U32("c").
		U64("d").
		U128("e").
		I8("f").
		F32("g").
		F64("h").
		Bytes("i", 5).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	wantOffsets := []int{0, 1, 3, 7, 15, 31, 32, 36, 44}
	wantSizes := []int{1, 2, 4, 8, 16, 1, 4, 8, 5}
	for i := 0; i < l.NumFields(); i++ {
		f := l.FieldAt(i)
		if f.Offset() != wantOffsets[i] {
			t.Errorf("field %s: offset %d, want %d", f.Name(), f.Offset(), wantOffsets[i])
		}
		if f.Size() != wantSizes[i] {
			t.Errorf("field %s: size %d, want %d", f.Name(), f.Size(), wantSizes[i])
		}
	}

	total, ok := l.TotalSize()
	if !ok || total != 49 {
		t.Errorf("total size: got %d,%v, want 49,true", total, ok)
	}
}

func TestUnitFieldIsZeroWidth(t *testing.T) {
	l := NewBuilder("with_unit", BigEndian).
		U16("before").
		Unit("nothing").
		U16("after").
		MustBuild()

	if got := l.Field("nothing").Size(); got != 0 {
		t.Errorf("unit size: got %d, want 0", got)
	}
	if got := l.Field("after").Offset(); got != 2 {
		t.Errorf("field after unit: offset %d, want 2", got)
	}
	if total, _ := l.TotalSize(); total != 4 {
		t.Errorf("total: got %d, want 4", total)
	}
}

func TestEmptyLayout(t *testing.T) {
	l, err := NewBuilder("empty", BigEndian).Build()
	if err != nil {
		t.Fatal(err)
	}
	if l.NumFields() != 0 {
		t.Errorf("fields: got %d", l.NumFields())
	}
	if total, ok := l.TotalSize(); !ok || total != 0 {
		t.Errorf("total: got %d,%v, want 0,true", total, ok)
	}
}

func TestOpenLayoutHasNoTotalSize(t *testing.T) {
	l := NewBuilder("open", BigEndian).
		U32("head").
		OpenBytes("tail").
		MustBuild()

	if _, ok := l.TotalSize(); ok {
		t.Error("open layout reported a total size")
	}
	tail := l.Field("tail")
	if !tail.IsOpen() {
		t.Error("tail not open")
	}
	if tail.Offset() != 4 {
		t.Errorf("tail offset: got %d, want 4", tail.Offset())
	}
	if got := l.SizeOn(100); got != 100 {
		t.Errorf("SizeOn(100): got %d, want 100", got)
	}
}

func TestBuildRejections(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		wantSub string
	}{
		{
			name:    "duplicate name",
			builder: NewBuilder("l", BigEndian).U8("x").U16("x"),
			wantSub: "duplicate field",
		},
		{
			name:    "open field mid layout",
			builder: NewBuilder("l", BigEndian).OpenBytes("rest").U8("x"),
			wantSub: "follows an open-ended field",
		},
		{
			name:    "empty field name",
			builder: NewBuilder("l", BigEndian).U8(""),
			wantSub: "has no name",
		},
		{
			name:    "negative byte array",
			builder: NewBuilder("l", BigEndian).Bytes("b", -1),
			wantSub: "negative size",
		},
		{
			name:    "nil nested layout",
			builder: NewBuilder("l", BigEndian).Nested("inner", nil),
			wantSub: "nil layout",
		},
		{
			name:    "mapping over byte array",
			builder: NewBuilder("l", BigEndian).Mapped("m", KindBytes, true),
			wantSub: "non-primitive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.builder.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not contain %q", err, tc.wantSub)
			}
		})
	}
}

func TestNestedOpenRejectedMidLayout(t *testing.T) {
	inner := NewBuilder("inner", BigEndian).
		U8("x").
		OpenBytes("rest").
		MustBuild()

	_, err := NewBuilder("outer", BigEndian).
		Nested("head", inner).
		U8("after").
		Build()
	if err == nil {
		t.Fatal("expected error for field after open-ended nested layout")
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewBuilder("l", BigEndian).U8("x").U8("x").MustBuild()
}

func TestFieldLookup(t *testing.T) {
	l := NewBuilder("l", BigEndian).U8("x").MustBuild()

	if f, ok := l.Lookup("x"); !ok || f.Name() != "x" {
		t.Error("Lookup(x) failed")
	}
	if _, ok := l.Lookup("y"); ok {
		t.Error("Lookup(y) unexpectedly succeeded")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown field")
		}
	}()
	l.Field("y")
}

func TestCanFailMarkerResolvedAtBuild(t *testing.T) {
	l := NewBuilder("l", BigEndian).
		U8("plain").
		Bool("flag").
		Char("ch").
		NonZeroU32("id").
		Mapped("custom_ok", KindU16, false).
		Mapped("custom_fail", KindU16, true).
		MustBuild()

	tests := []struct {
		field string
		want  bool
	}{
		{"plain", false},
		{"flag", true},
		{"ch", true},
		{"id", true},
		{"custom_ok", false},
		{"custom_fail", true},
	}
	for _, tc := range tests {
		if got := l.Field(tc.field).CanFail(); got != tc.want {
			t.Errorf("%s: CanFail %v, want %v", tc.field, got, tc.want)
		}
	}
}

func TestLayoutString(t *testing.T) {
	l := NewBuilder("pkt", BigEndian).
		U8("a").
		OpenBytes("rest").
		MustBuild()

	s := l.String()
	for _, sub := range []string{"pkt", "big", "a:u8@0+1", "rest:open_bytes@1+open"} {
		if !strings.Contains(s, sub) {
			t.Errorf("String() %q missing %q", s, sub)
		}
	}
}
