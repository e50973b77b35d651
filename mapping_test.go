package bytelayout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytelayout/bytelayout/errors"
)

// Celsius round-trips through an f64 field without restricting the domain.
type celsius float64

type celsiusMapping struct{}

func (celsiusMapping) Decode(v float64) (celsius, error) { return celsius(v), nil }
func (celsiusMapping) Encode(c celsius) float64          { return float64(c) }

// weekday rejects wire values outside 0..6.
type weekday uint8

type weekdayMapping struct{}

func (weekdayMapping) Decode(v uint8) (weekday, error) {
	if v > 6 {
		return 0, fmt.Errorf("%d is not a weekday", v)
	}
	return weekday(v), nil
}

func (weekdayMapping) Encode(d weekday) uint8 { return uint8(d) }

func mappedLayout(t *testing.T) *Layout {
	t.Helper()
	l, err := NewBuilder("reading", BigEndian).
		Mapped("temperature", KindF64, false).
		Mapped("day", KindU8, true).
		Build()
	require.NoError(t, err)
	return l
}

func TestMappingRoundTrip(t *testing.T) {
	l := mappedLayout(t)
	data := make([]byte, 9)

	WriteMapped[float64, celsius](celsiusMapping{}, l.Field("temperature"), data, 21.5)
	got, err := ReadMapped[float64, celsius](celsiusMapping{}, l.Field("temperature"), data)
	require.NoError(t, err)
	assert.Equal(t, celsius(21.5), got)

	WriteMapped[uint8, weekday](weekdayMapping{}, l.Field("day"), data, 3)
	day, err := ReadMapped[uint8, weekday](weekdayMapping{}, l.Field("day"), data)
	require.NoError(t, err)
	assert.Equal(t, weekday(3), day)
}

func TestMappingDecodeFailure(t *testing.T) {
	l := mappedLayout(t)
	data := make([]byte, 9)
	data[8] = 200

	_, err := ReadMapped[uint8, weekday](weekdayMapping{}, l.Field("day"), data)
	require.Error(t, err)

	derr, ok := err.(*errors.Error)
	require.True(t, ok, "decode failures carry the structured error type")
	assert.Equal(t, errors.KindMapping, derr.Kind)
	assert.Equal(t, "day", derr.Field)
	assert.Equal(t, uint8(200), derr.Value)
	assert.ErrorContains(t, err, "not a weekday")
}

func TestMappingErrorFieldFilled(t *testing.T) {
	// A mapping that returns a bare *errors.Error gets the field name
	// attached by the accessor, and its kind is preserved.
	l := NewBuilder("l", BigEndian).Mapped("id", KindU32, true).MustBuild()
	data := make([]byte, 4)

	_, err := ReadMapped[uint32, uint32](NonZero[uint32]{}, l.Field("id"), data)
	require.Error(t, err)

	derr := err.(*errors.Error)
	assert.Equal(t, errors.KindZeroValue, derr.Kind)
	assert.Equal(t, "id", derr.Field)
}

func TestMustReadMapped(t *testing.T) {
	l := mappedLayout(t)
	data := make([]byte, 9)

	WriteMapped[float64, celsius](celsiusMapping{}, l.Field("temperature"), data, -4)
	got := MustReadMapped[float64, celsius](celsiusMapping{}, l.Field("temperature"), data)
	assert.Equal(t, celsius(-4), got)

	assert.Panics(t, func() {
		MustReadMapped[uint8, weekday](weekdayMapping{}, l.Field("day"), data)
	}, "MustReadMapped on a fallible field")
}

func TestMappedViewAccess(t *testing.T) {
	l := mappedLayout(t)
	view := l.View(Borrow(make([]byte, 9)))

	WriteMappedView[float64, celsius](celsiusMapping{}, view.Field("temperature"), 36.6)
	got, err := ReadMappedView[float64, celsius](celsiusMapping{}, view.Field("temperature"))
	require.NoError(t, err)
	assert.Equal(t, celsius(36.6), got)

	ro := l.View(BorrowReadOnly(view.Bytes()))
	got, err = ReadMappedView[float64, celsius](celsiusMapping{}, ro.Field("temperature"))
	require.NoError(t, err)
	assert.Equal(t, celsius(36.6), got)

	assert.Panics(t, func() {
		WriteMappedView[float64, celsius](celsiusMapping{}, ro.Field("temperature"), 0)
	}, "write through read-only storage")
}

func TestNonZeroMapping(t *testing.T) {
	l := NewBuilder("l", LittleEndian).
		Mapped("small", KindU8, true).
		Mapped("wide", KindI64, true).
		MustBuild()
	data := make([]byte, 9)

	WriteMapped[uint8, uint8](NonZero[uint8]{}, l.Field("small"), data, 7)
	v, err := ReadMapped[uint8, uint8](NonZero[uint8]{}, l.Field("small"), data)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), v)

	WriteMapped[int64, int64](NonZero[int64]{}, l.Field("wide"), data, -1)
	w, err := ReadMapped[int64, int64](NonZero[int64]{}, l.Field("wide"), data)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), w)

	clear(data[1:])
	_, err = ReadMapped[int64, int64](NonZero[int64]{}, l.Field("wide"), data)
	require.Error(t, err)
	assert.Equal(t, errors.KindZeroValue, err.(*errors.Error).Kind)

	assert.Panics(t, func() {
		WriteMapped[uint8, uint8](NonZero[uint8]{}, l.Field("small"), data, 0)
	}, "encoding zero through NonZero")
}

func TestMappingKindMismatchPanics(t *testing.T) {
	l := mappedLayout(t)
	data := make([]byte, 9)

	assert.Panics(t, func() {
		// temperature is f64, not u8.
		ReadMapped[uint8, weekday](weekdayMapping{}, l.Field("temperature"), data)
	})
}

func TestMappedFieldDynamicAccess(t *testing.T) {
	// ReadAny and WriteAny see the wire primitive; the mapping layer is
	// invisible to the dynamic surface.
	l := mappedLayout(t)
	data := make([]byte, 9)

	require.NoError(t, l.Field("day").WriteAny(data, uint8(5)))
	v, err := l.Field("day").ReadAny(data)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), v)
}

func TestMappedFieldTypedAccessorPanics(t *testing.T) {
	l := mappedLayout(t)
	data := make([]byte, 9)

	assert.Panics(t, func() {
		l.Field("day").Uint8(data)
	}, "typed accessor on a mapped field")
}
