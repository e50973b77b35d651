package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: KindZeroValue},
			want: "zero_value",
		},
		{
			name: "with field",
			err:  &Error{Kind: KindInvalidBool, Field: "flag"},
			want: "invalid_bool at field flag",
		},
		{
			name: "with detail",
			err:  &Error{Kind: KindInvalidChar, Field: "ch", Detail: "0xd800 is not a Unicode scalar value"},
			want: "invalid_char at field ch: 0xd800 is not a Unicode scalar value",
		},
		{
			name: "with cause",
			err:  &Error{Kind: KindMapping, Field: "state", Cause: fmt.Errorf("unknown state 9")},
			want: "mapping at field state (caused by: unknown state 9)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidBool("flag", 0x02)

	if !errors.Is(err, &Error{Kind: KindInvalidBool}) {
		t.Error("expected match on kind")
	}
	if errors.Is(err, &Error{Kind: KindInvalidChar}) {
		t.Error("unexpected match on different kind")
	}
}

func TestError_As(t *testing.T) {
	var err error = ZeroValue("id")

	var derr *Error
	if !errors.As(err, &derr) {
		t.Fatal("errors.As failed")
	}
	if derr.Field != "id" {
		t.Errorf("field: got %q, want %q", derr.Field, "id")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("bad value")
	err := Mapping("state", uint8(9), cause)

	if !errors.Is(err, cause) {
		t.Error("expected unwrap to reach cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(KindMapping).
		Field("state").
		Value(uint8(9)).
		Detail("unknown state %d", 9).
		Build()

	if err.Kind != KindMapping {
		t.Errorf("kind: got %q", err.Kind)
	}
	if err.Field != "state" {
		t.Errorf("field: got %q", err.Field)
	}
	if err.Value != uint8(9) {
		t.Errorf("value: got %v", err.Value)
	}
	if err.Detail != "unknown state 9" {
		t.Errorf("detail: got %q", err.Detail)
	}
}

func TestConstructors(t *testing.T) {
	if got := InvalidBool("f", 0xab).Error(); got != "invalid_bool at field f: byte 0xab is not a valid boolean" {
		t.Errorf("InvalidBool: %q", got)
	}
	if got := InvalidChar("c", 0xd800).Error(); got != "invalid_char at field c: 0xd800 is not a Unicode scalar value" {
		t.Errorf("InvalidChar: %q", got)
	}
	if got := ZeroValue("n").Error(); got != "zero_value at field n: stored value is zero" {
		t.Errorf("ZeroValue: %q", got)
	}
}
