// Package errors provides the structured decode-error type for bytelayout.
//
// Only decoding can fail in bytelayout: a field's stored bit pattern may not
// be a valid value of the field's domain type. Encoding is total by
// construction, and contract violations between a layout and its storage are
// programmer errors that panic instead of returning a value. Every error
// produced by this package is therefore data-dependent and caller-recoverable.
//
// Errors are categorized by Kind and carry the field name and offending
// value:
//
//	v, err := view.Field("flag").Bool()
//	if err != nil {
//		var derr *errors.Error
//		if stderrors.As(err, &derr) && derr.Kind == errors.KindInvalidBool {
//			// handle the bad byte in derr.Value
//		}
//	}
//
// Custom semantic mappings construct errors with the Builder:
//
//	err := errors.New(errors.KindMapping).
//		Field("state").
//		Value(raw).
//		Detail("unknown state %d", raw).
//		Build()
//
// All errors support the standard errors.Is/As machinery.
package errors
