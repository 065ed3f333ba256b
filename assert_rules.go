package validkit

// Violation codes of the assertion constraints.
const (
	CodeAssertTrueNotTrue   = "assert-true.not-true"
	CodeAssertFalseNotFalse = "assert-false.not-false"
)

// ValidateAssertTrue checks that a value with the HasCheckedValue property
// represents "checked", e.g. an accepted terms-of-service flag.
func ValidateAssertTrue[T HasCheckedValue](ctx Context, v T) (Validated[T], error) {
	if !v.IsCheckedValue() {
		return Validated[T]{}, fail(ctx, CodeAssertTrueNotTrue,
			Param{Name: "expected", Value: Bool(true)},
			Param{Name: "actual", Value: Bool(false)},
		)
	}
	return validated(v), nil
}

// ValidateAssertFalse checks that a value with the HasCheckedValue property
// does not represent "checked".
func ValidateAssertFalse[T HasCheckedValue](ctx Context, v T) (Validated[T], error) {
	if v.IsCheckedValue() {
		return Validated[T]{}, fail(ctx, CodeAssertFalseNotFalse,
			Param{Name: "expected", Value: Bool(false)},
			Param{Name: "actual", Value: Bool(true)},
		)
	}
	return validated(v), nil
}
