package validkit

// CodeNonZeroIsZero is the violation code of the NonZero constraint.
const CodeNonZeroIsZero = "non-zero.is-zero"

// ValidateNonZero checks that a primitive numeric value is not its type's
// zero.
func ValidateNonZero[T Numeric](ctx Context, v T) (Validated[T], error) {
	var zero T
	if v == zero {
		return Validated[T]{}, fail(ctx, CodeNonZeroIsZero,
			Param{Name: "actual", Value: valueOf(v)},
		)
	}
	return validated(v), nil
}

// ValidateNonZeroValue is the NonZero check for provider types carrying the
// HasZeroValue property, e.g. arbitrary-precision decimals.
func ValidateNonZeroValue[T HasZeroValue](ctx Context, v T) (Validated[T], error) {
	if v.IsZeroValue() {
		return Validated[T]{}, fail(ctx, CodeNonZeroIsZero,
			Param{Name: "actual", Value: valueOf(v)},
		)
	}
	return validated(v), nil
}
