package validkit

// CodeNotEmptyIsEmpty is the violation code of the NotEmpty constraint.
const CodeNotEmptyIsEmpty = "not-empty.is-empty"

// ValidateNotEmpty checks that a value with the HasEmptyValue property is
// not empty. The violation carries no parameters; emptiness has no
// meaningful actual value to report.
func ValidateNotEmpty[T HasEmptyValue](ctx Context, v T) (Validated[T], error) {
	if v.IsEmptyValue() {
		return Validated[T]{}, fail(ctx, CodeNotEmptyIsEmpty)
	}
	return validated(v), nil
}
