package validkit

// CodeContainsMissingElement is the violation code of the Contains
// constraint.
const CodeContainsMissingElement = "contains.missing-element"

// ValidateContains checks that the value contains the given element, for any
// value with the HasMember property: substrings of text, elements of
// sequences and sets, keys of maps.
func ValidateContains[T HasMember[E], E any](ctx Context, element E, v T) (Validated[T], error) {
	if !v.HasMember(element) {
		return Validated[T]{}, fail(ctx, CodeContainsMissingElement,
			Param{Name: "element", Value: valueOf(element)},
		)
	}
	return validated(v), nil
}
