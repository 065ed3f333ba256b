package validkit

import "cmp"

// Violation codes of the two-field relation constraints.
const (
	CodeMustMatchNotMatching   = "must-match.not-matching"
	CodeMustDefineRangeInvalid = "must-define-range.invalid-range"
)

// Related packages one of a pair of related field values together with its
// label. Relation constraints never reach into a larger structure; the
// caller supplies both halves explicitly.
type Related[T any] struct {
	Name  string
	Value T
}

// RelatedField labels a field value for a relation check.
func RelatedField[T any](name string, value T) Related[T] {
	return Related[T]{Name: name, Value: value}
}

// Pair holds two related values that passed a relation check together.
type Pair[T any] struct {
	First, Second T
}

// ValidateMustMatch checks that two related field values are equal. Only
// equality is required of the element type, not an ordering. The violation
// is attributed to the surrounding context and carries both fields as
// parameters.
func ValidateMustMatch[T comparable](ctx Context, first, second Related[T]) (Validated[Pair[T]], error) {
	if first.Value != second.Value {
		return Validated[Pair[T]]{}, fail(ctx, CodeMustMatchNotMatching,
			Param{Name: first.Name, Value: valueOf(first.Value)},
			Param{Name: second.Name, Value: valueOf(second.Value)},
		)
	}
	return validated(Pair[T]{First: first.Value, Second: second.Value}), nil
}

// RangeRelation selects how a pair of fields must define a range.
type RangeRelation uint8

const (
	// InclusiveRange accepts first <= second.
	InclusiveRange RangeRelation = iota
	// ExclusiveRange accepts first < second.
	ExclusiveRange
)

// ValidateMustDefineRange checks that two related field values legitimately
// define a non-inverted range, e.g. valid_from and valid_until.
func ValidateMustDefineRange[T cmp.Ordered](ctx Context, relation RangeRelation, first, second Related[T]) (Validated[Pair[T]], error) {
	ok := first.Value < second.Value
	if relation == InclusiveRange {
		ok = ok || first.Value == second.Value
	}
	if !ok {
		return Validated[Pair[T]]{}, fail(ctx, CodeMustDefineRangeInvalid,
			Param{Name: first.Name, Value: valueOf(first.Value)},
			Param{Name: second.Name, Value: valueOf(second.Value)},
			Param{Name: "inclusive", Value: Bool(relation == InclusiveRange)},
		)
	}
	return validated(Pair[T]{First: first.Value, Second: second.Value}), nil
}
