package validkit

import "fmt"

// Violation codes of the CharCount constraint.
const (
	CodeCharCountTooFew   = "char-count.too-few"
	CodeCharCountTooMany  = "char-count.too-many"
	CodeCharCountNotExact = "char-count.not-exact"
)

// CharCount constrains the number of logical characters of a value within
// optional bounds. The reported actual count is always the character count,
// never the byte length, including in the too-few case. Construct through
// MinCharCount, MaxCharCount, CharCountBetween or ExactCharCount.
type CharCount struct {
	min, max       uint64
	hasMin, hasMax bool
	exact          bool
}

// MinCharCount requires the character count to be at least min.
func MinCharCount(min uint64) CharCount {
	return CharCount{min: min, hasMin: true}
}

// MaxCharCount requires the character count to be at most max.
func MaxCharCount(max uint64) CharCount {
	return CharCount{max: max, hasMax: true}
}

// CharCountBetween requires the character count to be within [min, max]. It
// returns an error wrapping ErrInvalidConstraint when min exceeds max.
func CharCountBetween(min, max uint64) (CharCount, error) {
	if min > max {
		return CharCount{}, fmt.Errorf("%w: character count minimum %d exceeds maximum %d", ErrInvalidConstraint, min, max)
	}
	return CharCount{min: min, max: max, hasMin: true, hasMax: true}, nil
}

// MustCharCountBetween is like CharCountBetween but panics on malformed
// bounds.
func MustCharCountBetween(min, max uint64) CharCount {
	c, err := CharCountBetween(min, max)
	if err != nil {
		panic(err)
	}
	return c
}

// ExactCharCount requires the character count to be exactly n.
func ExactCharCount(n uint64) CharCount {
	return CharCount{min: n, max: n, exact: true}
}

// ValidateCharCount checks the character count of any value with the
// HasCharCount property against the constraint.
func ValidateCharCount[T HasCharCount](ctx Context, c CharCount, v T) (Validated[T], error) {
	actual := uint64(v.CharCount())
	switch {
	case c.exact && actual != c.min:
		return Validated[T]{}, fail(ctx, CodeCharCountNotExact,
			Param{Name: "expected", Value: uintValue(c.min)},
			Param{Name: "actual", Value: uintValue(actual)},
		)
	case c.hasMin && actual < c.min:
		return Validated[T]{}, fail(ctx, CodeCharCountTooFew,
			Param{Name: "min", Value: uintValue(c.min)},
			Param{Name: "actual", Value: uintValue(actual)},
		)
	case c.hasMax && actual > c.max:
		return Validated[T]{}, fail(ctx, CodeCharCountTooMany,
			Param{Name: "max", Value: uintValue(c.max)},
			Param{Name: "actual", Value: uintValue(actual)},
		)
	}
	return validated(v), nil
}
