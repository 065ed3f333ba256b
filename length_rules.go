package validkit

import "fmt"

// Violation codes of the Length constraint.
const (
	CodeLengthTooShort = "length.too-short"
	CodeLengthTooLong  = "length.too-long"
	CodeLengthNotExact = "length.not-exact"
)

// Length constrains the length of a value within optional bounds. Bounds are
// unsigned, so boundary arithmetic cannot underflow regardless of input.
// Construct through MinLength, MaxLength, LengthBetween or ExactLength.
type Length struct {
	min, max       uint64
	hasMin, hasMax bool
	exact          bool
}

// MinLength requires the length to be at least min.
func MinLength(min uint64) Length {
	return Length{min: min, hasMin: true}
}

// MaxLength requires the length to be at most max.
func MaxLength(max uint64) Length {
	return Length{max: max, hasMax: true}
}

// LengthBetween requires the length to be within [min, max]. It returns an
// error wrapping ErrInvalidConstraint when min exceeds max.
func LengthBetween(min, max uint64) (Length, error) {
	if min > max {
		return Length{}, fmt.Errorf("%w: length minimum %d exceeds maximum %d", ErrInvalidConstraint, min, max)
	}
	return Length{min: min, max: max, hasMin: true, hasMax: true}, nil
}

// MustLengthBetween is like LengthBetween but panics on malformed bounds.
func MustLengthBetween(min, max uint64) Length {
	c, err := LengthBetween(min, max)
	if err != nil {
		panic(err)
	}
	return c
}

// ExactLength requires the length to be exactly n.
func ExactLength(n uint64) Length {
	return Length{min: n, max: n, exact: true}
}

// ValidateLength checks the length of any value with the HasLength property
// against the constraint. On failure the result holds a single violation at
// the context path.
func ValidateLength[T HasLength](ctx Context, c Length, v T) (Validated[T], error) {
	actual := uint64(v.Length())
	switch {
	case c.exact && actual != c.min:
		return Validated[T]{}, fail(ctx, CodeLengthNotExact,
			Param{Name: "expected", Value: uintValue(c.min)},
			Param{Name: "actual", Value: uintValue(actual)},
		)
	case c.hasMin && actual < c.min:
		return Validated[T]{}, fail(ctx, CodeLengthTooShort,
			Param{Name: "min", Value: uintValue(c.min)},
			Param{Name: "actual", Value: uintValue(actual)},
		)
	case c.hasMax && actual > c.max:
		return Validated[T]{}, fail(ctx, CodeLengthTooLong,
			Param{Name: "max", Value: uintValue(c.max)},
			Param{Name: "actual", Value: uintValue(actual)},
		)
	}
	return validated(v), nil
}
