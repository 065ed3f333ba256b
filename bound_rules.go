package validkit

import (
	"cmp"
	"fmt"
)

// Violation codes of the Bound constraint.
const (
	CodeBoundTooLow   = "bound.too-low"
	CodeBoundTooHigh  = "bound.too-high"
	CodeBoundNotExact = "bound.not-exact"
)

// Bound constrains an ordered value within an inclusive or exclusive range.
// A well-formed Bound cannot be violated at both ends by a single value, so
// every failed check carries exactly one violation; the low end is tested
// first. Construct through AtLeast, AtMost, GreaterThan, LessThan, Between,
// BetweenExclusive or Exactly.
type Bound[T cmp.Ordered] struct {
	min, max         T
	hasMin, hasMax   bool
	minExcl, maxExcl bool
	exact            bool
}

// AtLeast requires the value to be greater than or equal to min.
func AtLeast[T cmp.Ordered](min T) Bound[T] {
	return Bound[T]{min: min, hasMin: true}
}

// GreaterThan requires the value to be strictly greater than min.
func GreaterThan[T cmp.Ordered](min T) Bound[T] {
	return Bound[T]{min: min, hasMin: true, minExcl: true}
}

// AtMost requires the value to be less than or equal to max.
func AtMost[T cmp.Ordered](max T) Bound[T] {
	return Bound[T]{max: max, hasMax: true}
}

// LessThan requires the value to be strictly less than max.
func LessThan[T cmp.Ordered](max T) Bound[T] {
	return Bound[T]{max: max, hasMax: true, maxExcl: true}
}

// Between requires the value to be within the closed range [min, max]. It
// returns an error wrapping ErrInvalidConstraint when min exceeds max.
func Between[T cmp.Ordered](min, max T) (Bound[T], error) {
	if min > max {
		return Bound[T]{}, fmt.Errorf("%w: bound minimum %v exceeds maximum %v", ErrInvalidConstraint, min, max)
	}
	return Bound[T]{min: min, max: max, hasMin: true, hasMax: true}, nil
}

// MustBetween is like Between but panics on malformed bounds.
func MustBetween[T cmp.Ordered](min, max T) Bound[T] {
	c, err := Between(min, max)
	if err != nil {
		panic(err)
	}
	return c
}

// BetweenExclusive requires the value to be within the open range
// (min, max). It returns an error wrapping ErrInvalidConstraint when the
// range is empty.
func BetweenExclusive[T cmp.Ordered](min, max T) (Bound[T], error) {
	if min >= max {
		return Bound[T]{}, fmt.Errorf("%w: open range (%v, %v) is empty", ErrInvalidConstraint, min, max)
	}
	return Bound[T]{min: min, max: max, hasMin: true, hasMax: true, minExcl: true, maxExcl: true}, nil
}

// MustBetweenExclusive is like BetweenExclusive but panics on malformed
// bounds.
func MustBetweenExclusive[T cmp.Ordered](min, max T) Bound[T] {
	c, err := BetweenExclusive(min, max)
	if err != nil {
		panic(err)
	}
	return c
}

// Exactly requires the value to equal the given one.
func Exactly[T cmp.Ordered](v T) Bound[T] {
	return Bound[T]{min: v, max: v, exact: true}
}

// ValidateBound checks an ordered value against the bound. Exclusive
// endpoints are flagged with an "exclusive" parameter in the violation.
func ValidateBound[T cmp.Ordered](ctx Context, c Bound[T], v T) (Validated[T], error) {
	switch {
	case c.exact && v != c.min:
		return Validated[T]{}, fail(ctx, CodeBoundNotExact,
			Param{Name: "expected", Value: valueOf(c.min)},
			Param{Name: "actual", Value: valueOf(v)},
		)
	case c.hasMin && (v < c.min || (c.minExcl && v == c.min)):
		params := []Param{
			{Name: "min", Value: valueOf(c.min)},
			{Name: "actual", Value: valueOf(v)},
		}
		if c.minExcl {
			params = append(params, Param{Name: "exclusive", Value: Bool(true)})
		}
		return Validated[T]{}, fail(ctx, CodeBoundTooLow, params...)
	case c.hasMax && (v > c.max || (c.maxExcl && v == c.max)):
		params := []Param{
			{Name: "max", Value: valueOf(c.max)},
			{Name: "actual", Value: valueOf(v)},
		}
		if c.maxExcl {
			params = append(params, Param{Name: "exclusive", Value: Bool(true)})
		}
		return Validated[T]{}, fail(ctx, CodeBoundTooHigh, params...)
	}
	return validated(v), nil
}
