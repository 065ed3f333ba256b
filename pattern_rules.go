package validkit

import (
	"fmt"
	"regexp"
)

// CodePatternNotMatching is the violation code of the Pattern constraint.
const CodePatternNotMatching = "pattern.not-matching"

// Matcher is the pattern-provider boundary: a precompiled pattern exposing a
// single match operation plus its source form for reporting.
// *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
	String() string
}

// Pattern constrains text to match a precompiled pattern.
type Pattern struct {
	matcher Matcher
}

// NewPattern wraps a precompiled pattern. It returns an error wrapping
// ErrInvalidConstraint for a nil matcher.
func NewPattern(m Matcher) (Pattern, error) {
	if m == nil {
		return Pattern{}, fmt.Errorf("%w: pattern matcher is nil", ErrInvalidConstraint)
	}
	return Pattern{matcher: m}, nil
}

// MustPattern is like NewPattern but panics on a nil matcher.
func MustPattern(m Matcher) Pattern {
	c, err := NewPattern(m)
	if err != nil {
		panic(err)
	}
	return c
}

// CompilePattern compiles a regular expression into a Pattern. A malformed
// expression is reported as an error wrapping ErrInvalidConstraint.
func CompilePattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %v", ErrInvalidConstraint, err)
	}
	return Pattern{matcher: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on a malformed
// expression.
func MustCompilePattern(expr string) Pattern {
	c, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// ValidatePattern checks that text matches the precompiled pattern.
func ValidatePattern[T ~string](ctx Context, c Pattern, v T) (Validated[T], error) {
	if !c.matcher.MatchString(string(v)) {
		return Validated[T]{}, fail(ctx, CodePatternNotMatching,
			Param{Name: "pattern", Value: Text(c.matcher.String())},
			Param{Name: "actual", Value: Text(string(v))},
		)
	}
	return validated(v), nil
}
