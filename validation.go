package validkit

import "errors"

// Validated marks a value that passed one specific constraint check. It
// wraps the original value unchanged. Passing one constraint implies nothing
// about any other: composing constraints means validating again or chaining.
type Validated[T any] struct {
	value T
}

func validated[T any](value T) Validated[T] {
	return Validated[T]{value: value}
}

// Unwrap returns the validated value.
func (v Validated[T]) Unwrap() T {
	return v.value
}

// Join folds the outcomes of sibling validations into one result. Nil
// outcomes are skipped, validation errors are merged in argument order, and
// the combined ValidationError keeps every violation of every operand. A
// non-validation error (a construction error leaking into the fold) is
// returned as-is immediately: programmer errors are not accumulated.
func Join(outcomes ...error) error {
	var merged *ValidationError
	for _, err := range outcomes {
		if err == nil {
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		merged = merged.Merge(ve)
	}
	if merged == nil {
		return nil
	}
	return merged
}

// Nest re-attributes every violation of a child validation outcome under the
// given parent context, prefixing each violation's path. It is the glue for
// validating nested structures with their own local contexts. Success and
// non-validation errors pass through unchanged.
func Nest(ctx Context, outcome error) error {
	if outcome == nil {
		return nil
	}
	ve, ok := AsValidationError(outcome)
	if !ok {
		return outcome
	}
	prefix := ctx.Segments()
	violations := ve.All()
	nested := make([]Violation, len(violations))
	for i, v := range violations {
		segments := make([]Segment, 0, len(prefix)+len(v.Segments))
		segments = append(segments, prefix...)
		segments = append(segments, v.Segments...)
		nested[i] = Violation{Code: v.Code, Segments: segments, Params: v.Params}
	}
	return newValidationError(nested...)
}
