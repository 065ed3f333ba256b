package validkit

// Violation codes of the Digits constraint.
const (
	CodeDigitsTooManyInteger  = "digits.too-many-integer"
	CodeDigitsTooManyFraction = "digits.too-many-fraction"
)

// Digits limits the number of integer and fraction digits of a decimal
// number. It is the only builtin constraint that can record two violations
// in one check, when both limits are exceeded at once.
type Digits struct {
	// Integer is the maximum number of digits to the left of the decimal
	// point.
	Integer uint64
	// Fraction is the maximum number of digits to the right of the decimal
	// point.
	Fraction uint64
}

// ValidateDigits checks the digit counts of any value with the
// HasDecimalDigits property.
func ValidateDigits[T HasDecimalDigits](ctx Context, c Digits, v T) (Validated[T], error) {
	integer := v.IntegerDigits()
	fraction := v.FractionDigits()

	var violations []Violation
	if integer > c.Integer {
		violations = append(violations, Violation{
			Code:     CodeDigitsTooManyInteger,
			Segments: ctx.Segments(),
			Params: []Param{
				{Name: "max", Value: uintValue(c.Integer)},
				{Name: "actual", Value: uintValue(integer)},
			},
		})
	}
	if fraction > c.Fraction {
		violations = append(violations, Violation{
			Code:     CodeDigitsTooManyFraction,
			Segments: ctx.Segments(),
			Params: []Param{
				{Name: "max", Value: uintValue(c.Fraction)},
				{Name: "actual", Value: uintValue(fraction)},
			},
		})
	}
	if len(violations) > 0 {
		return Validated[T]{}, newValidationError(violations...)
	}
	return validated(v), nil
}
