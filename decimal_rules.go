package validkit

import "github.com/cockroachdb/apd/v3"

// Dec adapts an arbitrary-precision decimal for the Digits and NonZero
// constraints.
type Dec struct {
	d *apd.Decimal
}

// NewDec wraps a decimal. The decimal is not copied; it must not be mutated
// while validations are in flight.
func NewDec(d *apd.Decimal) Dec {
	return Dec{d: d}
}

// IntegerDigits returns the number of digits to the left of the decimal
// point. Values below one have no integer digits.
func (d Dec) IntegerDigits() uint64 {
	digits := d.d.NumDigits() + int64(d.d.Exponent)
	if digits < 0 {
		return 0
	}
	return uint64(digits)
}

// FractionDigits returns the number of digits to the right of the decimal
// point.
func (d Dec) FractionDigits() uint64 {
	if d.d.Exponent < 0 {
		return uint64(-int64(d.d.Exponent))
	}
	return 0
}

func (d Dec) IsZeroValue() bool { return d.d.IsZero() }

func (d Dec) String() string { return d.d.String() }
