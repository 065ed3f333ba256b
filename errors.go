package validkit

import "errors"

// Construction and conversion errors. These are programmer errors detected at
// the point of construction; they are never accumulated into a
// ValidationError.
var (
	// ErrInvalidConstraint is returned when constraint parameters are
	// internally inconsistent, e.g. a range whose minimum exceeds its maximum.
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrValueOutOfRange is returned when a fallible Value conversion cannot
	// represent the source magnitude in the target kind.
	ErrValueOutOfRange = errors.New("value out of range")
)
