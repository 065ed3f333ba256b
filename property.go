package validkit

// Property interfaces describe structural capabilities of a type, not rules.
// Builtin constraints are implemented generically against these interfaces,
// so supporting a new container type means implementing the relevant
// property, never re-implementing a constraint. A missing implementation
// rejects the (constraint, type) pairing at compile time.

// HasEmptyValue is the emptiness property of container-like types.
type HasEmptyValue interface {
	// IsEmptyValue reports whether the value is empty.
	IsEmptyValue() bool
}

// HasLength is the length property of container-like types. The reported
// length is the element or byte count, whichever is natural for the type.
type HasLength interface {
	// Length returns the length of the value.
	Length() int
}

// HasCharCount is the character count property. The character count may
// differ from the length when characters occupy more than one byte, as for
// UTF-8 text.
type HasCharCount interface {
	// CharCount returns the number of logical characters.
	CharCount() int
}

// HasMember is the membership property of container-like types.
type HasMember[E any] interface {
	// HasMember reports whether the given element is part of the value.
	HasMember(element E) bool
}

// HasCheckedValue is the checked property of types with a boolean meaning,
// e.g. yes/no, agreed/rejected, open/closed.
type HasCheckedValue interface {
	// IsCheckedValue reports whether the value represents "checked".
	IsCheckedValue() bool
}

// HasZeroValue is the zero property of numeric-like types. It is the
// extension point through which provider types opt into the NonZero
// constraint; primitive numerics use the Numeric type set directly.
type HasZeroValue interface {
	// IsZeroValue reports whether the value is the type's zero.
	IsZeroValue() bool
}

// HasDecimalDigits are the digit-count properties of a decimal number.
type HasDecimalDigits interface {
	// IntegerDigits returns the number of digits to the left of the decimal
	// point.
	IntegerDigits() uint64
	// FractionDigits returns the number of digits to the right of the
	// decimal point.
	FractionDigits() uint64
}

// Numeric is the type set of primitive numeric types accepted by the
// NonZero constraint.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
