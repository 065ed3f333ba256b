// Package validkit provides a composable, type-safe validation engine: small
// reusable validation functions over generic property interfaces, producing
// one uniform, accumulable error representation whether the violated rule is
// a field constraint, a cross-field relation, or an application-state
// invariant.
//
// The package promotes declarative validation by letting you check values
// against constraint descriptors (Length, CharCount, Bound, Pattern, ...)
// through generic ValidateX functions. Each check returns either the
// unchanged value wrapped as Validated, or a ValidationError holding
// machine-readable violations attributed to a context path. Sibling outcomes
// are folded together with Join, which accumulates every violation instead
// of short-circuiting at the first one.
//
// # Architecture
//
// Each source file groups one concern: the Value payload model (`value.go`),
// the property interfaces and builtin adapters (`property.go`,
// `property_types.go`), context path tracking (`context.go`), the violation
// and accumulation model (`violation.go`, `validation.go`), and one
// `*_rules.go` file per constraint family. There is no hidden global state:
// every validation call is a pure function of its inputs and context, so the
// package is completely stateless and goroutine-safe.
//
// Constraints are implemented generically against property interfaces
// (HasLength, HasCharCount, HasEmptyValue, HasMember), never against
// concrete types. Supporting a new container type means implementing the
// relevant property; every applicable constraint then works for it. A
// missing property makes the (constraint, type) pairing a compile error, not
// a runtime failure.
//
// # Usage
//
//	ctx := validkit.Root()
//	err := validkit.Join(
//		check(validkit.ValidateLength(ctx.Field("username"), validkit.MustLengthBetween(3, 32), validkit.Str(username))),
//		check(validkit.ValidateCharCount(ctx.Field("password"), validkit.MinCharCount(12), validkit.Str(password))),
//		check(validkit.ValidateBound(ctx.Field("age"), validkit.MustBetween(18, 130), age)),
//		check(validkit.ValidateMustMatch(ctx,
//			validkit.RelatedField("password", password),
//			validkit.RelatedField("password_confirmation", confirmation))),
//	)
//	if verrs, ok := validkit.AsValidationError(err); ok {
//		for _, violation := range verrs.All() {
//			// violation.Path(), violation.Code, violation.Params
//		}
//	}
//
// where check discards the Validated wrapper when only the outcome matters:
//
//	func check[T any](_ validkit.Validated[T], err error) error { return err }
//
// # Error Handling
//
// Two disjoint error classes exist. Data-dependent validation failures are
// always *ValidationError values, extractable with errors.As or
// AsValidationError. Malformed constraint parameters and out-of-range Value
// conversions are construction errors wrapping ErrInvalidConstraint or
// ErrValueOutOfRange; they surface at the construction call site and are
// never accumulated into violations. No input data can make a validation
// call panic.
//
// # Error Codes
//
// Every violation carries a stable code namespaced as
// <constraint-family>.<sub-kind> in dotted lower-kebab form, e.g.
// "length.too-short" or "must-match.not-matching", suitable for
// message-catalog lookup. The engine never embeds natural-language text;
// rendering and localization belong to the caller.
package validkit
