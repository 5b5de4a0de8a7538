// Package validator provides the two-phase conversion and validation
// pipeline that formify schemas are built from, usable standalone as well.
//
// Every Validator turns one raw input string into a typed canonical value
// (the convert phase) and then runs an ordered list of configured checks
// against that value (the validate phase). Conversion failures and check
// failures are reported as ValidationError values that carry the field name,
// a human-readable message, and translation metadata; the error Kind and the
// matching sentinels (ErrConversion, ErrConstraint, ErrRequired) keep the
// two failure classes distinguishable with errors.Is.
//
// # Architecture
//
// Concrete validators (String, Int, Float, Decimal, Bool, Choice, Time,
// UUID, List) are configured once through functional options and are
// immutable and goroutine-safe afterwards; all per-call state belongs to the
// caller. Constraints are expressed as Check[T] values, small rule factories
// bound to their parameters at construction, which compose in declaration
// order and fail fast: the first violated check decides the error for a
// value.
//
// Core building blocks:
//   - Validator / MultiValidator – the convert+validate contract
//   - Check[T]          – a configured, reusable constraint
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//   - Numeric interface – generic constraint used by numeric helpers
//
// # Usage
//
//	age := validator.NewInt(validator.WithIntMin(0), validator.WithIntMax(150))
//	value, err := validator.Process(age, "age", "42")
//	if err != nil {
//	    // validator.IsConversionError(err) or validator.IsConstraintError(err)
//	}
//	// value is int64(42)
//
// Standalone rule aggregation is also available without any validator:
//
//	err := validator.Apply(
//	    validator.NotBlank()("email", email),
//	    validator.MinLen(8)("password", password),
//	)
//
// # Error Handling
//
// ValidationErrors implements Error and Unwrap, so errors.Is and errors.As
// detect validation problems while preserving the per-field details, which
// can be inspected with Has, Get, GetErrors and Fields.
package validator
