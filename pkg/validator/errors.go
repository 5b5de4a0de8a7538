package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrConversion is the sentinel for raw input that cannot be coerced to
	// the validator's canonical type.
	ErrConversion = errors.New("cannot convert value")

	// ErrConstraint is the sentinel for a converted value that violated a check.
	ErrConstraint = errors.New("invalid value")

	// ErrRequired is the sentinel for a required field that received no input.
	ErrRequired = errors.New("field is required")

	// ErrUnknownField is returned when a value is set or read for a field
	// name that was never declared. This is a programmer error, not bad input.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidConfig is returned for malformed validator or schema
	// configuration, such as duplicate field names.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsConversionError reports whether err stems from a failed type coercion.
func IsConversionError(err error) bool {
	return errors.Is(err, ErrConversion)
}

// IsConstraintError reports whether err stems from a violated check.
func IsConstraintError(err error) bool {
	return errors.Is(err, ErrConstraint)
}

// IsRequiredError reports whether err stems from missing required input.
func IsRequiredError(err error) bool {
	return errors.Is(err, ErrRequired)
}
