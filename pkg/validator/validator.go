package validator

import "fmt"

// Validator is the atomic unit of conversion and checking for a single value.
//
// Convert coerces raw input into the validator's canonical type and fails
// with a KindConversion error when the input cannot be interpreted. Validate
// runs the configured checks against an already converted value, in
// declaration order, and returns the first failing check's error. A value is
// only considered valid after both phases succeed.
//
// Validators are immutable after construction and safe for concurrent use;
// all per-call state belongs to the caller.
type Validator interface {
	Convert(field, raw string) (any, error)
	Validate(field string, value any) error
}

// MultiValidator is implemented by validators that consume every submitted
// value for a field rather than just the first, such as List.
type MultiValidator interface {
	Validator
	ConvertAll(field string, raws []string) (any, error)
}

// Process runs the full two-phase pipeline against a single raw value and
// returns the typed result. Running a validator standalone through Process
// yields exactly the same value or error as running it inside a schema.
func Process(v Validator, field, raw string) (any, error) {
	value, err := v.Convert(field, raw)
	if err != nil {
		return nil, err
	}
	if err := v.Validate(field, value); err != nil {
		return nil, err
	}
	return value, nil
}

// conversionError builds the uniform error for raw input that cannot be
// coerced into the named canonical type.
func conversionError(field, raw, target string) ValidationError {
	return ValidationError{
		Kind:           KindConversion,
		Field:          field,
		Message:        fmt.Sprintf("cannot interpret %q as %s", raw, target),
		TranslationKey: "validation.conversion",
		TranslationValues: map[string]any{
			"field": field,
			"value": raw,
			"type":  target,
		},
	}
}

// wrongTypeError is the base check of every Validate phase: the value handed
// in must already carry the validator's canonical type.
func wrongTypeError(field, target string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be a %s value", target),
		TranslationKey: "validation.type",
		TranslationValues: map[string]any{
			"field": field,
			"type":  target,
		},
	}
}

// RequiredError reports a required field that received no input.
func RequiredError(field string) ValidationError {
	return ValidationError{
		Kind:           KindRequired,
		Field:          field,
		Message:        "field is required",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}
