package validator

// Check is a single configured constraint over a converted value. A Check is
// bound to its parameters (bounds, patterns, allowed sets) at construction
// and produces a field-aware Rule when invoked, so the same Check can be
// reused across schema instances and standalone calls.
type Check[T any] func(field string, value T) Rule

// runChecks evaluates checks in declaration order and returns the first
// failing check's error. Evaluation stops at the first failure so the caller
// sees exactly one error per value.
func runChecks[T any](field string, value T, checks []Check[T]) error {
	for _, check := range checks {
		if rule := check(field, value); !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// CheckFunc adapts a plain predicate and message into a Check, the escape
// hatch for constraints this package does not ship.
func CheckFunc[T any](predicate func(T) bool, message string) Check[T] {
	return func(field string, value T) Rule {
		return Rule{
			Check: func() bool {
				return predicate(value)
			},
			Error: ValidationError{
				Field:          field,
				Message:        message,
				TranslationKey: "validation.custom",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		}
	}
}
