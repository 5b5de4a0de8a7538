package validator

import "fmt"

// MinNum requires a numeric value greater than or equal to the minimum.
func MinNum[T Numeric](min T) Check[T] {
	return func(field string, value T) Rule {
		return Rule{
			Check: func() bool {
				return value >= min
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at least %v", min),
				TranslationKey: "validation.min",
				TranslationValues: map[string]any{
					"field": field,
					"min":   min,
				},
			},
		}
	}
}

// MaxNum requires a numeric value less than or equal to the maximum.
func MaxNum[T Numeric](max T) Check[T] {
	return func(field string, value T) Rule {
		return Rule{
			Check: func() bool {
				return value <= max
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at most %v", max),
				TranslationKey: "validation.max",
				TranslationValues: map[string]any{
					"field": field,
					"max":   max,
				},
			},
		}
	}
}

// Between requires min <= value <= max.
func Between[T Numeric](min, max T) Check[T] {
	return func(field string, value T) Rule {
		return Rule{
			Check: func() bool {
				return value >= min && value <= max
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be between %v and %v", min, max),
				TranslationKey: "validation.between",
				TranslationValues: map[string]any{
					"field": field,
					"min":   min,
					"max":   max,
				},
			},
		}
	}
}

// Positive requires a value strictly greater than zero.
func Positive[T Numeric]() Check[T] {
	return func(field string, value T) Rule {
		var zero T
		return Rule{
			Check: func() bool {
				return value > zero
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be positive",
				TranslationKey: "validation.positive",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		}
	}
}
