package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NotBlank requires a string with at least one non-whitespace character.
func NotBlank() Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return strings.TrimSpace(value) != ""
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must not be blank",
				TranslationKey: "validation.not_blank",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		}
	}
}

// MinLen requires at least min characters, counted in runes.
func MinLen(min int) Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return utf8.RuneCountInString(value) >= min
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at least %d characters long", min),
				TranslationKey: "validation.min_length",
				TranslationValues: map[string]any{
					"field": field,
					"min":   min,
				},
			},
		}
	}
}

// MaxLen requires at most max characters, counted in runes.
func MaxLen(max int) Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return utf8.RuneCountInString(value) <= max
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at most %d characters long", max),
				TranslationKey: "validation.max_length",
				TranslationValues: map[string]any{
					"field": field,
					"max":   max,
				},
			},
		}
	}
}

// ExactLen requires exactly the given number of characters.
func ExactLen(exact int) Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return utf8.RuneCountInString(value) == exact
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be exactly %d characters long", exact),
				TranslationKey: "validation.exact_length",
				TranslationValues: map[string]any{
					"field":  field,
					"length": exact,
				},
			},
		}
	}
}

// Matches requires the value to match the given pattern. The pattern is
// compiled once at construction; an invalid pattern panics, since that is a
// programmer error rather than bad input. The description names the pattern
// in error messages, e.g. "postal code".
func Matches(pattern, description string) Check[string] {
	regex := regexp.MustCompile(pattern)
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return regex.MatchString(value)
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must match %s pattern", description),
				TranslationKey: "validation.regex_pattern",
				TranslationValues: map[string]any{
					"field":       field,
					"pattern":     pattern,
					"description": description,
				},
			},
		}
	}
}

// OneOf requires the value to be one of the allowed options.
func OneOf(options ...string) Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				for _, option := range options {
					if value == option {
						return true
					}
				}
				return false
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
				TranslationKey: "validation.in_list",
				TranslationValues: map[string]any{
					"field":          field,
					"allowed_values": options,
				},
			},
		}
	}
}

// OneOfFold is OneOf with case-insensitive comparison.
func OneOfFold(options ...string) Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				for _, option := range options {
					if strings.EqualFold(value, option) {
						return true
					}
				}
				return false
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be one of (case-insensitive): %s", strings.Join(options, ", ")),
				TranslationKey: "validation.in_list_case_insensitive",
				TranslationValues: map[string]any{
					"field":          field,
					"allowed_values": options,
				},
			},
		}
	}
}

// NotOneOf rejects values present in the forbidden list.
func NotOneOf(forbidden ...string) Check[string] {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				for _, option := range forbidden {
					if value == option {
						return false
					}
				}
				return true
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must not be one of: %s", strings.Join(forbidden, ", ")),
				TranslationKey: "validation.not_in_list",
				TranslationValues: map[string]any{
					"field":            field,
					"forbidden_values": forbidden,
				},
			},
		}
	}
}
