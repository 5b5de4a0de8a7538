package validator

import (
	"fmt"
	"strings"
	"time"
)

// Time validates date and time input parsed with a reference layout.
type Time struct {
	layout string
	checks []Check[time.Time]
}

// TimeOption configures a Time validator during construction.
type TimeOption func(*Time)

// NewTime creates a time validator for the given layout. An empty layout
// defaults to time.RFC3339.
func NewTime(layout string, opts ...TimeOption) *Time {
	if layout == "" {
		layout = time.RFC3339
	}
	v := &Time{layout: layout}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithTimeAfter rejects values at or before the reference instant.
func WithTimeAfter(after time.Time) TimeOption {
	return WithTimeCheck(After(after))
}

// WithTimeBefore rejects values at or after the reference instant.
func WithTimeBefore(before time.Time) TimeOption {
	return WithTimeCheck(Before(before))
}

// WithTimeCheck appends custom checks to the validate phase.
func WithTimeCheck(checks ...Check[time.Time]) TimeOption {
	return func(v *Time) {
		v.checks = append(v.checks, checks...)
	}
}

func (v *Time) Convert(field, raw string) (any, error) {
	t, err := time.Parse(v.layout, strings.TrimSpace(raw))
	if err != nil {
		return nil, conversionError(field, raw, fmt.Sprintf("date/time (%s)", v.layout))
	}
	return t, nil
}

func (v *Time) Validate(field string, value any) error {
	t, ok := value.(time.Time)
	if !ok {
		return wrongTypeError(field, "date/time")
	}
	return runChecks(field, t, v.checks)
}

// After requires an instant strictly after the reference.
func After(after time.Time) Check[time.Time] {
	return func(field string, value time.Time) Rule {
		return Rule{
			Check: func() bool {
				return value.After(after)
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be after %s", after.Format("2006-01-02")),
				TranslationKey: "validation.date_after",
				TranslationValues: map[string]any{
					"field": field,
					"after": after.Format("2006-01-02"),
				},
			},
		}
	}
}

// Before requires an instant strictly before the reference.
func Before(before time.Time) Check[time.Time] {
	return func(field string, value time.Time) Rule {
		return Rule{
			Check: func() bool {
				return value.Before(before)
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be before %s", before.Format("2006-01-02")),
				TranslationKey: "validation.date_before",
				TranslationValues: map[string]any{
					"field":  field,
					"before": before.Format("2006-01-02"),
				},
			},
		}
	}
}
