package validator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal validates exact decimal-number input, the right choice for money
// and other values where binary floating point rounding is unacceptable.
type Decimal struct {
	checks []Check[decimal.Decimal]
}

// DecimalOption configures a Decimal validator during construction.
type DecimalOption func(*Decimal)

// NewDecimal creates a decimal validator with the given options.
func NewDecimal(opts ...DecimalOption) *Decimal {
	v := &Decimal{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithDecimalMin rejects values below min.
func WithDecimalMin(min decimal.Decimal) DecimalOption {
	return WithDecimalCheck(MinDecimal(min))
}

// WithDecimalMax rejects values above max.
func WithDecimalMax(max decimal.Decimal) DecimalOption {
	return WithDecimalCheck(MaxDecimal(max))
}

// WithDecimalPlaces rejects values with more than the given number of
// fractional digits.
func WithDecimalPlaces(places int32) DecimalOption {
	return WithDecimalCheck(DecimalPlaces(places))
}

// WithDecimalCheck appends custom checks to the validate phase.
func WithDecimalCheck(checks ...Check[decimal.Decimal]) DecimalOption {
	return func(v *Decimal) {
		v.checks = append(v.checks, checks...)
	}
}

func (v *Decimal) Convert(field, raw string) (any, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil, conversionError(field, raw, "decimal number")
	}
	return d, nil
}

func (v *Decimal) Validate(field string, value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return wrongTypeError(field, "decimal number")
	}
	return runChecks(field, d, v.checks)
}

// MinDecimal requires a value greater than or equal to min.
func MinDecimal(min decimal.Decimal) Check[decimal.Decimal] {
	return func(field string, value decimal.Decimal) Rule {
		return Rule{
			Check: func() bool {
				return value.GreaterThanOrEqual(min)
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at least %s", min.String()),
				TranslationKey: "validation.min",
				TranslationValues: map[string]any{
					"field": field,
					"min":   min.String(),
				},
			},
		}
	}
}

// MaxDecimal requires a value less than or equal to max.
func MaxDecimal(max decimal.Decimal) Check[decimal.Decimal] {
	return func(field string, value decimal.Decimal) Rule {
		return Rule{
			Check: func() bool {
				return value.LessThanOrEqual(max)
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at most %s", max.String()),
				TranslationKey: "validation.max",
				TranslationValues: map[string]any{
					"field": field,
					"max":   max.String(),
				},
			},
		}
	}
}

// DecimalPlaces requires at most the given number of fractional digits.
func DecimalPlaces(places int32) Check[decimal.Decimal] {
	return func(field string, value decimal.Decimal) Rule {
		return Rule{
			Check: func() bool {
				return value.Exponent() >= -places
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must have at most %d decimal places", places),
				TranslationKey: "validation.decimal_places",
				TranslationValues: map[string]any{
					"field":  field,
					"places": places,
				},
			},
		}
	}
}
