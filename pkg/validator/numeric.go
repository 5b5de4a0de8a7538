package validator

import (
	"strconv"
	"strings"
)

// Int validates whole-number input with an int64 canonical type.
type Int struct {
	checks []Check[int64]
}

// IntOption configures an Int validator during construction.
type IntOption func(*Int)

// NewInt creates an integer validator with the given options.
func NewInt(opts ...IntOption) *Int {
	v := &Int{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithIntMin rejects values below min.
func WithIntMin(min int64) IntOption {
	return WithIntCheck(MinNum(min))
}

// WithIntMax rejects values above max.
func WithIntMax(max int64) IntOption {
	return WithIntCheck(MaxNum(max))
}

// WithIntCheck appends custom checks to the validate phase.
func WithIntCheck(checks ...Check[int64]) IntOption {
	return func(v *Int) {
		v.checks = append(v.checks, checks...)
	}
}

func (v *Int) Convert(field, raw string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, conversionError(field, raw, "integer")
	}
	return n, nil
}

func (v *Int) Validate(field string, value any) error {
	n, ok := value.(int64)
	if !ok {
		return wrongTypeError(field, "integer")
	}
	return runChecks(field, n, v.checks)
}

// Float validates decimal-number input with a float64 canonical type. Use
// Decimal where binary rounding is unacceptable, e.g. for money.
type Float struct {
	checks []Check[float64]
}

// FloatOption configures a Float validator during construction.
type FloatOption func(*Float)

// NewFloat creates a floating-point validator with the given options.
func NewFloat(opts ...FloatOption) *Float {
	v := &Float{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithFloatMin rejects values below min.
func WithFloatMin(min float64) FloatOption {
	return WithFloatCheck(MinNum(min))
}

// WithFloatMax rejects values above max.
func WithFloatMax(max float64) FloatOption {
	return WithFloatCheck(MaxNum(max))
}

// WithFloatCheck appends custom checks to the validate phase.
func WithFloatCheck(checks ...Check[float64]) FloatOption {
	return func(v *Float) {
		v.checks = append(v.checks, checks...)
	}
}

func (v *Float) Convert(field, raw string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, conversionError(field, raw, "number")
	}
	return f, nil
}

func (v *Float) Validate(field string, value any) error {
	f, ok := value.(float64)
	if !ok {
		return wrongTypeError(field, "number")
	}
	return runChecks(field, f, v.checks)
}
