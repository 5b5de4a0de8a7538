package validator

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// String validates free-form text input. Its convert phase optionally trims
// surrounding whitespace and applies Unicode NFC normalization; it never
// fails, since every raw value already is a string.
type String struct {
	trim      bool
	normalize bool
	checks    []Check[string]
}

// StringOption configures a String validator during construction. Options
// that add checks keep their call order, and checks run in that order.
type StringOption func(*String)

// NewString creates a string validator with the given options.
func NewString(opts ...StringOption) *String {
	v := &String{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewRegex creates a string validator whose value must match the pattern.
// The description names the pattern in error messages.
func NewRegex(pattern, description string, opts ...StringOption) *String {
	return NewString(append([]StringOption{WithPattern(pattern, description)}, opts...)...)
}

// NewEmail creates a string validator for email addresses.
func NewEmail(opts ...StringOption) *String {
	return NewString(append([]StringOption{WithTrim(), WithStringCheck(IsEmail())}, opts...)...)
}

// WithTrim strips leading and trailing whitespace during conversion.
func WithTrim() StringOption {
	return func(v *String) {
		v.trim = true
	}
}

// WithNormalize applies Unicode NFC normalization during conversion, so
// canonically equivalent inputs produce identical typed values.
func WithNormalize() StringOption {
	return func(v *String) {
		v.normalize = true
	}
}

// WithNotBlank rejects values without non-whitespace content.
func WithNotBlank() StringOption {
	return WithStringCheck(NotBlank())
}

// WithMinLen rejects values shorter than min characters.
func WithMinLen(min int) StringOption {
	return WithStringCheck(MinLen(min))
}

// WithMaxLen rejects values longer than max characters.
func WithMaxLen(max int) StringOption {
	return WithStringCheck(MaxLen(max))
}

// WithPattern rejects values that do not match the pattern. An invalid
// pattern panics at construction time.
func WithPattern(pattern, description string) StringOption {
	return WithStringCheck(Matches(pattern, description))
}

// WithStringCheck appends custom checks to the validate phase.
func WithStringCheck(checks ...Check[string]) StringOption {
	return func(v *String) {
		v.checks = append(v.checks, checks...)
	}
}

func (v *String) Convert(field, raw string) (any, error) {
	s := raw
	if v.trim {
		s = strings.TrimSpace(s)
	}
	if v.normalize {
		s = norm.NFC.String(s)
	}
	return s, nil
}

func (v *String) Validate(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return wrongTypeError(field, "string")
	}
	return runChecks(field, s, v.checks)
}
