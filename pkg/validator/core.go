package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind classifies which stage of the pipeline produced a ValidationError.
type Kind int

const (
	// KindConstraint marks a converted value that violated a check.
	KindConstraint Kind = iota
	// KindConversion marks raw input that could not be coerced to the
	// validator's canonical type.
	KindConversion
	// KindRequired marks a required field that received no input.
	KindRequired
)

func (k Kind) String() string {
	switch k {
	case KindConversion:
		return "conversion"
	case KindRequired:
		return "required"
	default:
		return "constraint"
	}
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Kind              Kind
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap maps the error kind onto its sentinel so callers can use errors.Is
// to tell conversion, constraint, and required failures apart.
func (e ValidationError) Unwrap() error {
	switch e.Kind {
	case KindConversion:
		return ErrConversion
	case KindRequired:
		return ErrRequired
	default:
		return ErrConstraint
	}
}

// ValidationErrors represents a collection of validation errors, at most one
// per field when produced by a schema pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual errors so errors.Is can match their sentinels.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ve))
	for i, err := range ve {
		errs[i] = err
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
