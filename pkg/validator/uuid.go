package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID validates identifiers in standard UUID format with a uuid.UUID
// canonical type.
type UUID struct {
	checks []Check[uuid.UUID]
}

// UUIDOption configures a UUID validator during construction.
type UUIDOption func(*UUID)

// NewUUID creates a UUID validator with the given options.
func NewUUID(opts ...UUIDOption) *UUID {
	v := &UUID{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithNonNilUUID rejects the all-zero UUID.
func WithNonNilUUID() UUIDOption {
	return WithUUIDCheck(NonNilUUID())
}

// WithUUIDCheck appends custom checks to the validate phase.
func WithUUIDCheck(checks ...Check[uuid.UUID]) UUIDOption {
	return func(v *UUID) {
		v.checks = append(v.checks, checks...)
	}
}

func (v *UUID) Convert(field, raw string) (any, error) {
	s := strings.TrimSpace(raw)

	// Fast rejection: check length and hyphen positions before parsing.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return nil, conversionError(field, raw, "UUID")
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, conversionError(field, raw, "UUID")
	}
	return id, nil
}

func (v *UUID) Validate(field string, value any) error {
	id, ok := value.(uuid.UUID)
	if !ok {
		return wrongTypeError(field, "UUID")
	}
	return runChecks(field, id, v.checks)
}

// NonNilUUID rejects the all-zero UUID.
func NonNilUUID() Check[uuid.UUID] {
	return func(field string, value uuid.UUID) Rule {
		return Rule{
			Check: func() bool {
				return value != uuid.Nil
			},
			Error: ValidationError{
				Field:          field,
				Message:        "UUID cannot be nil",
				TranslationKey: "validation.uuid_not_nil",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		}
	}
}
