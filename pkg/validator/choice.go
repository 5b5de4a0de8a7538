package validator

import "strings"

// Choice validates membership in a fixed set of string options. With
// case-insensitive matching enabled, conversion canonicalizes the input to
// the declared spelling of the matched option.
type Choice struct {
	options []string
	fold    bool
	checks  []Check[string]
}

// ChoiceOption configures a Choice validator during construction.
type ChoiceOption func(*Choice)

// NewChoice creates a choice validator over the allowed options.
func NewChoice(options []string, opts ...ChoiceOption) *Choice {
	v := &Choice{options: options}
	for _, opt := range opts {
		opt(v)
	}
	if v.fold {
		v.checks = append(v.checks, OneOfFold(options...))
	} else {
		v.checks = append(v.checks, OneOf(options...))
	}
	return v
}

// WithFold enables case-insensitive option matching.
func WithFold() ChoiceOption {
	return func(v *Choice) {
		v.fold = true
	}
}

func (v *Choice) Convert(field, raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if v.fold {
		for _, option := range v.options {
			if strings.EqualFold(s, option) {
				return option, nil
			}
		}
	}
	return s, nil
}

func (v *Choice) Validate(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return wrongTypeError(field, "string")
	}
	return runChecks(field, s, v.checks)
}
