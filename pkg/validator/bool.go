package validator

import (
	"strconv"
	"strings"
)

// Bool validates boolean input with lenient parsing for the spellings HTML
// forms actually submit: "on", "yes" and "1" convert to true, "off", "no",
// "0" and the empty string to false, alongside everything strconv.ParseBool
// accepts.
type Bool struct{}

// NewBool creates a boolean validator.
func NewBool() *Bool {
	return &Bool{}
}

func (v *Bool) Convert(field, raw string) (any, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "on", "yes":
			b = true
		case "off", "no", "":
			b = false
		default:
			return nil, conversionError(field, raw, "boolean")
		}
	}
	return b, nil
}

func (v *Bool) Validate(field string, value any) error {
	if _, ok := value.(bool); !ok {
		return wrongTypeError(field, "boolean")
	}
	return nil
}
