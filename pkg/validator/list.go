package validator

import (
	"errors"
	"fmt"
)

// List validates every submitted value for a field with a shared element
// validator and produces a []any canonical value. Inside a schema it consumes
// all raw values set for its field, mirroring repeated form inputs.
type List struct {
	elem     Validator
	minItems int
	maxItems int
	hasMin   bool
	hasMax   bool
}

// ListOption configures a List validator during construction.
type ListOption func(*List)

// NewList creates a multivalue validator around the element validator.
func NewList(elem Validator, opts ...ListOption) *List {
	v := &List{elem: elem}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithMinItems rejects lists with fewer than min elements.
func WithMinItems(min int) ListOption {
	return func(v *List) {
		v.minItems = min
		v.hasMin = true
	}
}

// WithMaxItems rejects lists with more than max elements.
func WithMaxItems(max int) ListOption {
	return func(v *List) {
		v.maxItems = max
		v.hasMax = true
	}
}

func (v *List) Convert(field, raw string) (any, error) {
	return v.ConvertAll(field, []string{raw})
}

// ConvertAll converts every raw value with the element validator. The first
// failing element aborts conversion and its error names the element index.
func (v *List) ConvertAll(field string, raws []string) (any, error) {
	values := make([]any, 0, len(raws))
	for i, raw := range raws {
		value, err := v.elem.Convert(field, raw)
		if err != nil {
			return nil, elementError(err, i)
		}
		values = append(values, value)
	}
	return values, nil
}

func (v *List) Validate(field string, value any) error {
	values, ok := value.([]any)
	if !ok {
		return wrongTypeError(field, "list")
	}

	if v.hasMin && len(values) < v.minItems {
		return ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least %d values", v.minItems),
			TranslationKey: "validation.min_items",
			TranslationValues: map[string]any{
				"field": field,
				"min":   v.minItems,
			},
		}
	}
	if v.hasMax && len(values) > v.maxItems {
		return ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at most %d values", v.maxItems),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"field": field,
				"max":   v.maxItems,
			},
		}
	}

	for i, elem := range values {
		if err := v.elem.Validate(field, elem); err != nil {
			return elementError(err, i)
		}
	}
	return nil
}

// elementError annotates a ValidationError with the index of the list
// element it belongs to.
func elementError(err error, index int) error {
	var ve ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	ve.Message = fmt.Sprintf("value %d: %s", index+1, ve.Message)
	values := make(map[string]any, len(ve.TranslationValues)+1)
	for k, val := range ve.TranslationValues {
		values[k] = val
	}
	values["index"] = index
	ve.TranslationValues = values
	return ve
}
