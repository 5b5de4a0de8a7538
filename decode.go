package formify

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the validated snapshot onto a caller struct, matching fields
// by `formify` tag or lowercased field name. Only fields that validated
// successfully are decoded; call it after a clean Validate pass.
//
// Example:
//
//	type Signup struct {
//		Age  int64  `formify:"age"`
//		Name string `formify:"name"`
//	}
//
//	var signup Signup
//	if err := schema.Validate(); err == nil {
//		err = schema.Decode(&signup)
//	}
func (s *Schema) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  v,
		TagName: "formify",
	})
	if err != nil {
		return fmt.Errorf("formify: build decoder: %w", err)
	}
	if err := dec.Decode(s.Values()); err != nil {
		return fmt.Errorf("formify: decode values: %w", err)
	}
	return nil
}
