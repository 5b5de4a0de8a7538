// Package formify turns untyped input, such as strings from a form
// submission, into typed, validated values driven by declarative schemas.
//
// A Definition is the immutable template: an ordered list of named fields,
// each binding a validator from pkg/validator together with required/default
// policy and display metadata. Definitions produce independent Schema
// instances that collect raw input, run the two-phase pipeline (convert to
// the canonical type, then check the typed value), and expose the results as
// a mapping from field name to typed value plus a field-to-error mapping.
//
// Basic Usage:
//
//	def := formify.MustNew("signup",
//		formify.NewField("age", validator.NewInt(
//			validator.WithIntMin(0),
//			validator.WithIntMax(150),
//		), formify.Required()),
//		formify.NewField("name", validator.NewString(
//			validator.WithTrim(),
//			validator.WithNotBlank(),
//			validator.WithMaxLen(50),
//		), formify.Required()),
//	)
//
//	schema := def.NewSchema()
//	_ = schema.Set("age", "42")
//	_ = schema.Set("name", "Alice")
//
//	if err := schema.Validate(); err != nil {
//		for _, fieldErr := range validator.ExtractValidationErrors(err) {
//			// fieldErr.Field, fieldErr.Message
//		}
//		return
//	}
//	age, _ := schema.GetInt64("age") // int64(42), not "42"
//
// Error Semantics:
//
// Bad input is data, not control flow: Validate collects one error per
// failing field and never panics on user input. Programmer errors such as
// unknown field names or duplicate declarations surface immediately as
// ErrUnknownField or ErrInvalidConfig.
//
// Schemas can also be declared in YAML (DefinitionFromYAML) and validated
// snapshots decoded onto structs (Schema.Decode). Each goroutine must use
// its own Schema instance; definitions and validators are safe to share.
package formify
