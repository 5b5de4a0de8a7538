package formify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tesseract/formify/pkg/validator"
)

// Field declares one named slot in a schema definition: a validator bound to
// a field name, plus the metadata that drives the required/default policy of
// a validation pass. Fields are value types; a Definition owns its copies and
// never mutates them after construction.
type Field struct {
	name         string
	validator    validator.Validator
	required     bool
	defaultValue any
	hasDefault   bool
	label        string
	description  string
}

// FieldOption configures a field declaration during construction.
type FieldOption func(*Field)

// NewField declares a field binding the validator to the given name.
func NewField(name string, v validator.Validator, opts ...FieldOption) Field {
	f := Field{name: name, validator: v}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Required marks the field as mandatory: a validation pass fails the field
// with a required error when no raw value was set.
func Required() FieldOption {
	return func(f *Field) {
		f.required = true
	}
}

// Default provides an already-typed fallback applied when an optional field
// receives no raw value. Defaults bypass conversion and validation.
func Default(value any) FieldOption {
	return func(f *Field) {
		f.defaultValue = value
		f.hasDefault = true
	}
}

// Label sets a human-readable field title for UI use.
func Label(label string) FieldOption {
	return func(f *Field) {
		f.label = label
	}
}

// Description sets explanatory field text for UI use.
func Description(description string) FieldOption {
	return func(f *Field) {
		f.description = description
	}
}

// Name returns the field name, immutable once declared.
func (f Field) Name() string {
	return f.name
}

// Validator returns the validator bound to this field.
func (f Field) Validator() validator.Validator {
	return f.validator
}

// IsRequired reports whether the field must receive a raw value.
func (f Field) IsRequired() bool {
	return f.required
}

// Default returns the typed fallback value and whether one was declared.
func (f Field) Default() (any, bool) {
	return f.defaultValue, f.hasDefault
}

// Label returns the declared label, or one derived from the field name with
// underscores turned into spaces and words title-cased.
func (f Field) Label() string {
	if f.label != "" {
		return f.label
	}
	return cases.Title(language.English).String(strings.ReplaceAll(f.name, "_", " "))
}

// Description returns the declared description, empty when none was set.
func (f Field) Description() string {
	return f.description
}
