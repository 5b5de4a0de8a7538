package formify

import (
	"errors"
	"fmt"
	"iter"
	"net/url"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tesseract/formify/pkg/validator"
)

// Definition is a named, ordered collection of field declarations. It is the
// immutable template schema instances are created from; declaration order
// decides validation and error ordering.
type Definition struct {
	name   string
	fields []Field
	index  map[string]int
}

// New builds a definition from the given fields. Blank or duplicate field
// names are programmer errors and fail immediately.
func New(name string, fields ...Field) (*Definition, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", validator.ErrInvalidConfig, i)
		}
		if f.validator == nil {
			return nil, fmt.Errorf("%w: field %q has no validator", validator.ErrInvalidConfig, f.name)
		}
		if _, exists := index[f.name]; exists {
			return nil, fmt.Errorf("%w: duplicate field %q", validator.ErrInvalidConfig, f.name)
		}
		index[f.name] = i
	}
	return &Definition{
		name:   name,
		fields: slices.Clone(fields),
		index:  index,
	}, nil
}

// MustNew builds a definition and panics on malformed declarations.
func MustNew(name string, fields ...Field) *Definition {
	d, err := New(name, fields...)
	if err != nil {
		panic(fmt.Sprintf("formify: failed to build definition %q: %v", name, err))
	}
	return d
}

// Name returns the definition name.
func (d *Definition) Name() string {
	return d.name
}

// Fields returns the field declarations in declaration order.
func (d *Definition) Fields() []Field {
	return slices.Clone(d.fields)
}

// Has reports whether a field with the given name is declared.
func (d *Definition) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// NewSchema creates a fresh instance with every field unset. Instances are
// independent: raw input, typed values and errors never leak between them,
// and each goroutine must use its own.
func (d *Definition) NewSchema() *Schema {
	return &Schema{
		def:    d,
		states: make([]fieldState, len(d.fields)),
	}
}

// fieldState is the per-instance slot for one field: the raw input as
// submitted, and the outcome of the last validation pass.
type fieldState struct {
	raws  []string
	set   bool
	value any
	valid bool
	err   *validator.ValidationError
}

func (st *fieldState) reset() {
	st.value = nil
	st.valid = false
	st.err = nil
}

// Schema holds the mutable per-instance state for a definition: raw inputs
// on the way in, typed values and field errors after a Validate pass. After
// a clean pass it behaves as a read-only mapping from field name to typed
// value until raw input changes again.
type Schema struct {
	def    *Definition
	states []fieldState
}

// Definition returns the template this instance was created from.
func (s *Schema) Definition() *Definition {
	return s.def
}

// Set stores raw input for the named field, replacing any previous input and
// discarding the field's typed value and error. Unknown names are programmer
// errors and return ErrUnknownField.
func (s *Schema) Set(name, raw string) error {
	return s.SetMulti(name, []string{raw})
}

// SetMulti stores several raw values for the named field, as submitted by
// repeated form inputs. Scalar validators convert the first value; List
// validators consume all of them.
func (s *Schema) SetMulti(name string, raws []string) error {
	i, ok := s.def.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", validator.ErrUnknownField, name)
	}
	st := &s.states[i]
	st.raws = slices.Clone(raws)
	st.set = true
	st.reset()
	return nil
}

// SetAll stores raw input for every entry of the map. No value is stored if
// any name is unknown.
func (s *Schema) SetAll(values map[string]string) error {
	for name := range values {
		if !s.def.Has(name) {
			return fmt.Errorf("%w: %q", validator.ErrUnknownField, name)
		}
	}
	for name, raw := range values {
		if err := s.Set(name, raw); err != nil {
			return err
		}
	}
	return nil
}

// Bind stores raw input from url.Values, the shape of parsed form and query
// data. Unlike Set, unknown keys are skipped rather than rejected, since
// submitted forms routinely carry extra fields.
func (s *Schema) Bind(values url.Values) error {
	for name, raws := range values {
		if !s.def.Has(name) {
			continue
		}
		if err := s.SetMulti(name, raws); err != nil {
			return err
		}
	}
	return nil
}

// Raw returns the first raw value set for the field, and whether any raw
// input was set at all. An explicitly set empty string reports true.
func (s *Schema) Raw(name string) (string, bool) {
	i, ok := s.def.index[name]
	if !ok || !s.states[i].set {
		return "", false
	}
	if len(s.states[i].raws) == 0 {
		return "", true
	}
	return s.states[i].raws[0], true
}

// RawAll returns every raw value set for the field.
func (s *Schema) RawAll(name string) ([]string, bool) {
	i, ok := s.def.index[name]
	if !ok || !s.states[i].set {
		return nil, false
	}
	return slices.Clone(s.states[i].raws), true
}

// Validate runs the full pipeline over every field in declaration order and
// returns nil when the instance is clean, or the collected field errors as
// validator.ValidationErrors. Each field reports at most one error: required
// policy first, then conversion, then the first violated check. Data errors
// never surface as panics or programmer errors, and the pass is idempotent
// for unchanged raw input.
func (s *Schema) Validate() error {
	var errs validator.ValidationErrors

	for i := range s.def.fields {
		f := s.def.fields[i]
		st := &s.states[i]
		st.reset()

		if !st.set {
			if def, ok := f.Default(); ok {
				st.value = def
				st.valid = true
				continue
			}
			if f.required {
				ve := validator.RequiredError(f.name)
				st.err = &ve
				errs.Add(ve)
			}
			continue
		}

		value, err := convertField(f, st.raws)
		if err != nil {
			ve := asFieldError(err, f.name)
			st.err = &ve
			errs.Add(ve)
			continue
		}

		if err := f.validator.Validate(f.name, value); err != nil {
			ve := asFieldError(err, f.name)
			st.err = &ve
			errs.Add(ve)
			continue
		}

		st.value = value
		st.valid = true
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// convertField feeds the stored raw input into the field's validator,
// handing all values to multivalue validators and the first to scalar ones.
func convertField(f Field, raws []string) (any, error) {
	if mv, ok := f.validator.(validator.MultiValidator); ok {
		return mv.ConvertAll(f.name, raws)
	}
	raw := ""
	if len(raws) > 0 {
		raw = raws[0]
	}
	return f.validator.Convert(f.name, raw)
}

// asFieldError normalizes any pipeline error into a field-attributed
// ValidationError.
func asFieldError(err error, field string) validator.ValidationError {
	var ve validator.ValidationError
	if errors.As(err, &ve) {
		if ve.Field == "" {
			ve.Field = field
		}
		return ve
	}
	return validator.ValidationError{Field: field, Message: err.Error()}
}

// Get returns the typed value for the field. The second result is false when
// the field has not been validated successfully since its raw input last
// changed, including unknown names.
func (s *Schema) Get(name string) (any, bool) {
	i, ok := s.def.index[name]
	if !ok || !s.states[i].valid {
		return nil, false
	}
	return s.states[i].value, true
}

// GetString returns the field value as a string.
func (s *Schema) GetString(name string) (string, bool) {
	if value, ok := s.Get(name); ok {
		if str, ok := value.(string); ok {
			return str, true
		}
	}
	return "", false
}

// GetInt64 returns the field value as an int64.
func (s *Schema) GetInt64(name string) (int64, bool) {
	if value, ok := s.Get(name); ok {
		if n, ok := value.(int64); ok {
			return n, true
		}
	}
	return 0, false
}

// GetFloat64 returns the field value as a float64.
func (s *Schema) GetFloat64(name string) (float64, bool) {
	if value, ok := s.Get(name); ok {
		if f, ok := value.(float64); ok {
			return f, true
		}
	}
	return 0, false
}

// GetBool returns the field value as a bool.
func (s *Schema) GetBool(name string) (bool, bool) {
	if value, ok := s.Get(name); ok {
		if b, ok := value.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// GetTime returns the field value as a time.Time.
func (s *Schema) GetTime(name string) (time.Time, bool) {
	if value, ok := s.Get(name); ok {
		if t, ok := value.(time.Time); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// GetDecimal returns the field value as a decimal.Decimal.
func (s *Schema) GetDecimal(name string) (decimal.Decimal, bool) {
	if value, ok := s.Get(name); ok {
		if d, ok := value.(decimal.Decimal); ok {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

// Has reports whether the field currently holds a validated typed value.
func (s *Schema) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Len returns the number of fields holding validated typed values.
func (s *Schema) Len() int {
	count := 0
	for i := range s.states {
		if s.states[i].valid {
			count++
		}
	}
	return count
}

// Names returns all declared field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.def.fields))
	for i, f := range s.def.fields {
		names[i] = f.name
	}
	return names
}

// Values returns a snapshot map of every validated field to its typed value.
func (s *Schema) Values() map[string]any {
	values := make(map[string]any, len(s.states))
	for i := range s.states {
		if s.states[i].valid {
			values[s.def.fields[i].name] = s.states[i].value
		}
	}
	return values
}

// All iterates validated (name, typed value) pairs in declaration order.
func (s *Schema) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i := range s.states {
			if !s.states[i].valid {
				continue
			}
			if !yield(s.def.fields[i].name, s.states[i].value) {
				return
			}
		}
	}
}

// Errors returns the field errors recorded by the last Validate pass, in
// declaration order.
func (s *Schema) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i := range s.states {
		if s.states[i].err != nil {
			errs.Add(*s.states[i].err)
		}
	}
	return errs
}

// Err returns the error recorded for the field by the last Validate pass.
func (s *Schema) Err(name string) (validator.ValidationError, bool) {
	i, ok := s.def.index[name]
	if !ok || s.states[i].err == nil {
		return validator.ValidationError{}, false
	}
	return *s.states[i].err, true
}
