package formify

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tesseract/formify/pkg/validator"
)

// yamlDefinition mirrors the YAML shape of a declarative schema file.
type yamlDefinition struct {
	Name   string      `yaml:"name"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required"`
	Default     any    `yaml:"default"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`

	// string options
	Trim        bool   `yaml:"trim"`
	Normalize   bool   `yaml:"normalize"`
	NotBlank    bool   `yaml:"not_blank"`
	MinLen      *int   `yaml:"min_len"`
	MaxLen      *int   `yaml:"max_len"`
	Pattern     string `yaml:"pattern"`
	PatternName string `yaml:"pattern_name"`

	// numeric and decimal options
	Min    any    `yaml:"min"`
	Max    any    `yaml:"max"`
	Places *int32 `yaml:"places"`

	// choice options
	Choices         []string `yaml:"choices"`
	CaseInsensitive bool     `yaml:"case_insensitive"`

	// time options
	Layout string `yaml:"layout"`
}

// DefinitionFromYAML builds a schema definition from a declarative YAML
// document:
//
//	name: signup
//	fields:
//	  - name: age
//	    type: int
//	    required: true
//	    min: 0
//	    max: 150
//	  - name: plan
//	    type: choice
//	    choices: [free, pro]
//	    default: free
//
// Supported field types: string, int, float, decimal, bool, choice, time,
// uuid, email. Malformed documents, unknown types and constraint values that
// do not fit the field type fail with ErrInvalidConfig.
func DefinitionFromYAML(data []byte) (*Definition, error) {
	var doc yamlDefinition
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", validator.ErrInvalidConfig, err)
	}

	fields := make([]Field, 0, len(doc.Fields))
	for _, yf := range doc.Fields {
		v, err := buildValidator(yf)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", yf.Name, err)
		}

		opts := []FieldOption{}
		if yf.Required {
			opts = append(opts, Required())
		}
		if yf.Label != "" {
			opts = append(opts, Label(yf.Label))
		}
		if yf.Description != "" {
			opts = append(opts, Description(yf.Description))
		}
		if yf.Default != nil {
			def, err := coerceDefault(yf)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", yf.Name, err)
			}
			opts = append(opts, Default(def))
		}

		fields = append(fields, NewField(yf.Name, v, opts...))
	}

	return New(doc.Name, fields...)
}

func buildValidator(yf yamlField) (validator.Validator, error) {
	switch yf.Type {
	case "string", "text":
		var opts []validator.StringOption
		if yf.Trim {
			opts = append(opts, validator.WithTrim())
		}
		if yf.Normalize {
			opts = append(opts, validator.WithNormalize())
		}
		if yf.NotBlank {
			opts = append(opts, validator.WithNotBlank())
		}
		if yf.MinLen != nil {
			opts = append(opts, validator.WithMinLen(*yf.MinLen))
		}
		if yf.MaxLen != nil {
			opts = append(opts, validator.WithMaxLen(*yf.MaxLen))
		}
		if yf.Pattern != "" {
			if _, err := regexp.Compile(yf.Pattern); err != nil {
				return nil, fmt.Errorf("%w: pattern %q: %v", validator.ErrInvalidConfig, yf.Pattern, err)
			}
			name := yf.PatternName
			if name == "" {
				name = yf.Pattern
			}
			opts = append(opts, validator.WithPattern(yf.Pattern, name))
		}
		return validator.NewString(opts...), nil

	case "int":
		var opts []validator.IntOption
		if yf.Min != nil {
			min, err := toInt64(yf.Min)
			if err != nil {
				return nil, err
			}
			opts = append(opts, validator.WithIntMin(min))
		}
		if yf.Max != nil {
			max, err := toInt64(yf.Max)
			if err != nil {
				return nil, err
			}
			opts = append(opts, validator.WithIntMax(max))
		}
		return validator.NewInt(opts...), nil

	case "float":
		var opts []validator.FloatOption
		if yf.Min != nil {
			min, err := toFloat64(yf.Min)
			if err != nil {
				return nil, err
			}
			opts = append(opts, validator.WithFloatMin(min))
		}
		if yf.Max != nil {
			max, err := toFloat64(yf.Max)
			if err != nil {
				return nil, err
			}
			opts = append(opts, validator.WithFloatMax(max))
		}
		return validator.NewFloat(opts...), nil

	case "decimal":
		var opts []validator.DecimalOption
		if yf.Min != nil {
			min, err := toDecimal(yf.Min)
			if err != nil {
				return nil, err
			}
			opts = append(opts, validator.WithDecimalMin(min))
		}
		if yf.Max != nil {
			max, err := toDecimal(yf.Max)
			if err != nil {
				return nil, err
			}
			opts = append(opts, validator.WithDecimalMax(max))
		}
		if yf.Places != nil {
			opts = append(opts, validator.WithDecimalPlaces(*yf.Places))
		}
		return validator.NewDecimal(opts...), nil

	case "bool":
		return validator.NewBool(), nil

	case "choice":
		if len(yf.Choices) == 0 {
			return nil, fmt.Errorf("%w: choice field needs at least one option", validator.ErrInvalidConfig)
		}
		var opts []validator.ChoiceOption
		if yf.CaseInsensitive {
			opts = append(opts, validator.WithFold())
		}
		return validator.NewChoice(yf.Choices, opts...), nil

	case "time":
		return validator.NewTime(yf.Layout), nil

	case "date":
		layout := yf.Layout
		if layout == "" {
			layout = time.DateOnly
		}
		return validator.NewTime(layout), nil

	case "uuid":
		return validator.NewUUID(), nil

	case "email":
		return validator.NewEmail(), nil

	default:
		return nil, fmt.Errorf("%w: unknown field type %q", validator.ErrInvalidConfig, yf.Type)
	}
}

// coerceDefault turns the YAML default into the field's canonical type so
// defaults can bypass conversion during validation passes.
func coerceDefault(yf yamlField) (any, error) {
	switch yf.Type {
	case "string", "text", "choice", "email":
		s, ok := yf.Default.(string)
		if !ok {
			return nil, fmt.Errorf("%w: default %v is not a string", validator.ErrInvalidConfig, yf.Default)
		}
		return s, nil
	case "int":
		return toInt64(yf.Default)
	case "float":
		return toFloat64(yf.Default)
	case "decimal":
		return toDecimal(yf.Default)
	case "bool":
		b, ok := yf.Default.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: default %v is not a boolean", validator.ErrInvalidConfig, yf.Default)
		}
		return b, nil
	case "time", "date":
		s, ok := yf.Default.(string)
		if !ok {
			return nil, fmt.Errorf("%w: default %v is not a string", validator.ErrInvalidConfig, yf.Default)
		}
		layout := yf.Layout
		if layout == "" {
			if yf.Type == "date" {
				layout = time.DateOnly
			} else {
				layout = time.RFC3339
			}
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, fmt.Errorf("%w: default %q does not match layout %q", validator.ErrInvalidConfig, s, layout)
		}
		return t, nil
	case "uuid":
		s, ok := yf.Default.(string)
		if !ok {
			return nil, fmt.Errorf("%w: default %v is not a string", validator.ErrInvalidConfig, yf.Default)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: default %q is not a UUID", validator.ErrInvalidConfig, s)
		}
		return id, nil
	default:
		return nil, fmt.Errorf("%w: unknown field type %q", validator.ErrInvalidConfig, yf.Type)
	}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: %v is not an integer", validator.ErrInvalidConfig, v)
	}
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %v is not a number", validator.ErrInvalidConfig, v)
	}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %q is not a decimal number", validator.ErrInvalidConfig, n)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %v is not a decimal number", validator.ErrInvalidConfig, v)
	}
}
