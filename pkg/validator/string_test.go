package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseract/formify/pkg/validator"
)

func TestStringConvert(t *testing.T) {
	t.Run("passes raw value through unchanged by default", func(t *testing.T) {
		value, err := validator.NewString().Convert("name", "  Alice  ")
		require.NoError(t, err)
		assert.Equal(t, "  Alice  ", value)
	})

	t.Run("trims surrounding whitespace with WithTrim", func(t *testing.T) {
		value, err := validator.NewString(validator.WithTrim()).Convert("name", "  Alice  ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", value)
	})

	t.Run("normalizes canonically equivalent input with WithNormalize", func(t *testing.T) {
		v := validator.NewString(validator.WithNormalize())

		// "e" followed by a combining acute accent vs the precomposed rune
		decomposed, err := v.Convert("name", "Re\u0301sume\u0301")
		require.NoError(t, err)
		precomposed, err := v.Convert("name", "R\u00e9sum\u00e9")
		require.NoError(t, err)
		assert.Equal(t, precomposed, decomposed)
	})
}

func TestStringValidate(t *testing.T) {
	t.Run("accepts value within all bounds", func(t *testing.T) {
		v := validator.NewString(validator.WithMinLen(2), validator.WithMaxLen(10))
		assert.NoError(t, v.Validate("name", "Alice"))
	})

	t.Run("rejects non-string value", func(t *testing.T) {
		err := validator.NewString().Validate("name", 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a string value")
	})

	t.Run("checks run in declaration order and fail fast", func(t *testing.T) {
		v := validator.NewString(
			validator.WithNotBlank(),
			validator.WithMinLen(5),
		)

		err := v.Validate("name", "")
		require.Error(t, err)

		var ve validator.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "must not be blank", ve.Message)
	})

	t.Run("counts length in runes, not bytes", func(t *testing.T) {
		v := validator.NewString(validator.WithMaxLen(4))
		assert.NoError(t, v.Validate("name", "日本語字"))

		err := v.Validate("name", "日本語五字")
		assert.Error(t, err)
	})
}

func TestStringChecks(t *testing.T) {
	t.Run("NotBlank rejects whitespace-only strings", func(t *testing.T) {
		rule := validator.NotBlank()("name", "   ")
		assert.False(t, rule.Check())
		assert.Equal(t, "must not be blank", rule.Error.Message)

		assert.True(t, validator.NotBlank()("name", "  x  ").Check())
	})

	t.Run("MinLen boundary is inclusive", func(t *testing.T) {
		assert.True(t, validator.MinLen(5)("password", "12345").Check())
		assert.False(t, validator.MinLen(5)("password", "1234").Check())
	})

	t.Run("MaxLen boundary is inclusive", func(t *testing.T) {
		assert.True(t, validator.MaxLen(5)("username", "12345").Check())
		assert.False(t, validator.MaxLen(5)("username", "123456").Check())
		assert.Equal(t, "must be at most 5 characters long", validator.MaxLen(5)("u", "").Error.Message)
	})

	t.Run("ExactLen requires exact rune count", func(t *testing.T) {
		assert.True(t, validator.ExactLen(4)("code", "1234").Check())
		assert.False(t, validator.ExactLen(4)("code", "123").Check())
		assert.False(t, validator.ExactLen(4)("code", "12345").Check())
	})

	t.Run("Matches applies the compiled pattern", func(t *testing.T) {
		postal := validator.Matches(`^\d{5}$`, "postal code")
		assert.True(t, postal("zip", "12345").Check())

		rule := postal("zip", "12a45")
		assert.False(t, rule.Check())
		assert.Equal(t, "must match postal code pattern", rule.Error.Message)
	})

	t.Run("Matches panics on invalid pattern", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.Matches(`(unclosed`, "broken")
		})
	})

	t.Run("OneOf is case sensitive", func(t *testing.T) {
		assert.True(t, validator.OneOf("red", "green")("color", "red").Check())
		assert.False(t, validator.OneOf("red", "green")("color", "RED").Check())
	})

	t.Run("OneOfFold ignores case", func(t *testing.T) {
		assert.True(t, validator.OneOfFold("red", "green")("color", "RED").Check())
		assert.False(t, validator.OneOfFold("red", "green")("color", "blue").Check())
	})

	t.Run("NotOneOf rejects forbidden values", func(t *testing.T) {
		assert.False(t, validator.NotOneOf("admin", "root")("username", "admin").Check())
		assert.True(t, validator.NotOneOf("admin", "root")("username", "alice").Check())
	})
}

func TestRegexValidator(t *testing.T) {
	t.Run("requires the pattern to match", func(t *testing.T) {
		v := validator.NewRegex(`^[a-z]+$`, "lowercase letters")

		value, err := validator.Process(v, "slug", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", value)

		_, err = validator.Process(v, "slug", "Hello123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must match lowercase letters pattern")
	})
}

func TestEmailValidator(t *testing.T) {
	t.Run("accepts a plain address and trims input", func(t *testing.T) {
		value, err := validator.Process(validator.NewEmail(), "email", "  user@example.com  ")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", value)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{"", "user", "user@", "@example.com", "user@nodot", "user@.example.com"} {
			_, err := validator.Process(validator.NewEmail(), "email", raw)
			assert.Error(t, err, "expected %q to be rejected", raw)
		}
	})
}

func TestURLCheck(t *testing.T) {
	t.Run("requires scheme and host", func(t *testing.T) {
		assert.True(t, validator.IsURL()("site", "https://example.com/path").Check())
		assert.False(t, validator.IsURL()("site", "example.com").Check())
		assert.False(t, validator.IsURL()("site", "").Check())
	})
}
